package project

import (
	"github.com/talgya/faction-turn/internal/domain"
	"github.com/talgya/faction-turn/internal/turn"
)

// Snapshot converts the live campaign into its serialized form. Non-owning
// references become string ids; location reverse indexes are derived data and
// are not stored at all.
func Snapshot(factions []*domain.Faction, locations []*domain.Location, seq *turn.Sequencer) *Document {
	doc := &Document{
		Factions:  make([]FactionRecord, 0, len(factions)),
		Locations: make([]LocationRecord, 0, len(locations)),
	}
	for _, f := range factions {
		doc.Factions = append(doc.Factions, snapshotFaction(f))
	}
	for _, l := range locations {
		doc.Locations = append(doc.Locations, LocationRecord{ID: l.ID, Name: l.Name, Desc: l.Desc})
	}
	if seq != nil {
		doc.Turn = snapshotTurn(seq)
	}
	return doc
}

func snapshotFaction(f *domain.Faction) FactionRecord {
	rec := FactionRecord{
		ID:         f.ID,
		Name:       f.Name,
		Desc:       f.Desc,
		Cunning:    f.Cunning,
		Force:      f.Force,
		Wealth:     f.Wealth,
		Magic:      int(f.Magic),
		HP:         f.HP,
		Treasure:   f.Treasure,
		Exp:        f.Exp,
		Initiative: f.Initiative,
		Notes:      f.Notes,
	}
	if f.Goal != nil {
		rec.Goal = &GoalRecord{
			Name:       f.Goal.Name,
			Desc:       f.Goal.Desc,
			Difficulty: f.Goal.Difficulty,
			Notes:      f.Goal.Notes,
		}
	}
	for _, a := range f.Assets {
		rec.Assets = append(rec.Assets, snapshotAsset(a))
	}
	for _, b := range f.Bases {
		br := BaseRecord{ID: b.ID, MaxHP: b.MaxHP, HP: b.HP, Desc: b.Desc}
		if b.Location != nil {
			br.Location = b.Location.ID
		}
		rec.Bases = append(rec.Bases, br)
	}
	for _, t := range f.Tags {
		tr := TagRecord{}
		if t.Set() {
			tr.Prototype = t.Prototype.ID
		}
		rec.Tags = append(rec.Tags, tr)
	}
	return rec
}

func snapshotAsset(a *domain.Asset) AssetRecord {
	rec := AssetRecord{ID: a.ID, HP: a.HP, Desc: a.Desc}
	if a.Initialized() {
		rec.Prototype = a.Prototype.Strings.ID
	} else {
		rec.PendingType = int(a.PendingType)
	}
	if a.Location != nil {
		rec.Location = a.Location.ID
	}
	for _, q := range a.Qualities {
		rec.Qualities = append(rec.Qualities, q.ID)
	}
	return rec
}

func snapshotTurn(seq *turn.Sequencer) TurnRecord {
	rec := TurnRecord{
		Index:   seq.Turn(),
		State:   seq.State().String(),
		Current: seq.CurrentIndex(),
	}
	for _, f := range seq.Order() {
		rec.Roster = append(rec.Roster, f.ID)
	}
	return rec
}
