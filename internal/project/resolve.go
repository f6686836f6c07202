package project

import (
	"log/slog"

	"github.com/talgya/faction-turn/internal/catalog"
	"github.com/talgya/faction-turn/internal/domain"
	"github.com/talgya/faction-turn/internal/turn"
)

// Campaign is the resolved form of a document: live entities with shared
// object references restored from the stored ids.
type Campaign struct {
	Factions  []*domain.Faction
	Locations []*domain.Location
	Turn      TurnState
}

// TurnState carries the resolved sequencer position, ready to hand to
// Sequencer.Restore.
type TurnState struct {
	Index   int
	State   turn.State
	Order   []*domain.Faction
	Current int
}

// Resolve turns a decoded document into live entities. Restoration runs in
// dependency order: locations first, then each faction's bases, tags, and
// assets against the location table and the catalog, then the turn roster
// against the faction table. Location reverse indexes are rebuilt as a side
// effect of attaching each asset and base.
//
// An id with no match is logged and left unresolved; a stale save never
// fabricates entities and never aborts the load.
func Resolve(doc *Document) *Campaign {
	c := &Campaign{}

	locByID := make(map[string]*domain.Location, len(doc.Locations))
	for _, rec := range doc.Locations {
		l := domain.NewLocation(rec.ID, rec.Name)
		l.Desc = rec.Desc
		c.Locations = append(c.Locations, l)
		locByID[rec.ID] = l
	}

	facByID := make(map[string]*domain.Faction, len(doc.Factions))
	for _, rec := range doc.Factions {
		f := resolveFaction(rec, locByID)
		c.Factions = append(c.Factions, f)
		facByID[rec.ID] = f
	}

	c.Turn = resolveTurn(doc.Turn, facByID)
	return c
}

func resolveFaction(rec FactionRecord, locByID map[string]*domain.Location) *domain.Faction {
	f := &domain.Faction{
		ID:         rec.ID,
		Name:       rec.Name,
		Desc:       rec.Desc,
		Cunning:    rec.Cunning,
		Force:      rec.Force,
		Wealth:     rec.Wealth,
		Magic:      domain.MagicLevel(rec.Magic),
		HP:         rec.HP,
		Treasure:   rec.Treasure,
		Exp:        rec.Exp,
		Initiative: rec.Initiative,
		Notes:      rec.Notes,
	}
	if rec.Goal != nil {
		f.Goal = &domain.Goal{
			Name:       rec.Goal.Name,
			Desc:       rec.Goal.Desc,
			Difficulty: rec.Goal.Difficulty,
			Notes:      rec.Goal.Notes,
		}
	}
	for _, br := range rec.Bases {
		b := &domain.BaseOfInfluence{ID: br.ID, Owner: f.ID, MaxHP: br.MaxHP, HP: br.HP, Desc: br.Desc}
		if br.Location != "" {
			if loc, ok := locByID[br.Location]; ok {
				b.MoveTo(loc)
			} else {
				slog.Warn("base references unknown location", "base", br.ID, "location", br.Location)
			}
		}
		f.Bases = append(f.Bases, b)
	}
	for _, tr := range rec.Tags {
		t := &domain.Tag{}
		if tr.Prototype != "" {
			if proto, ok := catalog.TagByID(tr.Prototype); ok {
				t.Prototype = proto
			} else {
				slog.Warn("tag references unknown prototype", "faction", f.ID, "prototype", tr.Prototype)
			}
		}
		f.Tags = append(f.Tags, t)
	}
	for _, ar := range rec.Assets {
		f.Assets = append(f.Assets, resolveAsset(ar, f.ID, locByID))
	}
	return f
}

func resolveAsset(rec AssetRecord, owner string, locByID map[string]*domain.Location) *domain.Asset {
	a := &domain.Asset{ID: rec.ID, Owner: owner, HP: rec.HP, Desc: rec.Desc}
	if rec.Prototype != "" {
		if proto, ok := catalog.AssetByID(rec.Prototype); ok {
			a.Prototype = proto
		} else {
			slog.Warn("asset references unknown prototype", "asset", rec.ID, "prototype", rec.Prototype)
			a.PendingType = domain.AttributeType(rec.PendingType)
		}
	} else {
		a.PendingType = domain.AttributeType(rec.PendingType)
	}
	for _, id := range rec.Qualities {
		if q, ok := catalog.QualityByID(id); ok {
			a.Qualities = append(a.Qualities, q)
		} else {
			slog.Warn("asset references unknown quality", "asset", rec.ID, "quality", id)
		}
	}
	if rec.Location != "" {
		if loc, ok := locByID[rec.Location]; ok {
			a.MoveTo(loc)
		} else {
			slog.Warn("asset references unknown location", "asset", rec.ID, "location", rec.Location)
		}
	}
	return a
}

func resolveTurn(rec TurnRecord, facByID map[string]*domain.Faction) TurnState {
	ts := TurnState{Index: rec.Index, Current: rec.Current, State: turn.StateIdle}
	if rec.State != "" {
		if st, ok := turn.StateFromName(rec.State); ok {
			ts.State = st
		} else {
			slog.Warn("unknown turn state in save, resuming idle", "state", rec.State)
		}
	}
	for _, id := range rec.Roster {
		f, ok := facByID[id]
		if !ok {
			slog.Warn("turn roster references unknown faction, discarding roster", "faction", id)
			ts.Order = nil
			ts.Current = 0
			ts.State = turn.StateIdle
			return ts
		}
		ts.Order = append(ts.Order, f)
	}
	return ts
}
