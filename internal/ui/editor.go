package ui

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/talgya/faction-turn/internal/catalog"
	"github.com/talgya/faction-turn/internal/domain"
)

// RenderRoster lists every faction with its headline numbers and returns the
// faction picked for editing, if any.
func RenderRoster(a *App, factions []*domain.Faction) *domain.Faction {
	a.Text("Factions")
	a.Text("")
	if len(factions) == 0 {
		a.Text("  No factions yet.")
	}
	names := make([]string, len(factions))
	for i, f := range factions {
		names[i] = fmt.Sprintf("%s  C%d F%d W%d  %d/%d HP, %d Treasure, %d XP",
			f.Name, f.Cunning, f.Force, f.Wealth, f.HP, f.MaxHP(), f.Treasure, f.Exp)
	}
	if i, ok := a.Choice("Edit", names); ok {
		return factions[i]
	}
	return nil
}

// RenderFactionEditor is the GM's free-form entity editor: every number and
// collection on a faction can be changed outside the turn rules. Done reports
// the operator leaving the editor; removed asks the caller to delete the
// faction from the campaign.
func RenderFactionEditor(a *App, f *domain.Faction, locations []*domain.Location) (done, removed bool) {
	a.Text("Editing " + f.Name)
	a.Text("")

	f.Cunning = clampAttr(a.IntField("Cunning", f.Cunning))
	f.Force = clampAttr(a.IntField("Force", f.Force))
	f.Wealth = clampAttr(a.IntField("Wealth", f.Wealth))
	if i, ok := a.Choice("Magic", []string{"None", "Low", "Medium", "High"}); ok {
		f.Magic = domain.MagicLevel(i)
	}
	f.HP = a.IntField("HP", f.HP)
	f.Treasure = a.IntField("Treasure", f.Treasure)
	f.Exp = a.IntField("XP", f.Exp)

	a.Text("")
	renderTagEditor(a, f)
	a.Text("")
	renderAssetEditor(a, f, locations)
	a.Text("")
	renderBaseEditor(a, f, locations)
	a.Text("")

	if f.Goal != nil {
		a.Text(fmt.Sprintf("Goal: %s (difficulty %d)", f.Goal.Name, f.Goal.Difficulty))
		if a.Confirm("Clear goal") {
			f.Goal = nil
		}
	} else {
		tmpls := catalog.Goals()
		names := make([]string, len(tmpls))
		for i, g := range tmpls {
			names[i] = fmt.Sprintf("%s (difficulty %d)", g.Name, g.Difficulty)
		}
		if i, ok := a.Choice("Set goal", names); ok {
			f.SetGoal(tmpls[i])
		}
	}

	a.Text("")
	if a.Confirm("Done editing") {
		a.Reset()
		return true, false
	}
	if a.Confirm("Delete faction") {
		a.Reset()
		return true, true
	}
	return false, false
}

func renderTagEditor(a *App, f *domain.Faction) {
	a.Text("Tags")
	for i, t := range f.Tags {
		if a.Confirm(fmt.Sprintf("Remove tag %s #%d", t.Name(), i+1)) {
			f.Tags = append(f.Tags[:i], f.Tags[i+1:]...)
			return
		}
		if t.Set() {
			continue
		}
		protos := catalog.Tags()
		names := make([]string, len(protos))
		for j, p := range protos {
			names[j] = p.Name
		}
		if j, ok := a.Choice(fmt.Sprintf("Pick tag #%d", i+1), names); ok {
			t.Prototype = protos[j]
		}
	}
	if a.Confirm("Add tag slot") {
		f.Tags = append(f.Tags, &domain.Tag{})
	}
}

func renderAssetEditor(a *App, f *domain.Faction, locations []*domain.Location) {
	a.Text("Assets")
	locNames := make([]string, len(locations))
	for i, l := range locations {
		locNames[i] = l.Name
	}
	for _, asset := range f.Assets {
		loc := "nowhere"
		if asset.Location != nil {
			loc = asset.Location.Name
		}
		a.Text(fmt.Sprintf("  %s at %s, %d/%d HP", asset.Name(), loc, asset.HP, asset.MaxHP()))
		if !asset.Initialized() {
			protos := catalog.Assets(asset.Type())
			names := make([]string, len(protos))
			for j, p := range protos {
				names[j] = p.Strings.Name
			}
			if j, ok := a.Choice("Bind "+asset.ID, names); ok {
				asset.Bind(protos[j])
			}
		}
		if i, ok := a.Choice("Place "+asset.Name()+" "+asset.ID, locNames); ok {
			asset.MoveTo(locations[i])
		}
		if a.Confirm("Remove " + asset.Name() + " " + asset.ID) {
			f.RemoveAsset(asset.ID)
			return
		}
	}
	for _, t := range domain.AttributeTypes {
		if a.Confirm("Add pending " + t.String() + " asset") {
			f.AddAsset(domain.NewPendingAsset(uuid.NewString(), f.ID, t))
		}
	}
}

func renderBaseEditor(a *App, f *domain.Faction, locations []*domain.Location) {
	a.Text("Bases of influence")
	for _, b := range f.Bases {
		site := "nowhere"
		if b.Location != nil {
			site = b.Location.Name
		}
		a.Text(fmt.Sprintf("  Base at %s, %d/%d HP", site, b.HP, b.MaxHP))
		b.HP = a.IntField("Base HP "+b.ID, b.HP)
		if a.Confirm("Remove base " + b.ID) {
			f.RemoveBase(b.ID)
			return
		}
	}
	locNames := make([]string, len(locations))
	for i, l := range locations {
		locNames[i] = l.Name
	}
	if i, ok := a.Choice("Add base at", locNames); ok {
		f.AddBase(domain.NewBase(uuid.NewString(), f.ID, locations[i], f.MaxHP()))
	}
}

func clampAttr(v int) int {
	if v < 1 {
		return 1
	}
	if v > domain.MaxAttribute {
		return domain.MaxAttribute
	}
	return v
}
