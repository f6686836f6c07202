// Package project reads and writes the campaign save file: a single YAML
// document holding every faction, every location, and the turn sequencer's
// position. Entities cross-reference each other by stable string id, never by
// embedded copy; loading runs a link-restoration pass that turns those ids
// back into shared object instances.
package project

// Document is the top-level shape of the save file. Field names and the
// id-based reference scheme are stable; existing save files must keep
// loading across releases.
type Document struct {
	Factions  []FactionRecord  `yaml:"factions"`
	Locations []LocationRecord `yaml:"locations"`
	Turn      TurnRecord       `yaml:"turn"`
}

// FactionRecord serializes one faction with its owned collections inline.
type FactionRecord struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Desc string `yaml:"desc,omitempty"`

	Cunning int `yaml:"cunning"`
	Force   int `yaml:"force"`
	Wealth  int `yaml:"wealth"`
	Magic   int `yaml:"magic"`

	HP         int `yaml:"hp"`
	Treasure   int `yaml:"treasure"`
	Exp        int `yaml:"exp"`
	Initiative int `yaml:"initiative,omitempty"`

	Goal  *GoalRecord `yaml:"goal,omitempty"`
	Notes string      `yaml:"notes,omitempty"`

	Assets []AssetRecord `yaml:"assets,omitempty"`
	Bases  []BaseRecord  `yaml:"bases,omitempty"`
	Tags   []TagRecord   `yaml:"tags,omitempty"`
}

// AssetRecord serializes one asset. A bound asset stores its catalog
// prototype id; a pending one stores only the intended attribute type as a
// raw integer.
type AssetRecord struct {
	ID          string   `yaml:"id"`
	Prototype   string   `yaml:"prototype,omitempty"`
	PendingType int      `yaml:"pending_type,omitempty"`
	HP          int      `yaml:"hp"`
	Desc        string   `yaml:"desc,omitempty"`
	Location    string   `yaml:"location,omitempty"`
	Qualities   []string `yaml:"qualities,omitempty"`
}

// BaseRecord serializes one base of influence.
type BaseRecord struct {
	ID       string `yaml:"id"`
	Location string `yaml:"location,omitempty"`
	MaxHP    int    `yaml:"max_hp"`
	HP       int    `yaml:"hp"`
	Desc     string `yaml:"desc,omitempty"`
}

// TagRecord serializes one faction tag slot. An empty prototype id is a slot
// the GM has not picked a tag for yet.
type TagRecord struct {
	Prototype string `yaml:"prototype,omitempty"`
}

// GoalRecord serializes the active goal. Goals are copies of their template
// at adoption time, so the full text rides along rather than a template id.
type GoalRecord struct {
	Name       string `yaml:"name"`
	Desc       string `yaml:"desc,omitempty"`
	Difficulty int    `yaml:"difficulty"`
	Notes      string `yaml:"notes,omitempty"`
}

// LocationRecord serializes one location. The asset and base reverse indexes
// are not stored; they are rebuilt from faction collections on load.
type LocationRecord struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Desc string `yaml:"desc,omitempty"`
}

// TurnRecord serializes the sequencer: round counter, phase, and the
// initiative roster as faction ids in acting order.
type TurnRecord struct {
	Index   int      `yaml:"index"`
	State   string   `yaml:"state"`
	Roster  []string `yaml:"roster,omitempty"`
	Current int      `yaml:"current"`
}
