package domain

// AssetStrings carries the display text of an asset prototype.
type AssetStrings struct {
	Name           string
	ID             string
	Rules          string
	DamageFormula  string
	CounterFormula string
}

// AssetRequirement gates the purchase of an asset: the owning faction's
// matching attribute must be at least Tier, its magic level at least
// MagicLevel, and it must pay Cost in Treasure.
type AssetRequirement struct {
	Tier       int
	Cost       int
	MagicLevel MagicLevel
}

// AssetStats holds the shared combat statistics of an asset prototype.
// AtkType and DefType are nil for assets that cannot attack or defend.
type AssetStats struct {
	MaxHP     int
	Upkeep    int
	AtkType   *AttributeType
	DefType   *AttributeType
	Qualities []*Quality
}

// AssetPrototype is an immutable catalog template. Instances never mutate it;
// bought assets hold a reference and copy only the mutable parts.
type AssetPrototype struct {
	Type         AttributeType
	Strings      AssetStrings
	Requirements AssetRequirement
	Stats        AssetStats
}

// Upkeep returns the per-turn Treasure upkeep of the prototype.
func (p *AssetPrototype) Upkeep() int {
	return p.Stats.Upkeep
}

// Asset is a purchased capability instance owned by exactly one faction.
//
// The prototype link is a tagged union: a freshly added asset is pending
// (Prototype nil, PendingType holding the intended attribute) until the GM
// binds a concrete catalog prototype to it.
type Asset struct {
	ID    string
	Owner string // owning faction id

	Prototype   *AssetPrototype // nil while pending
	PendingType AttributeType   // intended attribute while pending

	HP        int
	Desc      string
	Location  *Location // weak link; Location.Assets mirrors it
	Qualities []*Quality
}

// NewAsset creates a bound asset from a catalog prototype, copying the
// prototype's innate qualities into the instance's mutable set.
func NewAsset(id, owner string, proto *AssetPrototype, loc *Location) *Asset {
	a := &Asset{
		ID:        id,
		Owner:     owner,
		Prototype: proto,
		HP:        proto.Stats.MaxHP,
		Qualities: append([]*Quality(nil), proto.Stats.Qualities...),
	}
	if loc != nil {
		a.MoveTo(loc)
	}
	return a
}

// NewPendingAsset creates a placeholder asset that remembers only the
// intended attribute type until the GM picks a concrete prototype.
func NewPendingAsset(id, owner string, t AttributeType) *Asset {
	return &Asset{ID: id, Owner: owner, PendingType: t}
}

// Initialized reports whether a concrete prototype has been bound.
func (a *Asset) Initialized() bool {
	return a.Prototype != nil
}

// Bind attaches a catalog prototype to a pending asset, setting hit points
// and innate qualities from it. Binding an already-bound asset is a no-op.
func (a *Asset) Bind(proto *AssetPrototype) {
	if a.Prototype != nil || proto == nil {
		return
	}
	a.Prototype = proto
	a.HP = proto.Stats.MaxHP
	a.Qualities = append([]*Quality(nil), proto.Stats.Qualities...)
}

// Type returns the asset's attribute type, falling back to the intended
// type while the asset is still pending.
func (a *Asset) Type() AttributeType {
	if a.Prototype != nil {
		return a.Prototype.Type
	}
	return a.PendingType
}

// MaxHP returns the prototype's maximum hit points, or 0 while pending.
func (a *Asset) MaxHP() int {
	if a.Prototype == nil {
		return 0
	}
	return a.Prototype.Stats.MaxHP
}

// Name returns the prototype name, or a placeholder label while pending.
func (a *Asset) Name() string {
	if a.Prototype != nil {
		return a.Prototype.Strings.Name
	}
	return "(unset " + a.PendingType.String() + " asset)"
}

// HasQuality reports whether a quality with the given id is active.
func (a *Asset) HasQuality(id string) bool {
	for _, q := range a.Qualities {
		if q.ID == id {
			return true
		}
	}
	return false
}

// AddQuality attaches a quality if not already present.
func (a *Asset) AddQuality(q *Quality) {
	if q == nil || a.HasQuality(q.ID) {
		return
	}
	a.Qualities = append(a.Qualities, q)
}

// StripQuality removes a quality by id.
func (a *Asset) StripQuality(id string) {
	for i, q := range a.Qualities {
		if q.ID == id {
			a.Qualities = append(a.Qualities[:i], a.Qualities[i+1:]...)
			return
		}
	}
}

// MoveTo relocates the asset, keeping the old and new locations' reverse
// indexes in step. A nil location detaches the asset.
func (a *Asset) MoveTo(loc *Location) {
	if a.Location == loc {
		return
	}
	if a.Location != nil {
		a.Location.removeAsset(a)
	}
	a.Location = loc
	if loc != nil {
		loc.addAsset(a)
	}
}
