package domain

// Location is a place factions compete over. Its Assets and Bases slices are
// non-owning reverse indexes: the owning collections live on each faction,
// and these lists are maintained in lockstep on every add, move, and remove
// (and rebuilt wholesale after a load).
type Location struct {
	ID   string
	Name string
	Desc string

	Assets []*Asset
	Bases  []*BaseOfInfluence
}

func NewLocation(id, name string) *Location {
	return &Location{ID: id, Name: name}
}

func (l *Location) addAsset(a *Asset) {
	for _, cur := range l.Assets {
		if cur == a {
			return
		}
	}
	l.Assets = append(l.Assets, a)
}

func (l *Location) removeAsset(a *Asset) {
	for i, cur := range l.Assets {
		if cur == a {
			l.Assets = append(l.Assets[:i], l.Assets[i+1:]...)
			return
		}
	}
}

func (l *Location) addBase(b *BaseOfInfluence) {
	for _, cur := range l.Bases {
		if cur == b {
			return
		}
	}
	l.Bases = append(l.Bases, b)
}

func (l *Location) removeBase(b *BaseOfInfluence) {
	for i, cur := range l.Bases {
		if cur == b {
			l.Bases = append(l.Bases[:i], l.Bases[i+1:]...)
			return
		}
	}
}

// ClearIndexes empties the reverse indexes before a rebuild.
func (l *Location) ClearIndexes() {
	l.Assets = l.Assets[:0]
	l.Bases = l.Bases[:0]
}

// HasRivalBase reports whether a faction other than the given owner keeps a
// base of influence here. Hiding an asset is forbidden at such locations.
func (l *Location) HasRivalBase(owner string) bool {
	for _, b := range l.Bases {
		if b.Owner != owner {
			return true
		}
	}
	return false
}
