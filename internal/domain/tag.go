package domain

// TagPrototype is an immutable catalog entry describing a faction-wide
// modifier.
type TagPrototype struct {
	ID    string
	Name  string
	Rules string
}

// Tag is a faction's slot for a tag: either unset (pending GM selection) or
// bound to a catalog prototype.
type Tag struct {
	Prototype *TagPrototype // nil while unset
}

// Set reports whether a prototype has been selected.
func (t *Tag) Set() bool {
	return t.Prototype != nil
}

// Name returns the prototype name or a placeholder while unset.
func (t *Tag) Name() string {
	if t.Prototype != nil {
		return t.Prototype.Name
	}
	return "(unset tag)"
}
