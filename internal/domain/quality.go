package domain

// Quality is an immutable named trait attached to assets. Non-persistent
// qualities (Stealth) can be stripped by play and are never a permanent part
// of the asset.
type Quality struct {
	ID         string
	Name       string
	Rules      string
	Persistent bool
}
