// Package catalog is the baked-in game data: asset prototypes per attribute,
// qualities, faction tags, and goal templates. Registries are built once from
// the literal tables in this package, never mutated afterward, and safe for
// unsynchronized concurrent reads. Lookups by id report a miss instead of
// failing hard, so stale ids in old save files degrade gracefully.
package catalog

import "github.com/talgya/faction-turn/internal/domain"

var (
	assetsByType map[domain.AttributeType][]*domain.AssetPrototype
	assetByID    map[string]*domain.AssetPrototype
	qualityByID  map[string]*domain.Quality
	tagByID      map[string]*domain.TagPrototype
	goalByID     map[string]domain.GoalTemplate
)

func init() {
	assetsByType = map[domain.AttributeType][]*domain.AssetPrototype{
		domain.AttributeCunning: cunningAssets,
		domain.AttributeForce:   forceAssets,
		domain.AttributeWealth:  wealthAssets,
	}
	assetByID = make(map[string]*domain.AssetPrototype)
	for _, list := range assetsByType {
		for _, p := range list {
			assetByID[p.Strings.ID] = p
		}
	}
	qualityByID = make(map[string]*domain.Quality, len(qualities))
	for _, q := range qualities {
		qualityByID[q.ID] = q
	}
	tagByID = make(map[string]*domain.TagPrototype, len(tags))
	for _, t := range tags {
		tagByID[t.ID] = t
	}
	goalByID = make(map[string]domain.GoalTemplate, len(goals))
	for _, g := range goals {
		goalByID[g.ID] = g
	}
}

// Assets returns the asset prototypes of one attribute type, in authored
// (tier, then name) order.
func Assets(t domain.AttributeType) []*domain.AssetPrototype {
	return assetsByType[t]
}

// AssetByID looks up an asset prototype by its stable id.
func AssetByID(id string) (*domain.AssetPrototype, bool) {
	p, ok := assetByID[id]
	return p, ok
}

// Qualities returns all asset qualities in authored order.
func Qualities() []*domain.Quality {
	return qualities
}

// QualityByID looks up a quality by its stable id.
func QualityByID(id string) (*domain.Quality, bool) {
	q, ok := qualityByID[id]
	return q, ok
}

// Tags returns all faction tag prototypes in authored order.
func Tags() []*domain.TagPrototype {
	return tags
}

// TagByID looks up a tag prototype by its stable id.
func TagByID(id string) (*domain.TagPrototype, bool) {
	t, ok := tagByID[id]
	return t, ok
}

// Goals returns all goal templates in authored order.
func Goals() []domain.GoalTemplate {
	return goals
}

// GoalByID looks up a goal template by its stable id.
func GoalByID(id string) (domain.GoalTemplate, bool) {
	g, ok := goalByID[id]
	return g, ok
}

// attr is a shorthand for the optional attack/defense attribute fields in
// the asset tables.
func attr(t domain.AttributeType) *domain.AttributeType {
	return &t
}
