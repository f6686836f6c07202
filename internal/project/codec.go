package project

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/talgya/faction-turn/internal/domain"
	"github.com/talgya/faction-turn/internal/turn"
)

// schemaJSON is a structural check applied before decoding: the top-level
// keys must have the right shapes and every faction and location must carry a
// string id. Anything stricter would reject save files written by newer
// versions, so field-level constraints stay out of it.
const schemaJSON = `{
	"type": "object",
	"properties": {
		"factions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id"],
				"properties": {"id": {"type": "string"}}
			}
		},
		"locations": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id"],
				"properties": {"id": {"type": "string"}}
			}
		},
		"turn": {"type": "object"}
	}
}`

var docSchema = jsonschema.MustCompileString("project.schema.json", schemaJSON)

// Marshal renders a document as YAML.
func Marshal(doc *Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding project: %w", err)
	}
	return data, nil
}

// Unmarshal parses and structurally validates a save file. A file that fails
// to parse or validate yields an empty document and a warning rather than an
// error; a corrupt save degrades to a fresh campaign instead of refusing to
// start.
func Unmarshal(data []byte) *Document {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		slog.Warn("project file is not valid YAML, starting empty", "err", err)
		return &Document{}
	}
	if raw == nil {
		return &Document{}
	}
	if err := docSchema.Validate(raw); err != nil {
		slog.Warn("project file failed structural check, starting empty", "err", err)
		return &Document{}
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		slog.Warn("project file did not decode, starting empty", "err", err)
		return &Document{}
	}
	return &doc
}

// Save snapshots the live campaign and writes it to path.
func Save(path string, factions []*domain.Faction, locations []*domain.Location, seq *turn.Sequencer) error {
	data, err := Marshal(Snapshot(factions, locations, seq))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing project %s: %w", path, err)
	}
	slog.Info("project saved", "path", path, "factions", len(factions), "locations", len(locations))
	return nil
}

// Load reads and resolves the campaign at path. A missing file is a fresh
// campaign, not an error.
func Load(path string) (*Campaign, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("no project file, starting empty", "path", path)
		return Resolve(&Document{}), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading project %s: %w", path, err)
	}
	c := Resolve(Unmarshal(data))
	slog.Info("project loaded", "path", path, "factions", len(c.Factions), "locations", len(c.Locations))
	return c, nil
}
