package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := Default()
	if cfg != def {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "project_path: other.yaml\nvault_keep: 5\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ProjectPath != "other.yaml" || cfg.VaultKeep != 5 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("level = %v, want debug", cfg.SlogLevel())
	}
	// Keys the file omits keep their defaults.
	if cfg.VaultPath != Default().VaultPath {
		t.Errorf("vault path = %q, want default", cfg.VaultPath)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("project_path: from-file.yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FACTIONTURN_PROJECT", "from-env.yaml")
	t.Setenv("FACTIONTURN_SEED", "99")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ProjectPath != "from-env.yaml" {
		t.Errorf("project path = %q, env should win over the file", cfg.ProjectPath)
	}
	if cfg.Seed != 99 {
		t.Errorf("seed = %d, want 99", cfg.Seed)
	}
}

func TestMalformedFileIsSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("{{{"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ProjectPath != Default().ProjectPath {
		t.Error("malformed file should fall back to defaults")
	}
}

func TestVaultKeepClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("vault_keep: -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.VaultKeep != 1 {
		t.Errorf("vault_keep = %d, want clamp to 1", cfg.VaultKeep)
	}
}
