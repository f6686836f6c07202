// Command factionturn runs the faction-turn tracker: a terminal UI over one
// campaign file, walking each faction through its turn phases.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"

	"github.com/google/uuid"

	"github.com/talgya/faction-turn/internal/config"
	"github.com/talgya/faction-turn/internal/dice"
	"github.com/talgya/faction-turn/internal/domain"
	"github.com/talgya/faction-turn/internal/project"
	"github.com/talgya/faction-turn/internal/turn"
	"github.com/talgya/faction-turn/internal/ui"
	"github.com/talgya/faction-turn/internal/vault"
)

func main() {
	configPath := flag.String("config", "factionturn.yaml", "config file path")
	logPath := flag.String("log", "factionturn.log", "log file path")
	restore := flag.Bool("restore", false, "restore the project file from the latest vault snapshot")
	flag.Parse()

	// The terminal is owned by the UI, so logs go to a file.
	logDst := io.Writer(io.Discard)
	if f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		defer f.Close()
		logDst = f
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logDst, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	slog.Info("starting", "project", cfg.ProjectPath)

	var snapshots *vault.Vault
	if cfg.VaultPath != "" {
		snapshots, err = vault.Open(cfg.VaultPath, cfg.VaultKeep)
		if err != nil {
			slog.Warn("autosave disabled", "err", err)
		} else {
			defer snapshots.Close()
			if err := snapshots.SetMeta("project", cfg.ProjectPath); err != nil {
				slog.Warn("vault meta write failed", "err", err)
			}
		}
	}

	if *restore {
		if err := restoreFromVault(snapshots, cfg.ProjectPath); err != nil {
			fmt.Fprintf(os.Stderr, "restore: %v\n", err)
			os.Exit(1)
		}
	}

	campaign, err := project.Load(cfg.ProjectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load project: %v\n", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	seq := turn.NewSequencer(dice.NewRoller(seed))
	seq.Restore(campaign.Turn.Order, campaign.Turn.Current, campaign.Turn.State, campaign.Turn.Index)

	app, err := ui.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	defer app.Fini()

	run(app, campaign, seq, snapshots, cfg)

	if err := project.Save(cfg.ProjectPath, campaign.Factions, campaign.Locations, seq); err != nil {
		slog.Error("final save failed", "err", err)
		app.Fini()
		fmt.Fprintf(os.Stderr, "save project: %v\n", err)
		os.Exit(1)
	}
}

func run(app *ui.App, campaign *project.Campaign, seq *turn.Sequencer, snapshots *vault.Vault, cfg config.Config) {
	const (
		screenTurn = iota
		screenRoster
	)
	screen := screenTurn
	var editing *domain.Faction

	// Autosave fires after a faction finishes its turn, throttled to every
	// AutosaveEvery+1 completed faction turns.
	lastPos := position(seq)
	turnsSince := 0

	app.Run(func(a *ui.App) bool {
		switch {
		case editing != nil:
			done, removed := ui.RenderFactionEditor(a, editing, campaign.Locations)
			if removed {
				if inRoster(seq, editing) {
					slog.Warn("faction is in the active round, not removing", "faction", editing.Name)
				} else {
					removeFaction(campaign, editing)
				}
			}
			if done {
				editing = nil
			}
		case screen == screenRoster:
			if f := ui.RenderRoster(a, campaign.Factions); f != nil {
				editing = f
			}
			a.Text("")
			if a.Confirm("Add faction") {
				campaign.Factions = append(campaign.Factions,
					domain.NewFaction(uuid.NewString(), "New Faction"))
			}
			if a.Confirm("Turn tracker") {
				screen = screenTurn
				a.Reset()
			}
		default:
			seq.Step(a, campaign.Factions, campaign.Locations)
			if a.Confirm("Factions") {
				screen = screenRoster
				a.Reset()
			}
			if a.Confirm("Save") {
				if err := project.Save(cfg.ProjectPath, campaign.Factions, campaign.Locations, seq); err != nil {
					slog.Error("save failed", "err", err)
				}
			}
		}

		if pos := position(seq); pos != lastPos {
			lastPos = pos
			turnsSince++
			if snapshots != nil && turnsSince > cfg.AutosaveEvery {
				turnsSince = 0
				autosave(snapshots, campaign, seq)
			}
		}
		return true
	})
}

// restoreFromVault overwrites the project file with the newest autosave
// snapshot, for recovery after a crash or a botched hand edit.
func restoreFromVault(snapshots *vault.Vault, path string) error {
	if snapshots == nil {
		return fmt.Errorf("no vault configured")
	}
	data, ok, err := snapshots.Latest()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("vault holds no snapshots")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write project: %w", err)
	}
	slog.Info("project restored from vault", "path", path, "bytes", len(data))
	return nil
}

// inRoster reports whether the faction still has a turn coming in the
// current round. Such factions cannot be removed until the round ends.
func inRoster(seq *turn.Sequencer, f *domain.Faction) bool {
	for _, cur := range seq.Order() {
		if cur == f {
			return true
		}
	}
	return false
}

// removeFaction drops a faction from the campaign, detaching its holdings
// from every location index first.
func removeFaction(campaign *project.Campaign, f *domain.Faction) {
	for _, a := range f.Assets {
		a.MoveTo(nil)
	}
	for _, b := range f.Bases {
		b.MoveTo(nil)
	}
	for i, cur := range campaign.Factions {
		if cur == f {
			campaign.Factions = append(campaign.Factions[:i], campaign.Factions[i+1:]...)
			break
		}
	}
	slog.Info("faction removed", "faction", f.Name)
}

// position fingerprints the sequencer's place in the round; a change means a
// faction turn ended or a round rolled over.
func position(seq *turn.Sequencer) [2]int {
	return [2]int{seq.Turn(), seq.CurrentIndex()}
}

// autosave snapshots the campaign synchronously, then hands the bytes to the
// vault's background writer. The entities are only read on this goroutine.
func autosave(snapshots *vault.Vault, campaign *project.Campaign, seq *turn.Sequencer) {
	data, err := project.Marshal(project.Snapshot(campaign.Factions, campaign.Locations, seq))
	if err != nil {
		slog.Warn("autosave snapshot failed", "err", err)
		return
	}
	snapshots.StoreAsync(data)
}
