// Command seed generates a demo campaign file: noise-derived locations and a
// few starter factions with holdings, ready to open in factionturn.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/talgya/faction-turn/internal/project"
	"github.com/talgya/faction-turn/internal/worldgen"
)

func main() {
	out := flag.String("out", "campaign.yaml", "output project file")
	seed := flag.Int64("seed", 0, "generation seed (0 = random)")
	locations := flag.Int("locations", 8, "number of locations")
	factions := flag.Int("factions", 3, "number of factions")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg := worldgen.GenConfig{
		Seed:      *seed,
		Locations: *locations,
		Factions:  *factions,
	}
	if cfg.Locations < 1 || cfg.Factions < 1 {
		slog.Error("need at least one location and one faction")
		os.Exit(1)
	}

	facs, locs := worldgen.Generate(cfg)
	if err := project.Save(*out, facs, locs, nil); err != nil {
		slog.Error("write failed", "err", err)
		os.Exit(1)
	}
	slog.Info("campaign generated", "path", *out, "factions", len(facs), "locations", len(locs))
}
