package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"eve-router/internal/config"
	"eve-router/internal/db"
	"eve-router/internal/engine"
	"eve-router/internal/logger"
	"eve-router/internal/mapfile"
	"eve-router/internal/render"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "YAML config file")
	mapPath := flag.String("map", "", "JSON map file")
	system := flag.String("system", "", "system the route starts from")
	closed := flag.Bool("closed", false, "return to the start system (round trip)")
	maxSystems := flag.Int("max-systems", 0, "exact-search size limit (0 = default)")
	reachableOnly := flag.Bool("reachable-only", false, "route only the region reachable from the start system")
	renderDot := flag.Bool("dot", false, "write a Graphviz .dot (and .png if dot is installed)")
	historyPath := flag.String("history", "", "route history database path")
	noHistory := flag.Bool("no-history", false, "do not record this solve")
	flag.Parse()

	logger.Banner(version)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			logger.Error("Config", fmt.Sprintf("Failed to load: %v", err))
			os.Exit(1)
		}
		cfg = loaded
	}
	// Flags set on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "map":
			cfg.MapPath = *mapPath
		case "system":
			cfg.SystemName = *system
		case "closed":
			cfg.ClosedTour = *closed
		case "max-systems":
			cfg.MaxSystems = *maxSystems
		case "reachable-only":
			cfg.ReachableOnly = *reachableOnly
		case "dot":
			cfg.RenderDot = *renderDot
		case "history":
			cfg.HistoryPath = *historyPath
		case "no-history":
			cfg.DisableHistory = *noHistory
		}
	})
	if cfg.SystemName == "" {
		logger.Error("Args", "No start system given (use -system)")
		os.Exit(1)
	}

	g, err := mapfile.Load(cfg.MapPath)
	if err != nil {
		logger.Error("Map", fmt.Sprintf("Failed to load %s: %v", cfg.MapPath, err))
		os.Exit(1)
	}
	logger.Info("Map", fmt.Sprintf("Loaded %d systems from %s", g.Len(), cfg.MapPath))
	logger.Info("Map", fmt.Sprintf("Entire map cyclic: %t", g.IsCyclic()))

	region, err := g.ReachableFrom(cfg.SystemName)
	if err != nil {
		logger.Error("Map", fmt.Sprintf("%v", err))
		os.Exit(1)
	}
	logger.Info("Map", fmt.Sprintf("Reachable region: %d systems, cyclic: %t", region.Len(), region.IsCyclic()))

	routed := g
	if cfg.ReachableOnly {
		routed = region
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	route, err := engine.Solve(ctx, routed, cfg.SystemName, engine.Options{
		ClosedTour: cfg.ClosedTour,
		MaxSystems: cfg.MaxSystems,
	})
	if err != nil {
		var tooLarge *engine.TooLargeError
		switch {
		case errors.As(err, &tooLarge):
			logger.Error("Solve", fmt.Sprintf("%v (raise with -max-systems)", err))
		case errors.Is(err, engine.ErrNoCompleteRoute):
			logger.Error("Solve", fmt.Sprintf("%v (use -reachable-only to route the reachable region)", err))
		default:
			logger.Error("Solve", fmt.Sprintf("%v", err))
		}
		os.Exit(1)
	}

	logger.Section("Route")
	logger.Stats("Systems", len(route.Systems))
	logger.Stats("Total cost", route.TotalCost)
	fmt.Println(strings.Join(route.Systems, " -> "))

	if !cfg.DisableHistory {
		database, err := db.Open(cfg.HistoryPath)
		if err != nil {
			logger.Warn("History", fmt.Sprintf("Not recording solve: %v", err))
		} else {
			defer database.Close()
			id := database.InsertRoute(cfg.MapPath, cfg.SystemName, route.Systems, route.TotalCost, cfg.ClosedTour)
			if id > 0 {
				logger.Success("History", fmt.Sprintf("Recorded solve #%d", id))
			}
		}
	}

	if cfg.RenderDot {
		dotPath, err := render.WriteFiles(".", cfg.SystemName, routed, route.Systems)
		if err != nil {
			logger.Warn("Render", fmt.Sprintf("Graphviz output failed: %v", err))
		} else {
			logger.Success("Render", fmt.Sprintf("Wrote %s", dotPath))
		}
	}
}
