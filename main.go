package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sync"

	"github.com/akamensky/argparse"
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/golangdaddy/crossroads/pkg/config"
	"github.com/golangdaddy/crossroads/pkg/game"
	"github.com/golangdaddy/crossroads/pkg/models"
	"github.com/golangdaddy/crossroads/pkg/physics"
	"github.com/golangdaddy/crossroads/pkg/simulation"
	"github.com/golangdaddy/crossroads/pkg/tui"
)

func main() {
	parser := argparse.NewParser("crossroads", "Eight cars taking turns at a four way intersection")

	configPath := parser.String("c", "config", &argparse.Options{Help: "JSON config file"})
	renderer := parser.String("r", "renderer", &argparse.Options{Help: "window or terminal"})
	width := parser.Int("W", "width", &argparse.Options{Help: "Field width in pixels"})
	height := parser.Int("H", "height", &argparse.Options{Help: "Field height in pixels"})
	seed := parser.Int("s", "seed", &argparse.Options{Help: "Random seed, 0 seeds from the clock"})
	logLevel := parser.String("l", "log-level", &argparse.Options{Help: "trace, debug, info, warn or error"})
	writeConfig := parser.String("w", "write-config", &argparse.Options{Help: "Write the effective config to this file and exit"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Fprint(os.Stderr, parser.Usage(err))
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Flags left at their zero value keep the file or default setting
	if *renderer != "" {
		cfg.Renderer = *renderer
	}
	if *width != 0 {
		cfg.Window.Width = *width
	}
	if *height != 0 {
		cfg.Window.Height = *height
	}
	if *seed != 0 {
		cfg.Traffic.Seed = int64(*seed)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	if *writeConfig != "" {
		if err := cfg.SaveToFile(*writeConfig); err != nil {
			logrus.Fatalf("Failed to write config: %v", err)
		}
		return
	}

	logger := newLogger(cfg)
	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Fatal("Simulation failed")
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	// Validate has already checked the level
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	logger.SetLevel(level)

	// The terminal renderer owns stdout and stderr while it runs
	if cfg.Renderer == config.RendererTerminal && level < logrus.DebugLevel {
		logger.SetLevel(logrus.ErrorLevel)
	}
	return logger
}

func run(cfg *config.Config, logger *logrus.Logger) error {
	log := logrus.NewEntry(logger)

	seed := cfg.Seed()
	log.WithFields(logrus.Fields{
		"seed":     seed,
		"width":    cfg.Window.Width,
		"height":   cfg.Window.Height,
		"renderer": cfg.Renderer,
	}).Info("starting")

	world := models.NewWorld(cfg.Window.Width, cfg.Window.Height, cfg.Traffic.SpeedScale, rand.New(rand.NewSource(seed)), log)
	driver := simulation.NewDriver(world, simulation.NewWork(cfg.Work), seed, log)
	agg := physics.NewAggregator(world, driver.Guard(), log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	driver.Start(ctx)

	// Vehicles are joined before the renderer tears its screen down. The
	// renderers call stop on exit; the call below covers early failures.
	var (
		stopOnce sync.Once
		stopErr  error
	)
	stop := func() error {
		stopOnce.Do(func() {
			stopErr = driver.Stop(cfg.ShutdownTimeout())
			if errors.Is(stopErr, simulation.ErrShutdownTimeout) {
				log.WithField("timeout", cfg.ShutdownTimeout()).Warn("vehicles still running at exit")
				stopErr = nil
			}
		})
		return stopErr
	}

	var runErr error
	switch cfg.Renderer {
	case config.RendererTerminal:
		runErr = runTerminal(ctx, cfg, world, agg, stop, log)
	default:
		runErr = runWindow(cfg, world, agg, seed, stop, log)
	}
	if err := stop(); err != nil && runErr == nil {
		runErr = err
	}

	log.WithFields(logrus.Fields{
		"collisions":     agg.Collisions(),
		"crossings":      driver.Guard().Crossings(),
		"peak_occupancy": driver.Guard().PeakOccupancy(),
		"passes":         world.Passes(),
	}).Info("summary")

	return runErr
}

func runWindow(cfg *config.Config, world *models.World, agg *physics.Aggregator, seed int64, stop func() error, log *logrus.Entry) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(game.WindowTitle(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Window.TPS)

	g := game.NewGame(world, agg, cfg.Window.Title, seed, log)
	g.OnExit = stop
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func runTerminal(ctx context.Context, cfg *config.Config, world *models.World, agg *physics.Aggregator, stop func() error, log *logrus.Entry) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	term := tui.NewTerminal(screen, world, agg, cfg.FrameInterval(), log)
	term.OnExit = stop
	return term.Run(ctx)
}
