package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/spectate"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/lixenwraith/vi-snake/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}
	bindFlags(cfg)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log := logrus.StandardLogger()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.RegisterScreen(screen)
	closeScreen := sync.OnceFunc(func() {
		core.RegisterScreen(nil)
		screen.Fini()
	})
	// Normal exit terminal cleanup
	defer closeScreen()
	// Panic Recovery: runs before the deferred Fini
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	terminal := render.NewTerminalRenderer(screen, cfg.CellWidth, cfg.CellHeight)
	rows, cols := terminal.Grid()
	log.WithField("renderer", terminal.String()).Debug("screen ready")

	scores := store.NewFileStore(cfg.HighScoreDir, store.HighScoreKey)
	highScore, err := scores.Load()
	if err != nil {
		log.WithError(err).WithField("path", scores.Path()).Warn("high score reset to 0")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := game.New(game.DefaultConfig(rows, cols), highScore, rand.New(rand.NewSource(seed)))
	if err != nil {
		closeScreen()
		fmt.Fprintf(os.Stderr, "Cannot start on a %dx%d board: %v\n", rows, cols, err)
		return 1
	}

	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		if errors.Is(err, audio.ErrAudioDisabled) {
			log.Info("audio disabled")
		} else {
			log.WithError(err).Warn("audio unavailable, continuing without sound")
		}
	}
	defer sound.Cleanup()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	registry := status.NewRegistry()
	renderers := []engine.Renderer{terminal}

	spectateDone := make(chan struct{})
	if cfg.SpectateAddr != "" {
		hub := spectate.NewHub(log)
		srv := spectate.NewServer(cfg.SpectateAddr, hub, registry, log)
		if err := srv.Listen(); err != nil {
			log.WithError(err).Warn("spectator server disabled")
			close(spectateDone)
		} else {
			renderers = append(renderers, hub)
			core.Go(func() {
				defer close(spectateDone)
				if err := srv.Run(ctx); err != nil {
					log.WithError(err).Warn("spectator server stopped")
				}
			})
		}
	} else {
		close(spectateDone)
	}

	loop, err := engine.NewLoop(g, engine.LoopConfig{
		Step:      engine.NewTicker(cfg.TickInterval),
		Clock:     engine.NewTicker(cfg.ClockInterval),
		Renderers: renderers,
		Sound:     sound,
		Scores:    scores,
		Status:    registry,
		Logger:    log,
	})
	if err != nil {
		log.WithError(err).Error("loop setup failed")
		return 1
	}

	// Input polling interacts directly with the screen; PollEvent returns nil after Fini
	keys := input.DefaultKeyTable()
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if intent := keys.Translate(ev); intent != input.IntentNone {
				if !loop.Submit(intent) {
					log.WithField("intent", intent).Debug("intent dropped")
				}
			}
		}
	})

	log.WithFields(logrus.Fields{
		"rows":       rows,
		"cols":       cols,
		"high_score": highScore,
		"seed":       seed,
		"tick":       cfg.TickInterval,
	}).Info("vi-snake started")

	err = loop.Run(ctx)
	cancel()
	<-spectateDone

	if err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("loop stopped")
		return 1
	}
	log.WithFields(logrus.Fields(registry.Snapshot())).Info("vi-snake exiting")
	return 0
}

// bindFlags registers command line overrides on top of the environment
func bindFlags(cfg *config.Config) {
	flag.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Snake step interval")
	flag.IntVar(&cfg.CellWidth, "cell-width", cfg.CellWidth, "Terminal columns per board cell")
	flag.IntVar(&cfg.CellHeight, "cell-height", cfg.CellHeight, "Terminal rows per board cell")
	flag.StringVar(&cfg.HighScoreDir, "highscore-dir", cfg.HighScoreDir, "Directory holding the high score")
	flag.StringVar(&cfg.SpectateAddr, "spectate", cfg.SpectateAddr, "Spectator server address, e.g. :8090 (empty disables)")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for food placement (0 uses the clock)")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write debug logs to "+logDir+"/"+logFileName)
}
