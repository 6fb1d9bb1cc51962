package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"aviator/internal/builder"
	"aviator/internal/commands"
	"aviator/internal/config"
	"aviator/internal/debug"
	"aviator/internal/env"
	"aviator/internal/frame"
	"aviator/internal/graphics"
	"aviator/internal/input"
	"aviator/internal/logger"
	"aviator/internal/render"
	"aviator/internal/world"
)

// raylib must stay on the thread that created the GL context.
func init() {
	runtime.LockOSThread()
}

func main() {
	reg := newRegistry(os.Stdout)
	if err := reg.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "aviator:", err)
		if errors.Is(err, commands.ErrUnknown) {
			fmt.Fprintln(os.Stderr, "commands:")
			reg.PrintUsage(os.Stderr)
		}
		os.Exit(1)
	}
}

// settings are the flags shared by every subcommand.
type settings struct {
	configPath string
	seed       uint64
}

func (s *settings) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&s.configPath, "config", config.DefaultPath, "path to the YAML config file")
	fs.Uint64Var(&s.seed, "seed", 0, "cloud generation seed (0 keeps the config or "+config.EnvSeed+" value)")
	return fs
}

// load resolves the effective config: defaults, then the file, then .env and
// the environment, then flags.
func (s *settings) load() (config.Config, error) {
	if _, err := env.Load(".env"); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if s.seed != 0 {
		cfg.Scene.Seed = s.seed
	}
	return cfg, cfg.Validate()
}

func newRegistry(stdout io.Writer) *commands.Registry {
	reg := commands.NewRegistry("run")

	var runOpts, showOpts, writeOpts settings
	reg.Register("run", "open the window and fly (default)", runOpts.flags("run"), func() error {
		cfg, err := runOpts.load()
		if err != nil {
			return err
		}
		return fly(cfg, runOpts.configPath)
	})
	reg.Register("config", "print the effective config as YAML", showOpts.flags("config"), func() error {
		cfg, err := showOpts.load()
		if err != nil {
			return err
		}
		return config.Encode(stdout, cfg)
	})
	reg.Register("write-config", "write the effective config to -config", writeOpts.flags("write-config"), func() error {
		cfg, err := writeOpts.load()
		if err != nil {
			return err
		}
		return config.Save(writeOpts.configPath, cfg)
	})
	return reg
}

func fly(cfg config.Config, configPath string) error {
	log := logger.New(cfg.Log.Path)
	// Resolve a time-based seed here so the log records a reproducible value.
	if cfg.Scene.Seed == 0 {
		cfg.Scene.Seed = uint64(time.Now().UnixNano())
	}
	log.Logf("starting: config %s, seed %d, %d clouds", configPath, cfg.Scene.Seed, cfg.Scene.Clouds)

	w, err := world.Compose(cfg.WorldOptions(), builder.NewRand(cfg.Scene.Seed))
	if err != nil {
		return err
	}
	tracker := input.NewTracker(cfg.Window.Width, cfg.Window.Height)

	win, err := graphics.Open(cfg.Window, graphics.Events{
		PointerMove: func(x, y float32) {
			tracker.Move(x, y)
		},
		Resize: func(width, height int) {
			if tracker.Resize(width, height) {
				w.Scene.Camera.SetViewport(width, height)
				log.Logf("viewport %dx%d", width, height)
			}
		},
	})
	if err != nil {
		log.Logf("fatal: %v", err)
		return err
	}
	defer win.Close()

	r := render.New()
	defer r.Close()
	if overlay := debug.New(cfg.Debug, w, tracker); overlay.Enabled() {
		r.AddOverlay(overlay.Draw)
	}

	driver, err := frame.New(w, tracker, r, cfg.Motion)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = driver.Run(ctx, win)
	log.Logf("stopped after %d frames", driver.Ticks())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
