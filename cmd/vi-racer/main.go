// Command vi-racer is a terminal sandbox for driving a single vehicle around obstacles
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-racer/audio"
	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/core"
)

var (
	configFlag = flag.String("config", "", "TOML config file, reloaded on change")
	presetFlag = flag.String("preset", "", "Tuning preset: classic, default, arcade")
	policyFlag = flag.String("policy", "", "Collision policy: none, stop, bounce")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/vi-racer.log")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	dumpFlag   = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
)

// applyFlags lets command-line flags win over the file and environment
func applyFlags(cfg *config.Config) error {
	if *presetFlag != "" {
		cfg.Preset = *presetFlag
	}
	if *policyFlag != "" {
		cfg.Policy = *policyFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	return cfg.Validate()
}

// run owns every resource of the session so deferred cleanup completes before exit
// With -dump-config it prints the effective config to stdout and returns
func run(stdout io.Writer) error {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg); err != nil {
		return err
	}

	if *dumpFlag {
		data, err := config.Encode(cfg)
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	for _, warn := range cfg.Warnings() {
		fmt.Fprintf(os.Stderr, "vi-racer: warning: %s\n", warn)
		log.Printf("config warning: %s", warn)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before any crash trace is printed
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	sound := audio.NewSoundManager(&cfg.Audio)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the sandbox runs silently
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	game, err := NewGame(screen, cfg, sound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan *config.Config, 1)
	if *configFlag != "" {
		watcher, err := config.NewWatcher(*configFlag)
		if err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			core.Go(func() {
				watcher.Run(ctx, func(c *config.Config) {
					if err := applyFlags(c); err != nil {
						log.Printf("config reload rejected: %v", err)
						return
					}
					select {
					case reloads <- c:
					default:
						log.Printf("config reload dropped, previous one still pending")
					}
				}, nil)
			})
		}
	}

	game.run(ctx, reloads)
	return nil
}

func main() {
	flag.Parse()
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "vi-racer: %v\n", err)
		os.Exit(1)
	}
}
