package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/ChrisBuilds/termgame/audio"
	"github.com/ChrisBuilds/termgame/config"
	"github.com/ChrisBuilds/termgame/core"
	"github.com/ChrisBuilds/termgame/engine"
	"github.com/ChrisBuilds/termgame/input"
	"github.com/ChrisBuilds/termgame/objects"
	"github.com/ChrisBuilds/termgame/render"
)

var configFlag = flag.String("config", "", "Path to YAML config (defaults built in)")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash, otherwise the
	// stack trace is unreadable in raw mode
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nTERMGAME CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	width, height := screen.Size()
	bounds := core.Area{MaxRow: height - 1, MaxCol: width - 1}

	game := engine.NewGame(bounds, engine.NewSystemClock())
	game.Debug = cfg.Debug

	if cfg.Audio {
		cue, err := audio.NewCue()
		if err != nil {
			// Non-fatal, the game runs without sound
			game.Logf("audio", "speaker init failed: %v", err)
		}
		game.CollisionCue = cue.Collision
		defer cue.Close()
	}

	objects.Register(game)
	if game.Spawn(cfg.Scene, nil) == nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Unknown scene %q\n", cfg.Scene)
		os.Exit(1)
	}

	renderer := render.New(screen)
	renderer.SetLayerStyle(0, tcell.StyleDefault.Foreground(tcell.ColorGreen))

	scheduler := engine.NewFrameScheduler(game, input.NewSource(screen), renderer, cfg.FrameDelay())
	scheduler.Run()
}
