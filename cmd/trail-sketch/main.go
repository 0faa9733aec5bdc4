package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/trail-sketch/audio"
	"github.com/lixenwraith/trail-sketch/config"
	"github.com/lixenwraith/trail-sketch/render"
	"github.com/lixenwraith/trail-sketch/sketch"
)

var (
	configFlag   = flag.String("config", "", "Path to TOML config file")
	capacityFlag = flag.Int("capacity", 0, "Trail length in points (overrides config)")
	debugFlag    = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	muteFlag     = flag.Bool("mute", false, "Disable audio cues")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *capacityFlag != 0 {
		cfg.Trail.Capacity = *capacityFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "trail-sketch: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	drawing, err := sketch.New(cfg.Trail.Capacity, nil)
	if err != nil {
		return err
	}
	palette, err := render.NewPalette(cfg.Colors)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTRAIL-SKETCH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	player := audio.NewPlayer(cfg.Audio)
	if err := player.Init(); err != nil {
		// Non-fatal, drawing works without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer player.Close()

	log.Printf("trail-sketch started: capacity=%d interval=%s", cfg.Trail.Capacity, cfg.Frame.Interval.Duration)

	canvas := render.NewCanvas(screen, palette)
	newApp(screen, drawing, canvas, player, cfg.Frame.Interval.Duration).run()
	return nil
}
