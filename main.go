package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Readm/sortviz/audio"
	"github.com/Readm/sortviz/visual"
)

func main() {
	var (
		headless   = flag.Bool("headless", false, "Run the selected algorithm to completion without a UI and print the summary")
		configName = flag.String("config", "", "Predefined configuration name (e.g. 'classroom', 'browser_demo')")
		algoName   = flag.String("algo", "", "Starting algorithm: bubble, selection, insertion, quick or merge")
		size       = flag.Int("size", 0, "Number of bars (0 keeps the preset value)")
		delayMS    = flag.Int("delay", -1, "Initial step delay in milliseconds (-1 keeps the preset value)")
		seed       = flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
		mode       = flag.String("mode", "", "Visual mode: fyne, web or none")
		addr       = flag.String("addr", "", "Listen address for web mode")
		verbose    = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		GetLogger().SetLevel(LogLevelDebug)
	}

	cfg := DefaultConfig()
	if *configName != "" {
		if preset := GetConfigByName(*configName); preset != nil {
			cfg = preset
		} else {
			fmt.Printf("Warning: Configuration '%s' not found, using default\n", *configName)
		}
	}
	if *algoName != "" {
		cfg.Algorithm = *algoName
	}
	if *size > 0 {
		cfg.DatasetSize = *size
	}
	if *delayMS >= 0 {
		cfg.StepDelayMS = *delayMS
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *mode != "" {
		cfg.VisualMode = *mode
	}
	if *addr != "" {
		cfg.WebAddr = *addr
	}
	cfg.Headless = *headless

	if err := ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	monitor := &audio.Monitor{}

	if cfg.Headless || cfg.VisualMode == "none" {
		viz := visual.NewNullVisualizer()
		sess := NewSession(cfg, viz, monitor)
		PrintSummary(sess.RunHeadless())
		return
	}

	switch cfg.VisualMode {
	case "web":
		viz := NewWebVisualizer(cfg.WebAddr, monitor)
		if err := viz.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "web visualizer failed to start: %v\n", err)
			os.Exit(1)
		}
		sess := NewSession(cfg, viz, monitor)
		GetLogger().Infof("open http://%s in a browser", cfg.WebAddr)
		sess.Run()
	default:
		viz := NewFyneVisualizer(cfg)
		sess := NewSession(cfg, viz, monitor)
		go func() {
			sess.Run()
			viz.Close()
		}()
		// Blocks until the window closes; Escape posts a quit command that
		// also lands here via Close.
		viz.ShowAndRun()
	}
}
