package main

import (
	"fmt"
	"os"

	"newsview/internal/config"
	"newsview/internal/logging"
	"newsview/ui/console"
	"newsview/ui/tui"
	"newsview/ui/tui/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.Plain {
		console.Print(os.Stdout, state.New())
		return
	}

	log, closer, err := logging.Setup(cfg.LogFile, 1)
	if err != nil {
		fmt.Printf("Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	log.Info("starting", "altScreen", cfg.AltScreen, "mouse", cfg.Mouse)
	if err := tui.Start(cfg, log); err != nil {
		log.Error(err, "news view exited")
		closer.Close()
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
