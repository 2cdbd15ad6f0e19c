// Command gridsearch animates A* on randomly generated grids in the terminal.
//
// Settings come from the environment or a .env file (see internal/config).
// Keys: r regenerates the grid, q / Esc / Ctrl-C quits.
package main

import (
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridsearch/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("[APP] [FATAL] open log file: %v", err)
	}
	defer f.Close()
	logger := log.New(f, "", log.LstdFlags|log.Lshortfile)

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatalf("[APP] [FATAL] create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatalf("[APP] [FATAL] init screen: %v", err)
	}

	if err := run(screen, cfg, logger); err != nil {
		screen.Fini()
		logger.Printf("[APP] [ERROR] %v", err)
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	screen.Fini()
}

// run drives the demo until the user quits or an error occurs.
func run(screen tcell.Screen, cfg config.Config, logger *log.Logger) error {
	d := newDemo(screen, cfg, logger)
	if err := d.reset(); err != nil {
		return err
	}

	ticker := time.NewTicker(cfg.FrameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		// PollEvent returns nil once the screen is finalized.
		for ev := screen.PollEvent(); ev != nil; ev = screen.PollEvent() {
			events <- ev
		}
		close(events)
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			keepGoing, err := d.handle(ev)
			if err != nil {
				return err
			}
			if !keepGoing {
				logger.Printf("[APP] [INFO] quit")
				return nil
			}

		case now := <-ticker.C:
			if err := d.tick(now); err != nil {
				return err
			}
		}
	}
}
