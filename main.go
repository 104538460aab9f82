package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sarwarhridoy4/snake-go/game"
	"github.com/sarwarhridoy4/snake-go/ui/terminal"
	"github.com/sarwarhridoy4/snake-go/ui/window"
)

func main() {
	backend := flag.String("backend", "window", "where to play: window or terminal")
	seed := flag.Uint64("seed", 0, "food placement seed, 0 seeds from the clock")
	flag.Parse()

	cfg := game.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	switch *backend {
	case "window":
		c := game.NewController(cfg, *seed, game.WithLogger(log.Default()))
		if err := window.Run(c); err != nil {
			log.Fatal(err)
		}
	case "terminal":
		if err := runTerminal(cfg, *seed); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown backend %q", *backend)
	}
}

// runTerminal keeps the logger quiet while the screen is up; anything written
// to stderr would land on top of the board.
func runTerminal(cfg game.Config, seed uint64) error {
	term, err := terminal.Open(cfg.GridSize)
	if err != nil {
		return err
	}
	defer term.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := game.NewController(cfg, seed)
	if err := c.Run(ctx, term, term); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
