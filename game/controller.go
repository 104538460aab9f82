package game

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"
)

const foodScore = 10

// Controller owns the game state and advances it one tick at a time.
type Controller struct {
	cfg   Config
	board Board
	snake *Snake
	food  *Food
	score int
	ticks int
	log   *log.Logger
}

type Option func(*Controller)

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithFood replaces the initial food, mostly useful to pin the seed.
func WithFood(f *Food) Option {
	return func(c *Controller) { c.food = f }
}

func NewController(cfg Config, seed uint64, opts ...Option) *Controller {
	board := cfg.Board()
	c := &Controller{
		cfg:   cfg,
		board: board,
		snake: NewSnake(board),
		log:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.food == nil {
		c.food = NewFood(seed, board)
	}
	return c
}

func (c *Controller) Config() Config { return c.cfg }
func (c *Controller) Snake() *Snake  { return c.snake }
func (c *Controller) Food() *Food    { return c.food }
func (c *Controller) Score() int     { return c.score }
func (c *Controller) Ticks() int     { return c.ticks }

// Step applies the events of one tick and advances the simulation. It
// reports true when a quit event was seen, in which case the state is left
// untouched.
func (c *Controller) Step(events []Event) (quit bool) {
	for _, ev := range events {
		if IsQuit(ev) {
			return true
		}
	}
	for _, ev := range events {
		if ev.Kind != EventKey {
			continue
		}
		if d, ok := DirectionFor(ev.Key); ok {
			c.snake.SetPendingDirection(d)
		}
	}

	c.ticks++
	c.snake.ApplyPendingDirection()
	c.snake.Move(c.board.Width, c.board.Height)

	if c.snake.HeadPosition() == c.food.Position() {
		c.snake.Grow()
		c.score += foodScore
		next := c.food.Relocate(c.board.Width, c.board.Height)
		c.log.Printf("tick %d: food eaten, score %d, food moved to %v", c.ticks, c.score, next)
	}

	if c.snake.HasSelfCollision() {
		c.log.Printf("tick %d: self collision at %v, score %d lost", c.ticks, c.snake.HeadPosition(), c.score)
		c.snake.Reset()
		c.score = 0
	}
	return false
}

// Render draws the current frame: background, snake, food and score.
func (c *Controller) Render(r Renderer) {
	p := c.cfg.Colors
	r.Clear(p.Background)
	for _, d := range []Drawable{c.snake, c.food} {
		d.Draw(r, c.cfg.GridSize, p)
	}
	r.DrawText(fmt.Sprintf("Score: %d", c.score), 5, 5, p.Text)
	r.Present()
}

// Run drives the loop for backends that do not schedule ticks themselves. It
// renders once up front, then ticks at the configured rate until a quit event
// arrives or ctx is done.
func (c *Controller) Run(ctx context.Context, in Input, r Renderer) error {
	ticker := time.NewTicker(c.cfg.FrameInterval())
	defer ticker.Stop()

	c.Render(r)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if c.Step(in.Poll()) {
			return nil
		}
		c.Render(r)
	}
}
