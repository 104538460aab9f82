package game

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"reflect"
	"strings"
	"testing"
)

type recorder struct {
	ops []string
}

func (r *recorder) Clear(c color.RGBA) { r.ops = append(r.ops, fmt.Sprintf("clear %v", c)) }

func (r *recorder) DrawRect(cell Cell, size int, fill, border color.RGBA) {
	r.ops = append(r.ops, fmt.Sprintf("rect %d,%d %d %v", cell.X, cell.Y, size, fill))
}

func (r *recorder) DrawText(s string, x, y int, c color.RGBA) {
	r.ops = append(r.ops, fmt.Sprintf("text %q %d,%d", s, x, y))
}

func (r *recorder) Present() { r.ops = append(r.ops, "present") }

type scriptedInput struct {
	polls [][]Event
	n     int
}

func (in *scriptedInput) Poll() []Event {
	in.n++
	if len(in.polls) == 0 {
		return nil
	}
	evs := in.polls[0]
	in.polls = in.polls[1:]
	return evs
}

func key(k Key) Event { return Event{Kind: EventKey, Key: k} }

func TestStepEatsFood(t *testing.T) {
	const seed = 7
	c := NewController(DefaultConfig(), 0, WithFood(NewFood(seed, testBoard)))
	twin := NewFood(seed, testBoard)
	wantFood := twin.Relocate(testBoard.Width, testBoard.Height)

	c.food.pos = c.snake.HeadPosition().Add(Right)
	if quit := c.Step(nil); quit {
		t.Fatal("unexpected quit")
	}
	if c.Snake().TargetLength() != 2 {
		t.Errorf("target length = %d, want 2", c.Snake().TargetLength())
	}
	if c.Score() != 10 {
		t.Errorf("score = %d, want 10", c.Score())
	}
	if c.Food().Position() != wantFood {
		t.Errorf("food at %v, want relocation to %v", c.Food().Position(), wantFood)
	}

	c.food.pos = Cell{0, 0}
	c.Step(nil)
	if c.Snake().Len() != 2 {
		t.Errorf("len after next tick = %d, want 2", c.Snake().Len())
	}
}

func TestStepSelfCollisionResets(t *testing.T) {
	var buf bytes.Buffer
	c := NewController(DefaultConfig(), 3, WithLogger(log.New(&buf, "", 0)))
	c.food.pos = Cell{0, 0}
	c.score = 30
	c.snake.segments = []Cell{{5, 5}, {6, 5}, {6, 4}, {5, 4}, {4, 4}}
	c.snake.targetLength = 5
	c.snake.direction = Up

	c.Step(nil)
	if c.Score() != 0 {
		t.Errorf("score = %d, want 0", c.Score())
	}
	if got := c.Snake().Segments(); !reflect.DeepEqual(got, []Cell{testBoard.Center()}) {
		t.Errorf("segments = %v, want [center]", got)
	}
	if !strings.Contains(buf.String(), "self collision") {
		t.Errorf("log = %q, want self collision entry", buf.String())
	}
}

func TestStepDirectionRequests(t *testing.T) {
	c := NewController(DefaultConfig(), 5)
	c.food.pos = Cell{0, 0}
	head := c.Snake().HeadPosition()

	c.Step([]Event{key(KeyLeft)})
	if c.Snake().Direction() != Right {
		t.Fatalf("reversal accepted: direction %v", c.Snake().Direction())
	}

	c.Step([]Event{key(KeyUp), key(KeyDown)})
	if c.Snake().Direction() != Down {
		t.Errorf("direction = %v, want latest valid request down", c.Snake().Direction())
	}
	want := Cell{head.X + 1, head.Y + 1}
	if c.Snake().HeadPosition() != want {
		t.Errorf("head = %v, want %v", c.Snake().HeadPosition(), want)
	}
}

func TestStepQuit(t *testing.T) {
	c := NewController(DefaultConfig(), 5)
	head := c.Snake().HeadPosition()
	for _, ev := range []Event{{Kind: EventQuit}, key(KeyQuit)} {
		if !c.Step([]Event{key(KeyUp), ev}) {
			t.Errorf("Step(%+v) did not quit", ev)
		}
	}
	if c.Ticks() != 0 || c.Snake().HeadPosition() != head {
		t.Error("state advanced on a quit tick")
	}
}

func TestFullLapThroughController(t *testing.T) {
	c := NewController(DefaultConfig(), 11)
	c.food.pos = Cell{0, 0}
	start := c.Snake().HeadPosition()
	for i := 0; i < testBoard.Width; i++ {
		c.Step(nil)
	}
	if c.Snake().HeadPosition() != start || c.Snake().Len() != 1 {
		t.Errorf("after %d ticks head %v len %d, want %v and 1",
			testBoard.Width, c.Snake().HeadPosition(), c.Snake().Len(), start)
	}
}

func TestRenderOrder(t *testing.T) {
	c := NewController(DefaultConfig(), 5)
	c.food.pos = Cell{1, 2}
	c.score = 20
	var r recorder
	c.Render(&r)

	p := DefaultConfig().Colors
	want := []string{
		fmt.Sprintf("clear %v", p.Background),
		fmt.Sprintf("rect 16,12 20 %v", p.Snake),
		fmt.Sprintf("rect 1,2 20 %v", p.Food),
		`text "Score: 20" 5,5`,
		"present",
	}
	if !reflect.DeepEqual(r.ops, want) {
		t.Errorf("ops =\n%s\nwant\n%s", strings.Join(r.ops, "\n"), strings.Join(want, "\n"))
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickRate = 1000
	c := NewController(cfg, 5)
	c.food.pos = Cell{0, 0}
	in := &scriptedInput{polls: [][]Event{nil, nil, nil, {{Kind: EventQuit}}}}
	var r recorder

	if err := c.Run(context.Background(), in, &r); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if c.Ticks() != 3 {
		t.Errorf("ticks = %d, want 3", c.Ticks())
	}
	presents := 0
	for _, op := range r.ops {
		if op == "present" {
			presents++
		}
	}
	if presents != 4 {
		t.Errorf("frames = %d, want 4", presents)
	}
}

func TestRunHonorsContext(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickRate = 1
	c := NewController(cfg, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Run(ctx, &scriptedInput{}, &recorder{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}
