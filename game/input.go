package game

// Key is a backend independent key code.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
)

type EventKind int

const (
	EventKey EventKind = iota
	EventQuit
)

type Event struct {
	Kind EventKind
	Key  Key
}

// Input yields the events gathered since the previous poll.
type Input interface {
	Poll() []Event
}

var keyDirections = map[Key]Direction{
	KeyUp:    Up,
	KeyDown:  Down,
	KeyLeft:  Left,
	KeyRight: Right,
}

func DirectionFor(k Key) (Direction, bool) {
	d, ok := keyDirections[k]
	return d, ok
}

// IsQuit reports whether ev should end the game loop.
func IsQuit(ev Event) bool {
	return ev.Kind == EventQuit || (ev.Kind == EventKey && ev.Key == KeyQuit)
}
