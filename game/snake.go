package game

// Snake is the player entity. segments[0] is the head.
type Snake struct {
	segments     []Cell
	direction    Direction
	pending      Direction
	targetLength int
	center       Cell
}

// NewSnake returns a length one snake at the center of b, heading right.
func NewSnake(b Board) *Snake {
	s := &Snake{center: b.Center()}
	s.Reset()
	return s
}

// SetPendingDirection stores d for the next move. Reversing onto the current
// direction is ignored.
func (s *Snake) SetPendingDirection(d Direction) {
	if d == None || d == s.direction.Opposite() {
		return
	}
	s.pending = d
}

func (s *Snake) ApplyPendingDirection() {
	if s.pending == None {
		return
	}
	s.direction = s.pending
	s.pending = None
}

func (s *Snake) Move(width, height int) {
	head := Wrap(s.HeadPosition().Add(s.direction), width, height)
	s.segments = append(s.segments, Cell{})
	copy(s.segments[1:], s.segments)
	s.segments[0] = head
	if len(s.segments) > s.targetLength {
		s.segments = s.segments[:len(s.segments)-1]
	}
}

// Grow lengthens the snake by one cell on the next Move.
func (s *Snake) Grow() {
	s.targetLength++
}

func (s *Snake) HeadPosition() Cell { return s.segments[0] }

func (s *Snake) HasSelfCollision() bool {
	head := s.HeadPosition()
	for _, c := range s.segments[1:] {
		if c == head {
			return true
		}
	}
	return false
}

func (s *Snake) Reset() {
	s.targetLength = 1
	s.segments = []Cell{s.center}
	s.direction = Right
	s.pending = None
}

func (s *Snake) Position() Cell { return s.HeadPosition() }

func (s *Snake) Segments() []Cell {
	out := make([]Cell, len(s.segments))
	copy(out, s.segments)
	return out
}

func (s *Snake) Len() int             { return len(s.segments) }
func (s *Snake) TargetLength() int    { return s.targetLength }
func (s *Snake) Direction() Direction { return s.direction }
func (s *Snake) Pending() Direction   { return s.pending }

func (s *Snake) Draw(r Renderer, size int, p Palette) {
	for _, c := range s.segments {
		r.DrawRect(c, size, p.Snake, p.Border)
	}
}
