package game

// Snake is the body as an ordered cell sequence, head first. It is never
// empty: NewModel starts it with three segments and every advance prepends
// a new head.
type Snake []Point

func (s Snake) Head() Point { return s[0] }

func (s Snake) Contains(p Point) bool {
	for _, q := range s {
		if q == p {
			return true
		}
	}
	return false
}

// Alive reports whether the snake is still in play: the head is on the
// board and no two segments share a cell.
func (s Snake) Alive() bool {
	h := s.Head()
	if h.X < 0 || h.X >= GridSize || h.Y < 0 || h.Y >= GridSize {
		return false
	}
	seen := make(map[Point]struct{}, len(s))
	for _, p := range s {
		if _, dup := seen[p]; dup {
			return false
		}
		seen[p] = struct{}{}
	}
	return true
}
