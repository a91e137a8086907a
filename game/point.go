package game

// GridSize is the board edge length in cells. Valid coordinates run
// 0..GridSize-1 on both axes; y grows downward.
const GridSize = 40

type Point struct{ X, Y int }

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}

// Move returns p translated one cell in direction d.
func (p Point) Move(d Direction) Point {
	switch d {
	case Up:
		return Point{p.X, p.Y - 1}
	case Down:
		return Point{p.X, p.Y + 1}
	case Left:
		return Point{p.X - 1, p.Y}
	}
	return Point{p.X + 1, p.Y}
}

// Resolve applies a requested direction change. An exact reversal is
// refused and the current direction kept: the snake can never turn straight
// back into its own neck.
func Resolve(current, desired Direction) Direction {
	if desired == current.Opposite() {
		return current
	}
	return desired
}
