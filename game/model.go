package game

const initialLength = 3

// StartMessage is shown on the initial idle model; GameOverMessage after a
// fatal collision. Both states are idle and await a Play intent.
const (
	StartMessage    = "Press Enter or Space to start"
	GameOverMessage = "Game Over"
)

// Model is the whole game state. Step treats it as a value: every intent
// produces a replacement model, nothing is mutated in place.
type Model struct {
	Snake   Snake
	Dir     Direction // direction of the last advance
	NextDir Direction // most recent requested direction, applied lazily
	Running bool
	Message string
	Delta   float64 // accumulated unconsumed milliseconds
	Food    Point
	HasFood bool // false between eating and the PlaceFood that re-arms it
}

// NewModel returns the start state: a three-segment snake lying
// horizontally mid-board, facing right, paused on the start prompt. Food
// appears once the first Play intent issues its spawn command.
func NewModel() Model {
	mid := GridSize / 2
	return Model{
		Snake:   Snake{{mid, mid}, {mid - 1, mid}, {mid - 2, mid}},
		Dir:     Right,
		NextDir: Right,
		Message: StartMessage,
	}
}

// Score is the number of food items eaten so far.
func (m Model) Score() int { return len(m.Snake) - initialLength }
