package game

// Intent is one discrete input event: a key press, a clock tick, a
// play/pause request, or the delivered result of a food spawn.
type Intent interface{ isIntent() }

type (
	// Play starts or resumes the game.
	Play struct{}
	// Pause stops the game and shows Reason.
	Pause struct{ Reason string }
	// Tick carries the milliseconds elapsed since the previous frame.
	Tick struct{ DeltaMs float64 }
	// Face requests a direction change, applied at the next advance.
	Face struct{ Dir Direction }
	// PlaceFood delivers the cell chosen by a spawn command.
	PlaceFood struct{ At Point }
)

func (Play) isIntent()      {}
func (Pause) isIntent()     {}
func (Tick) isIntent()      {}
func (Face) isIntent()      {}
func (PlaceFood) isIntent() {}

// Cmd is a deferred effect produced by Step. Running it yields the intent
// to feed back through Step. The only effect in this game is the random
// food draw.
type Cmd func() Intent

// FrameMs is the fixed game time per discrete advance, independent of the
// host's render rate.
const FrameMs = 80.0

// Step is the state machine: it applies one intent to the model and
// returns the replacement model plus an optional command.
func Step(m Model, in Intent) (Model, Cmd) {
	switch in := in.(type) {
	case Play:
		m.Running = true
		m.Delta = 0
		m.Message = ""
		if !m.HasFood {
			return m, SpawnFood(m.Snake)
		}
	case Pause:
		m.Running = false
		m.Message = in.Reason
	case Face:
		// Reversal legality is checked at the next advance, so of rapid
		// presses within one frame only the last one counts.
		m.NextDir = in.Dir
	case PlaceFood:
		m.Food = in.At
		m.HasFood = true
	case Tick:
		if !m.Running {
			return m, nil
		}
		m.Delta += in.DeltaMs
		// Consume whole frames, advancing once per frame, so a large
		// delta (dropped frame) never leaves the simulation behind.
		ate := false
		for m.Delta >= FrameMs {
			m.Delta -= FrameMs
			var a bool
			m, a = advance(m)
			ate = ate || a
			if !m.Running {
				break
			}
		}
		if ate {
			return m, SpawnFood(m.Snake)
		}
	}
	return m, nil
}

// advance moves the snake one cell, growing it when the new head lands on
// food, and validates the result. A failed validation is the game-over
// transition: Running goes false and no further frames are consumed.
func advance(m Model) (Model, bool) {
	m.Dir = Resolve(m.Dir, m.NextDir)
	head := m.Snake.Head().Move(m.Dir)

	ate := m.HasFood && head == m.Food
	if ate {
		m.Snake = append(Snake{head}, m.Snake...)
		m.HasFood = false
	} else {
		m.Snake = append(Snake{head}, m.Snake[:len(m.Snake)-1]...)
	}

	if !m.Snake.Alive() {
		m.Running = false
		m.Message = GameOverMessage
	}
	return m, ate
}
