package game

// DOM keydown codes for the arrow keys.
const (
	KeyCodeLeft  = 37
	KeyCodeUp    = 38
	KeyCodeRight = 39
	KeyCodeDown  = 40
)

// MapKeyCode translates a raw keydown code into an intent. Unmapped codes
// yield nil, which callers drop.
func MapKeyCode(code int) Intent {
	switch code {
	case KeyCodeLeft:
		return Face{Dir: Left}
	case KeyCodeUp:
		return Face{Dir: Up}
	case KeyCodeRight:
		return Face{Dir: Right}
	case KeyCodeDown:
		return Face{Dir: Down}
	}
	return nil
}
