package game

import "testing"

func TestMapKeyCodeArrows(t *testing.T) {
	want := map[int]Direction{
		KeyCodeLeft:  Left,
		KeyCodeUp:    Up,
		KeyCodeRight: Right,
		KeyCodeDown:  Down,
	}
	for code, dir := range want {
		in := MapKeyCode(code)
		face, ok := in.(Face)
		if !ok {
			t.Fatalf("MapKeyCode(%d) = %T, want Face", code, in)
		}
		if face.Dir != dir {
			t.Errorf("MapKeyCode(%d) faces %v, want %v", code, face.Dir, dir)
		}
	}
}

func TestMapKeyCodeIgnoresUnknown(t *testing.T) {
	for _, code := range []int{0, 13, 27, 65, 1000, -1} {
		if in := MapKeyCode(code); in != nil {
			t.Errorf("MapKeyCode(%d) = %v, want nil", code, in)
		}
	}
}
