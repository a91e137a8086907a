package game

import "testing"

func TestAliveOnBoard(t *testing.T) {
	s := Snake{{3, 1}, {2, 1}, {1, 1}}
	if !s.Alive() {
		t.Fatalf("distinct in-bounds snake %v reported dead", s)
	}
}

func TestDeadOutsideBoard(t *testing.T) {
	for _, s := range []Snake{
		{{40, 1}, {39, 1}},
		{{-1, 7}, {0, 7}},
		{{12, 40}, {12, 39}},
		{{12, -1}, {12, 0}},
	} {
		if s.Alive() {
			t.Errorf("snake with head %v off the board reported alive", s.Head())
		}
	}
}

func TestDeadOnOverlap(t *testing.T) {
	if (Snake{{5, 5}, {5, 5}}).Alive() {
		t.Fatal("fully overlapping snake reported alive")
	}
	if (Snake{{5, 5}, {4, 5}, {4, 6}, {5, 6}, {5, 5}}).Alive() {
		t.Fatal("snake with duplicated segment reported alive")
	}
}
