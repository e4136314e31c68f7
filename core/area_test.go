package core

import "testing"

func TestAreaContains(t *testing.T) {
	a := Area{X: 2, Y: 3, Width: 4, Height: 2}

	inside := [][2]int{{2, 3}, {5, 3}, {2, 4}, {5, 4}}
	for _, p := range inside {
		if !a.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d,%d) = false, want true", p[0], p[1])
		}
	}

	outside := [][2]int{{1, 3}, {6, 3}, {2, 2}, {2, 5}, {0, 0}}
	for _, p := range outside {
		if a.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d,%d) = true, want false", p[0], p[1])
		}
	}
}

func TestAreaInset(t *testing.T) {
	a := Area{X: 2, Y: 2, Width: 10, Height: 6}
	got := a.Inset(1)
	want := Area{X: 3, Y: 3, Width: 8, Height: 4}
	if got != want {
		t.Fatalf("Inset(1) = %+v, want %+v", got, want)
	}
}

func TestAreaInsetCollapses(t *testing.T) {
	a := Area{X: 0, Y: 0, Width: 1, Height: 1}
	got := a.Inset(1)
	if !got.Empty() {
		t.Fatalf("Inset of 1x1 = %+v, want empty", got)
	}
	if got.Width < 0 || got.Height < 0 {
		t.Fatalf("Inset produced negative dimensions: %+v", got)
	}
}

func TestEmptyAreaContainsNothing(t *testing.T) {
	var a Area
	if a.Contains(0, 0) {
		t.Fatal("empty area contains (0,0)")
	}
}
