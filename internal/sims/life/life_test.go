package life

import (
	"slices"
	"testing"
)

func emptyBoard(t *testing.T, n int) *Board {
	t.Helper()
	b := New(n, n)
	b.Clear()
	return b
}

func TestBlinkerOscillation(t *testing.T) {
	b := emptyBoard(t, 5)
	b.Set(2, 1, true)
	b.Set(2, 2, true)
	b.Set(2, 3, true)

	b.Step()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if b.Get(x, y) != shouldBeAlive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, b.Get(x, y), shouldBeAlive)
			}
		}
	}

	b.Step()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if b.Get(x, y) != shouldBeAlive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, b.Get(x, y), shouldBeAlive)
			}
		}
	}
}

func TestIsolatedCellDies(t *testing.T) {
	b := emptyBoard(t, 3)
	b.Set(1, 1, true)

	b.Step()

	if b.Population() != 0 {
		t.Fatalf("isolated cell must die, population=%d", b.Population())
	}
}

func TestBirthOnExactlyThreeNeighbors(t *testing.T) {
	b := emptyBoard(t, 5)
	b.Set(1, 1, true)
	b.Set(2, 1, true)
	b.Set(1, 2, true)

	b.Step()

	if !b.Get(2, 2) {
		t.Fatal("dead cell with 3 neighbors must become alive")
	}
}

func TestNoBirthBelowOrAboveThree(t *testing.T) {
	cases := []struct {
		name      string
		neighbors [][2]int
	}{
		{"two neighbors", [][2]int{{1, 1}, {2, 1}}},
		{"four neighbors", [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}}},
	}
	for _, tc := range cases {
		b := emptyBoard(t, 5)
		for _, c := range tc.neighbors {
			b.Set(c[0], c[1], true)
		}
		if b.Get(2, 2) {
			t.Fatalf("%s: target cell should start dead", tc.name)
		}
		b.Step()
		if b.Get(2, 2) {
			t.Fatalf("%s: dead cell must stay dead", tc.name)
		}
	}
}

func TestSurvivalRules(t *testing.T) {
	// Block: every cell has 3 neighbors, still life.
	b := emptyBoard(t, 5)
	b.Set(1, 1, true)
	b.Set(2, 1, true)
	b.Set(1, 2, true)
	b.Set(2, 2, true)

	before := append([]uint8(nil), b.Cells()...)
	b.Step()
	if !slices.Equal(before, b.Cells()) {
		t.Fatal("block must be a still life")
	}

	// Overcrowding: center of a plus sign has 4 neighbors and dies.
	b = emptyBoard(t, 5)
	b.Set(2, 2, true)
	b.Set(1, 2, true)
	b.Set(3, 2, true)
	b.Set(2, 1, true)
	b.Set(2, 3, true)
	b.Step()
	if b.Get(2, 2) {
		t.Fatal("cell with 4 neighbors must die")
	}
}

func TestNeighborsBounded(t *testing.T) {
	b := emptyBoard(t, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			b.Set(x, y, true)
		}
	}

	// The corner only sees the 3 in-range positions; there is no wraparound
	// and the cell itself is never counted.
	if got := b.Neighbors(0, 0); got != 3 {
		t.Fatalf("corner neighbors = %d, want 3", got)
	}
	if got := b.Neighbors(1, 0); got != 5 {
		t.Fatalf("edge neighbors = %d, want 5", got)
	}
	if got := b.Neighbors(1, 1); got != 8 {
		t.Fatalf("center neighbors = %d, want 8", got)
	}
}

func TestStepDeterministic(t *testing.T) {
	a := New(32, 32)
	b := New(32, 32)
	a.Reset(7)
	b.Reset(7)

	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("identical seeds and steps must produce identical grids")
	}
}

func TestOutOfRangeAccessIgnored(t *testing.T) {
	b := emptyBoard(t, 3)
	b.Set(-1, 0, true)
	b.Set(0, -1, true)
	b.Set(3, 0, true)
	b.Set(0, 3, true)
	if b.Population() != 0 {
		t.Fatal("out-of-range Set must be ignored")
	}
	if b.Get(-1, -1) || b.Get(3, 3) {
		t.Fatal("out-of-range Get must read dead")
	}
}

func TestToggle(t *testing.T) {
	b := emptyBoard(t, 3)
	b.Toggle(1, 1)
	if !b.Get(1, 1) {
		t.Fatal("toggle must bring a dead cell alive")
	}
	b.Toggle(1, 1)
	if b.Get(1, 1) {
		t.Fatal("toggle must kill an alive cell")
	}
}

func TestResize(t *testing.T) {
	b := New(64, 64)
	b.Reset(3)

	if b.Resize(50) {
		t.Fatal("50 is not a supported size")
	}
	if b.Size().W != 64 {
		t.Fatal("rejected resize must not change dimensions")
	}

	if !b.Resize(32) {
		t.Fatal("32 is a supported size")
	}
	if b.Size().W != 32 || b.Size().H != 32 {
		t.Fatalf("unexpected size after resize: %+v", b.Size())
	}
	if b.Population() != 0 {
		t.Fatal("resized board must come back empty")
	}
	if len(b.Cells()) != 32*32 {
		t.Fatalf("cell buffer not reallocated, len=%d", len(b.Cells()))
	}
}

func TestNextSize(t *testing.T) {
	if got := NextSize(64, 1); got != 96 {
		t.Fatalf("NextSize(64, 1) = %d, want 96", got)
	}
	if got := NextSize(64, -1); got != 48 {
		t.Fatalf("NextSize(64, -1) = %d, want 48", got)
	}
	if got := NextSize(128, 1); got != 128 {
		t.Fatalf("NextSize must clamp at the top, got %d", got)
	}
	if got := NextSize(32, -1); got != 32 {
		t.Fatalf("NextSize must clamp at the bottom, got %d", got)
	}
	// Unknown current size snaps to the nearest member.
	if got := NextSize(60, 0); got != 64 {
		t.Fatalf("NextSize(60, 0) = %d, want 64", got)
	}
}

func TestSetIntParameter(t *testing.T) {
	b := New(64, 64)
	if b.SetIntParameter("speed", 3) {
		t.Fatal("unknown key must be rejected")
	}
	if !b.SetIntParameter("size", 48) {
		t.Fatal("size update must be accepted")
	}
	if b.Size().W != 48 {
		t.Fatalf("size = %d after update, want 48", b.Size().W)
	}
}

func TestFromMapRejectsUnsupportedSizes(t *testing.T) {
	c := FromMap(map[string]string{"size": "50"})
	d := DefaultConfig()
	if c.Width != d.Width || c.Height != d.Height {
		t.Fatalf("invalid sizes must fall back to defaults, got %+v", c)
	}

	c = FromMap(map[string]string{"w": "abc"})
	if c != d {
		t.Fatalf("unparsable sizes must fall back to defaults, got %+v", c)
	}

	c = FromMap(map[string]string{"size": "96"})
	if c.Width != 96 || c.Height != 96 {
		t.Fatalf("valid sizes must be accepted, got %+v", c)
	}
}

func TestFromMapKeepsBoardSquare(t *testing.T) {
	// A stray "h" key must not produce a rectangular board.
	c := FromMap(map[string]string{"w": "32", "h": "96"})
	if c.Width != c.Height {
		t.Fatalf("board must stay square, got %dx%d", c.Width, c.Height)
	}
	if c.Width != 32 {
		t.Fatalf("side length = %d, want 32", c.Width)
	}

	// "size" wins over the "w" alias when both are present.
	c = FromMap(map[string]string{"w": "32", "size": "48"})
	if c.Width != 48 || c.Height != 48 {
		t.Fatalf("size key must take precedence, got %dx%d", c.Width, c.Height)
	}
}
