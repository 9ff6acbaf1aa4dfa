package ripple

import (
	"math"
	"testing"

	"lifegrid/internal/sims/life"
)

func blankBoard(t *testing.T, n int) *life.Board {
	t.Helper()
	b := life.New(n, n)
	b.Clear()
	return b
}

func aliveCells(b *life.Board) map[[2]int]bool {
	alive := map[[2]int]bool{}
	size := b.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if b.Get(x, y) {
				alive[[2]int{x, y}] = true
			}
		}
	}
	return alive
}

func TestAgeZeroMarksOnlyCenter(t *testing.T) {
	b := blankBoard(t, 9)
	s := NewSet(0)
	s.Spawn(4, 4)
	s.Apply(b)

	alive := aliveCells(b)
	if len(alive) != 1 || !alive[[2]int{4, 4}] {
		t.Fatalf("age-0 ripple must mark exactly the center, got %v", alive)
	}
}

func TestRingMembership(t *testing.T) {
	b := blankBoard(t, 21)
	s := NewSet(0)
	s.Spawn(10, 10)
	s.Advance()
	s.Advance()
	s.Apply(b)

	// At age 2 a cell belongs to the ring iff its distance from the center
	// lies in [1.5, 2.5].
	size := b.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			d := math.Hypot(float64(x-10), float64(y-10))
			want := d >= 1.5 && d <= 2.5
			if b.Get(x, y) != want {
				t.Fatalf("cell (%d,%d) d=%.3f alive=%v, want %v", x, y, d, b.Get(x, y), want)
			}
		}
	}
}

func TestRingCellCountAtAgeTwo(t *testing.T) {
	b := blankBoard(t, 21)
	s := NewSet(0)
	s.Spawn(10, 10)
	s.Advance()
	s.Advance()
	s.Apply(b)

	if got := b.Population(); got != 12 {
		t.Fatalf("age-2 ring has %d cells, want 12", got)
	}
}

func TestRingClippedAtBounds(t *testing.T) {
	b := blankBoard(t, 5)
	s := NewSet(0)
	s.Spawn(0, 0)
	s.Advance()
	s.Apply(b)

	// Age 1 near the corner: only the in-bounds part of the ring survives.
	alive := aliveCells(b)
	want := map[[2]int]bool{
		{1, 0}: true,
		{0, 1}: true,
		{1, 1}: true,
	}
	if len(alive) != len(want) {
		t.Fatalf("clipped ring = %v, want %v", alive, want)
	}
	for c := range want {
		if !alive[c] {
			t.Fatalf("missing ring cell %v", c)
		}
	}
}

func TestExpiry(t *testing.T) {
	s := NewSet(10)
	s.Spawn(3, 3)

	for i := 0; i < 10; i++ {
		s.Advance()
		if s.Len() != 1 {
			t.Fatalf("ripple expired early at age %d", i+1)
		}
	}
	s.Advance()
	if s.Len() != 0 {
		t.Fatal("ripple must be removed once age exceeds maxAge")
	}
}

func TestMultipleRipplesIndependent(t *testing.T) {
	b := blankBoard(t, 9)
	s := NewSet(0)
	s.Spawn(2, 2)
	s.Spawn(6, 6)
	s.Apply(b)

	alive := aliveCells(b)
	if len(alive) != 2 || !alive[[2]int{2, 2}] || !alive[[2]int{6, 6}] {
		t.Fatalf("both centers must be marked, got %v", alive)
	}
}

func TestApplyIsAdditive(t *testing.T) {
	b := blankBoard(t, 9)
	b.Set(0, 0, true)
	s := NewSet(0)
	s.Spawn(4, 4)
	s.Apply(b)

	if !b.Get(0, 0) {
		t.Fatal("ripple application must not clear unrelated cells")
	}
}

func TestDefaultMaxAge(t *testing.T) {
	s := NewSet(0)
	s.Spawn(1, 1)
	for i := 0; i < DefaultMaxAge; i++ {
		s.Advance()
	}
	if s.Len() != 1 {
		t.Fatal("ripple must survive through DefaultMaxAge ticks")
	}
	s.Advance()
	if s.Len() != 0 {
		t.Fatal("NewSet(0) must fall back to DefaultMaxAge")
	}
}
