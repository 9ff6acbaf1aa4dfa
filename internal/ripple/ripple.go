// Package ripple maintains expanding ring perturbations that force grid
// cells alive. Ripples are seeded by pointer presses and aged once per
// generation tick; they perturb the automaton rather than drawing on top
// of it.
package ripple

import (
	"math"

	"lifegrid/internal/core"
)

// DefaultMaxAge is the number of ticks a ripple stays active.
const DefaultMaxAge = 10

// Surface is the part of a life board a ripple writes to.
type Surface interface {
	Size() core.Size
	Set(x, y int, alive bool)
}

// Ripple is a single expanding ring centered on a clicked cell.
type Ripple struct {
	X, Y int
	Age  int
}

// Set holds the active ripples.
type Set struct {
	ripples []Ripple
	maxAge  int
}

// NewSet returns an empty ripple set. A maxAge below 1 falls back to
// DefaultMaxAge.
func NewSet(maxAge int) *Set {
	if maxAge < 1 {
		maxAge = DefaultMaxAge
	}
	return &Set{maxAge: maxAge}
}

// Spawn adds a fresh ripple at (x, y).
func (s *Set) Spawn(x, y int) {
	s.ripples = append(s.ripples, Ripple{X: x, Y: y})
}

// Len returns the number of active ripples.
func (s *Set) Len() int { return len(s.ripples) }

// Clear drops all active ripples.
func (s *Set) Clear() { s.ripples = s.ripples[:0] }

// Apply marks cells alive for every active ripple. An age-0 ripple marks only
// its center; an older one marks the one-cell-thick ring at radius equal to
// its age, clipped to the grid. Cells are only ever set alive, so the order
// of application is irrelevant.
func (s *Set) Apply(surface Surface) {
	for _, r := range s.ripples {
		applyRing(surface, r)
	}
}

// Advance ages every ripple by one tick and removes the expired ones.
func (s *Set) Advance() {
	kept := s.ripples[:0]
	for _, r := range s.ripples {
		r.Age++
		if r.Age <= s.maxAge {
			kept = append(kept, r)
		}
	}
	s.ripples = kept
}

func applyRing(surface Surface, r Ripple) {
	if r.Age == 0 {
		surface.Set(r.X, r.Y, true)
		return
	}
	size := surface.Size()
	radius := r.Age
	lo := float64(radius) - 0.5
	hi := float64(radius) + 0.5
	for dy := -radius; dy <= radius; dy++ {
		y := r.Y + dy
		if y < 0 || y >= size.H {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := r.X + dx
			if x < 0 || x >= size.W {
				continue
			}
			d := math.Sqrt(float64(dx*dx + dy*dy))
			if d >= lo && d <= hi {
				surface.Set(x, y, true)
			}
		}
	}
}
