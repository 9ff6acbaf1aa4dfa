// Package ambient runs the free-running show: a life board periodically
// reseeded with a stamped banner and scattered shapes, perturbed by
// click-seeded ripples.
package ambient

import (
	"fmt"
	"math/rand/v2"

	"lifegrid/internal/core"
	"lifegrid/internal/pattern"
	"lifegrid/internal/ripple"
	"lifegrid/internal/sims/life"
)

// Show wraps a life board with the ripple engine and the periodic reseed.
type Show struct {
	cfg Config

	board   *life.Board
	ripples *ripple.Set
	rng     *rand.Rand
	ticks   int
}

// NewWithConfig returns a Show configured from the provided options.
func NewWithConfig(cfg Config) *Show {
	return &Show{
		cfg:     cfg,
		board:   life.New(cfg.Width, cfg.Height),
		ripples: ripple.NewSet(cfg.MaxAge),
		rng:     core.NewRNG(cfg.Seed).Source(),
	}
}

// New returns a Show with the provided dimensions using defaults.
func New(w, h int) *Show {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// Name returns the simulation identifier.
func (s *Show) Name() string { return "ambient" }

// Size reports the grid dimensions.
func (s *Show) Size() core.Size { return s.board.Size() }

// Cells exposes the current grid values.
func (s *Show) Cells() []uint8 { return s.board.Cells() }

// Board exposes the underlying life board.
func (s *Show) Board() *life.Board { return s.board }

// Ripples exposes the active ripple set.
func (s *Show) Ripples() *ripple.Set { return s.ripples }

// Ticks returns the number of steps taken since the last Reset.
func (s *Show) Ticks() int { return s.ticks }

// Reset reseeds the RNG and lays out a fresh board: banner on top, random
// shapes scattered below. Active ripples are dropped.
func (s *Show) Reset(seed int64) {
	s.rng = core.NewRNG(seed).Source()
	s.ripples.Clear()
	s.ticks = 0
	s.layout()
}

// Step advances the show by one tick: at most one periodic reseed, then
// ripple application, then one life generation, then ripple aging. Rings are
// written before the generation is computed so they perturb the automaton.
func (s *Show) Step() {
	if s.cfg.ResetEvery > 0 && s.ticks > 0 && s.ticks%s.cfg.ResetEvery == 0 {
		s.layout()
	}
	s.ripples.Apply(s.board)
	s.board.Step()
	s.ripples.Advance()
	s.ticks++
}

// Click spawns a ripple at the pressed cell. Out-of-range presses are
// ignored.
func (s *Show) Click(x, y int) {
	size := s.board.Size()
	if x < 0 || x >= size.W || y < 0 || y >= size.H {
		return
	}
	s.ripples.Spawn(x, y)
}

// Clear blanks the board and drops the active ripples.
func (s *Show) Clear() {
	s.board.Clear()
	s.ripples.Clear()
}

// layout stamps the banner and scatters random shapes onto a blank board,
// drawing from the ongoing RNG stream.
func (s *Show) layout() {
	s.board.Clear()

	size := s.board.Size()
	glyphs := pattern.Word(s.cfg.Banner)
	bannerW := 0
	for _, g := range glyphs {
		bannerW += g.Width() + 1
	}
	if bannerW > 0 {
		bannerW--
	}
	pattern.StampWord(s.board, s.cfg.Banner, (size.W-bannerW)/2, size.H/6)

	shapes := pattern.Shapes()
	for i := 0; i < s.cfg.Scatter && len(shapes) > 0; i++ {
		p := shapes[s.rng.IntN(len(shapes))]
		x := s.rng.IntN(size.W)
		y := s.rng.IntN(size.H)
		pattern.Stamp(s.board, p, x, y)
	}
}

// Parameters publishes the show state for the HUD.
func (s *Show) Parameters() core.ParameterSnapshot {
	size := s.board.Size()
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Show",
				Params: []core.Parameter{
					{Key: "size", Label: "Size", Type: core.ParamTypeInt, Value: fmt.Sprintf("%dx%d", size.W, size.H)},
					{Key: "population", Label: "Alive", Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", s.board.Population())},
					{Key: "ripples", Label: "Ripples", Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", s.ripples.Len())},
					{Key: "ticks", Label: "Tick", Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", s.ticks)},
				},
			},
		},
	}
}

// SetIntParameter accepts "size" updates; resizing drops active ripples so no
// stale ring writes land on the new board.
func (s *Show) SetIntParameter(key string, value int) bool {
	if key != "size" {
		return false
	}
	if !s.board.Resize(value) {
		return false
	}
	s.ripples.Clear()
	s.layout()
	return true
}

func init() {
	core.Register("ambient", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
