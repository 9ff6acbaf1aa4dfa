package life

import (
	"fmt"

	"lifegrid/internal/core"
)

// GridSizes is the closed set of side lengths the board accepts.
var GridSizes = []int{32, 48, 64, 96, 128}

// Board implements Conway's Game of Life on a bounded grid. Cells outside the
// grid are never counted, so border cells see fewer neighbors.
type Board struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid
}

// New returns a Board with the provided dimensions.
func New(w, h int) *Board {
	return &Board{cur: core.NewByteGrid(w, h), nxt: core.NewByteGrid(w, h)}
}

// Name returns the simulation identifier.
func (b *Board) Name() string { return "life" }

// Size returns the grid dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.cur.W, H: b.cur.H} }

// Cells exposes the current grid values.
func (b *Board) Cells() []uint8 { return b.cur.Cells() }

// Get reports whether the cell at (x, y) is alive. Out-of-range coordinates
// read as dead.
func (b *Board) Get(x, y int) bool {
	return b.cur.Get(x, y) == 1
}

// Set forces the cell at (x, y) alive or dead. Out-of-range coordinates are
// ignored.
func (b *Board) Set(x, y int, alive bool) {
	v := uint8(0)
	if alive {
		v = 1
	}
	b.cur.Set(x, y, v)
}

// Toggle flips the cell under a pointer press.
func (b *Board) Toggle(x, y int) {
	b.Set(x, y, !b.Get(x, y))
}

// Click implements core.Clicker by toggling the pressed cell.
func (b *Board) Click(x, y int) { b.Toggle(x, y) }

// Clear kills every cell.
func (b *Board) Clear() { b.cur.Clear() }

// Reset randomizes the board using the provided seed.
func (b *Board) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillDensity(rng, b.cur.Cells(), 0.35)
}

// Neighbors counts the alive cells in the Moore neighborhood of (x, y).
// The cell itself is excluded and positions outside the grid are skipped.
func (b *Board) Neighbors(x, y int) int {
	cells := b.cur.Cells()
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !b.cur.InBounds(nx, ny) {
				continue
			}
			count += int(cells[b.cur.Index(nx, ny)])
		}
	}
	return count
}

// Step advances the simulation by one generation. The next grid is computed
// entirely from the current one, then the buffers are swapped, so no partial
// update is ever observable.
func (b *Board) Step() {
	cur := b.cur.Cells()
	nxt := b.nxt.Cells()
	w, h := b.cur.W, b.cur.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := b.Neighbors(x, y)
			idx := y*w + x
			alive := cur[idx] == 1
			nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[idx] = 1
			}
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

// ValidSize reports whether n is one of the supported grid side lengths.
func ValidSize(n int) bool {
	for _, s := range GridSizes {
		if s == n {
			return true
		}
	}
	return false
}

// NextSize returns the supported side length delta positions away from cur,
// clamped at the ends of the set. An unknown cur snaps to the nearest member.
func NextSize(cur, delta int) int {
	idx := 0
	best := 1 << 30
	for i, s := range GridSizes {
		d := s - cur
		if d < 0 {
			d = -d
		}
		if d < best {
			best = d
			idx = i
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(GridSizes) {
		idx = len(GridSizes) - 1
	}
	return GridSizes[idx]
}

// Resize reallocates the board at n x n when n is a supported size. The grid
// comes back empty; previous contents are discarded.
func (b *Board) Resize(n int) bool {
	if !ValidSize(n) {
		return false
	}
	b.cur = core.NewByteGrid(n, n)
	b.nxt = core.NewByteGrid(n, n)
	return true
}

// Population returns the number of alive cells.
func (b *Board) Population() int {
	total := 0
	for _, c := range b.cur.Cells() {
		total += int(c)
	}
	return total
}

// Parameters publishes the board state for the HUD.
func (b *Board) Parameters() core.ParameterSnapshot {
	size := b.Size()
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Board",
				Params: []core.Parameter{
					{Key: "size", Label: "Size", Type: core.ParamTypeInt, Value: fmt.Sprintf("%dx%d", size.W, size.H)},
					{Key: "population", Label: "Alive", Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", b.Population())},
				},
			},
		},
	}
}

// SetIntParameter accepts "size" updates from the frontends.
func (b *Board) SetIntParameter(key string, value int) bool {
	if key != "size" {
		return false
	}
	return b.Resize(value)
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
