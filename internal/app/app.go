//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifegrid/internal/audio"
	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	aliveColor = color.RGBA{R: 80, G: 200, B: 120, A: 255}
	deadColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	lineColor  = color.RGBA{R: 40, G: 44, B: 52, A: 255}
)

// Game adapts a core simulation to the ebiten.Game interface. Each frame it
// grants at most one generation step, gated by the pacer, and redraws
// synchronously afterwards.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	pacer   *core.FixedStep
	hud     *HUD
	blipper *audio.Blipper

	scale     int
	paused    bool
	tickOnce  bool
	gridlines bool
	seed      int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:       sim,
		painter:   render.NewGridPainter(size.W, size.H),
		pacer:     core.NewFixedStep(time.Duration(cfg.IntervalMS) * time.Millisecond),
		scale:     cfg.Scale,
		gridlines: cfg.Gridlines,
		seed:      cfg.Seed,
	}
	g.hud = NewHUD(sim)
	if cfg.Sound {
		g.blipper = &audio.Blipper{}
		g.blipper.Init()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if clearer, ok := g.sim.(core.Clearer); ok {
			clearer.Clear()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.gridlines = !g.gridlines
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.pacer.SetInterval(core.CycleInterval(g.pacer.Interval(), 1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.pacer.SetInterval(core.CycleInterval(g.pacer.Interval(), -1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.cycleSize(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.cycleSize(1)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick()
	}

	if (!g.paused && g.pacer.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// handleClick translates the cursor position to grid coordinates and hands it
// to the simulation. Presses outside the grid are ignored by the sim.
func (g *Game) handleClick() {
	clicker, ok := g.sim.(core.Clicker)
	if !ok {
		return
	}
	mx, my := ebiten.CursorPosition()
	gx, gy := mx/g.scale, my/g.scale
	size := g.sim.Size()
	if gx < 0 || gx >= size.W || gy < 0 || gy >= size.H {
		return
	}
	clicker.Click(gx, gy)
	if g.blipper != nil {
		g.blipper.Play(880)
	}
}

// cycleSize moves the grid side length through the enumerated set.
func (g *Game) cycleSize(delta int) {
	setter, ok := g.sim.(core.IntParameterSetter)
	if !ok {
		return
	}
	size := g.sim.Size()
	next := life.NextSize(size.W, delta)
	if next == size.W {
		return
	}
	if setter.SetIntParameter("size", next) {
		ns := g.sim.Size()
		g.painter = render.NewGridPainter(ns.W, ns.H)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), aliveColor, deadColor, g.scale)
	if g.gridlines {
		g.painter.DrawGridlines(screen, lineColor, g.scale)
	}
	g.hud.Draw(screen, g.paused, g.pacer.Interval())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
