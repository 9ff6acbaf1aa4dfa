package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	_ "lifegrid/internal/sims/ambient"
	"lifegrid/internal/sims/life"
	"lifegrid/internal/tui"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 33 * time.Millisecond

func main() {
	cfg := app.NewConfig()
	cfg.Sim = "life"
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	surface, err := tui.New()
	if err != nil {
		log.Fatalf("terminal init: %v", err)
	}
	defer surface.Fini()

	run(sim, surface, cfg)
}

type loopState struct {
	sim      core.Sim
	surface  *tui.Surface
	pacer    *core.FixedStep
	seed     int64
	paused   bool
	tickOnce bool
	quit     bool

	prevButtons tcell.ButtonMask
}

func run(sim core.Sim, surface *tui.Surface, cfg *app.Config) {
	state := &loopState{
		sim:     sim,
		surface: surface,
		pacer:   core.NewFixedStep(time.Duration(cfg.IntervalMS) * time.Millisecond),
		seed:    cfg.Seed,
	}

	// Dedicated input goroutine, frame loop stays single-threaded.
	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := surface.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for !state.quit {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return
			}
			state.handleEvent(ev)
		case <-ticker.C:
			if (!state.paused && state.pacer.ShouldStep()) || state.tickOnce {
				state.sim.Step()
				state.tickOnce = false
			}
			state.draw()
		}
	}
}

func (s *loopState) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(ev)
	case *tcell.EventMouse:
		s.handleMouse(ev)
	case *tcell.EventResize:
		s.surface.Sync()
	}
}

func (s *loopState) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		s.quit = true
		return
	}
	if ev.Key() == tcell.KeyEnter {
		s.paused = false
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}
	switch ev.Rune() {
	case 'q':
		s.quit = true
	case ' ':
		s.paused = !s.paused
	case 'n':
		s.tickOnce = true
	case 'c':
		if clearer, ok := s.sim.(core.Clearer); ok {
			clearer.Clear()
		}
	case 'r':
		s.sim.Reset(s.seed)
	case 's':
		s.seed = time.Now().UnixNano()
		s.sim.Reset(s.seed)
	case '-':
		s.pacer.SetInterval(core.CycleInterval(s.pacer.Interval(), 1))
	case '=', '+':
		s.pacer.SetInterval(core.CycleInterval(s.pacer.Interval(), -1))
	case '[':
		s.cycleSize(-1)
	case ']':
		s.cycleSize(1)
	}
}

func (s *loopState) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && s.prevButtons&tcell.Button1 == 0
	s.prevButtons = buttons
	if !pressed {
		return
	}
	clicker, ok := s.sim.(core.Clicker)
	if !ok {
		return
	}
	px, py := ev.Position()
	clicker.Click(s.surface.CellAt(px, py))
}

func (s *loopState) cycleSize(delta int) {
	setter, ok := s.sim.(core.IntParameterSetter)
	if !ok {
		return
	}
	cur := s.sim.Size().W
	next := life.NextSize(cur, delta)
	if next != cur {
		setter.SetIntParameter("size", next)
	}
}

func (s *loopState) draw() {
	size := s.sim.Size()
	state := "running"
	if s.paused {
		state = "paused"
	}
	status := fmt.Sprintf(" %s  %s @ %dms  %dx%d | space pause  n step  c clear  r reset  -/= speed  [/] size  q quit",
		s.sim.Name(), state, s.pacer.Interval().Milliseconds(), size.W, size.H)
	s.surface.Draw(s.sim.Cells(), size.W, size.H, status)
}
