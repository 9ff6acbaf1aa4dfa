//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const hudLineHeight = 14

var hudColor = color.RGBA{R: 220, G: 220, B: 220, A: 255}

// HUD paints a small status readout in the corner of the view.
type HUD struct {
	sim     core.Sim
	visible bool
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, visible: true}
}

// Toggle flips HUD visibility.
func (h *HUD) Toggle() {
	if h != nil {
		h.visible = !h.visible
	}
}

// Draw paints the status lines. A nil or hidden HUD draws nothing.
func (h *HUD) Draw(screen *ebiten.Image, paused bool, interval time.Duration) {
	if h == nil || !h.visible {
		return
	}
	face := basicfont.Face7x13
	y := hudLineHeight

	state := "running"
	if paused {
		state = "paused"
	}
	text.Draw(screen, fmt.Sprintf("%s  %s @ %dms", h.sim.Name(), state, interval.Milliseconds()), face, 4, y, hudColor)
	y += hudLineHeight

	if provider, ok := h.sim.(core.ParameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			for _, param := range group.Params {
				text.Draw(screen, fmt.Sprintf("%s: %s", param.Label, param.Value), face, 4, y, hudColor)
				y += hudLineHeight
			}
		}
	}

	y += hudLineHeight / 2
	text.Draw(screen, "space pause  n step  c clear  r/s reset  -/= speed  [/] size  g grid  h hud  q quit", face, 4, y, hudColor)
}
