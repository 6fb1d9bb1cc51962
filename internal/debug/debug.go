package debug

import (
	"fmt"
	"runtime"

	"aviator/internal/config"
	"aviator/internal/input"
	"aviator/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

var textColor = rl.NewColor(0x23, 0x19, 0x0f, 255)

// Overlay draws optional debug text in the top-right corner: FPS, heap size and
// the pointer with the airplane position it maps to. All lines are off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowPointer  bool

	world   *world.World
	pointer *input.Tracker

	frameCount uint32
	lines      []string
	memStats   runtime.MemStats
}

// New returns an overlay configured from cfg. w and pointer may be nil, which
// hides the pointer line.
func New(cfg config.Debug, w *world.World, pointer *input.Tracker) *Overlay {
	return &Overlay{
		ShowFPS:      cfg.ShowFPS,
		ShowMemAlloc: cfg.ShowMemAlloc,
		ShowPointer:  cfg.ShowPointer && w != nil && pointer != nil,
		world:        w,
		pointer:      pointer,
	}
}

// Enabled reports whether any line is shown.
func (o *Overlay) Enabled() bool {
	return o.ShowFPS || o.ShowMemAlloc || o.ShowPointer
}

func (o *Overlay) refresh() {
	o.lines = o.lines[:0]
	if o.ShowFPS {
		o.lines = append(o.lines, fmt.Sprintf("FPS: %d", rl.GetFPS()))
	}
	if o.ShowMemAlloc {
		runtime.ReadMemStats(&o.memStats)
		o.lines = append(o.lines, fmt.Sprintf("Mem: %.2f MiB", float64(o.memStats.Alloc)/(1024*1024)))
	}
	if o.ShowPointer {
		p := o.pointer.Pointer()
		pos := o.world.Airplane.Position
		o.lines = append(o.lines, fmt.Sprintf("Pointer: %+.2f %+.2f", p.X, p.Y))
		o.lines = append(o.lines, fmt.Sprintf("Plane: %.1f %.1f", pos[0], pos[1]))
	}
}

// Draw renders the enabled lines. Register it with the renderer as an overlay.
func (o *Overlay) Draw() {
	if !o.Enabled() {
		return
	}
	o.frameCount++
	if o.frameCount%updateInterval == 1 || len(o.lines) == 0 {
		o.refresh()
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range o.lines {
		x := screenW - rl.MeasureText(text, fontSize) - padding
		rl.DrawText(text, x, y, fontSize, textColor)
		y += lineHeight
	}
}
