package graphics

import (
	"context"
	"errors"

	"aviator/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrNoDevice is returned when raylib could not create the window or GL context.
var ErrNoDevice = errors.New("graphics: window or rendering context unavailable")

// Events are the host input callbacks, run on the window's goroutine before the
// frame they affect. Either may be nil.
type Events struct {
	PointerMove func(x, y float32)
	Resize      func(width, height int)
}

// Window is the raylib window. It is also the frame scheduler: the renderer's
// EndDrawing presents and paces each frame to the target FPS, and WaitFrame
// delivers the input gathered since then.
type Window struct {
	events  Events
	pointer rl.Vector2
	width   int
	height  int
}

// Open creates the window. It must run on the main goroutine (raylib requires
// the thread that owns the GL context).
func Open(cfg config.Window, events Events) (*Window, error) {
	var flags uint32 = rl.FlagMsaa4xHint | rl.FlagVsyncHint
	if cfg.Resizable {
		flags |= rl.FlagWindowResizable
	}
	if cfg.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, ErrNoDevice
	}
	rl.SetTargetFPS(int32(cfg.TargetFPS))

	w := &Window{events: events, width: -1, height: -1}
	w.pointer = rl.GetMousePosition()
	w.poll()
	return w, nil
}

// Size returns the current drawable size in pixels.
func (w *Window) Size() (width, height int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// poll forwards resize and pointer-move events that happened since the last call.
func (w *Window) poll() {
	if width, height := w.Size(); width != w.width || height != w.height {
		w.width, w.height = width, height
		if w.events.Resize != nil {
			w.events.Resize(width, height)
		}
	}
	if p := rl.GetMousePosition(); p != w.pointer {
		w.pointer = p
		if w.events.PointerMove != nil {
			w.events.PointerMove(p.X, p.Y)
		}
	}
}

// WaitFrame reports whether another frame should be drawn. It returns false once
// the user closes the window or ctx is done.
func (w *Window) WaitFrame(ctx context.Context) bool {
	if ctx.Err() != nil || rl.WindowShouldClose() {
		return false
	}
	w.poll()
	return true
}

// Close destroys the window and its GL context.
func (w *Window) Close() {
	rl.CloseWindow()
}
