// Package frame drives the scene one display refresh at a time: it spins the sea,
// sky and propeller, snaps the airplane to the pointer, and asks the renderer to
// draw. The loop belongs to the host; Run blocks on a Scheduler and Stop ends it.
package frame

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"aviator/internal/input"
	"aviator/internal/remap"
	"aviator/internal/world"

	"github.com/chewxy/math32"
)

const twoPi = 2 * math32.Pi

// Motion holds the per-tick increments (radians) and the pointer-to-plane mappings.
type Motion struct {
	SeaSpeed       float32       `yaml:"sea_speed"`
	SkySpeed       float32       `yaml:"sky_speed"`
	PropellerSpeed float32       `yaml:"propeller_speed"`
	PlaneX         remap.Mapping `yaml:"plane_x"`
	PlaneY         remap.Mapping `yaml:"plane_y"`
}

// DefaultMotion: sea 0.005, sky 0.01, propeller 0.3 rad per tick; the plane
// follows the pointer over x in [-100, 100] and y in [125, 275].
func DefaultMotion() Motion {
	return Motion{
		SeaSpeed:       0.005,
		SkySpeed:       0.01,
		PropellerSpeed: 0.3,
		PlaneX:         remap.Mapping{From: remap.Range{Min: -1, Max: 1}, To: remap.Range{Min: -100, Max: 100}},
		PlaneY:         remap.Mapping{From: remap.Range{Min: -1, Max: 1}, To: remap.Range{Min: 125, Max: 275}},
	}
}

// Validate checks both plane mappings.
func (m Motion) Validate() error {
	if err := m.PlaneX.Validate(); err != nil {
		return fmt.Errorf("plane_x: %w", err)
	}
	if err := m.PlaneY.Validate(); err != nil {
		return fmt.Errorf("plane_y: %w", err)
	}
	return nil
}

// Renderer draws the current state of the world.
type Renderer interface {
	Render(w *world.World)
}

// PointerSource yields the latest normalized pointer. *input.Tracker implements it.
type PointerSource interface {
	Pointer() input.Pointer
}

// Scheduler blocks until the host's next display refresh. It returns false when
// the host is shutting down or ctx is done.
type Scheduler interface {
	WaitFrame(ctx context.Context) bool
}

// Driver advances the world once per tick.
type Driver struct {
	world    *world.World
	pointer  PointerSource
	renderer Renderer
	motion   Motion
	ticks    uint64

	mu     sync.Mutex
	cancel context.CancelFunc
}

var errMissing = errors.New("frame: missing collaborator")

// New returns a driver. The motion mappings are validated here so Tick never fails.
func New(w *world.World, pointer PointerSource, r Renderer, m Motion) (*Driver, error) {
	switch {
	case w == nil || w.Sea == nil || w.Sky == nil || w.Airplane == nil || w.Propeller == nil:
		return nil, fmt.Errorf("%w: world", errMissing)
	case pointer == nil:
		return nil, fmt.Errorf("%w: pointer source", errMissing)
	case r == nil:
		return nil, fmt.Errorf("%w: renderer", errMissing)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &Driver{world: w, pointer: pointer, renderer: r, motion: m}, nil
}

// wrap keeps an angle in (-2π, 2π) so float32 precision does not decay over long runs.
func wrap(a float32) float32 {
	return math32.Mod(a, twoPi)
}

// Tick runs one frame: sea, sky, airplane position, propeller, then render.
// The airplane snaps to the pointer target with no smoothing.
func (d *Driver) Tick() {
	w := d.world
	w.Sea.Rotation[2] = wrap(w.Sea.Rotation[2] + d.motion.SeaSpeed)
	w.Sky.Rotation[2] = wrap(w.Sky.Rotation[2] + d.motion.SkySpeed)

	p := d.pointer.Pointer()
	w.Airplane.Position[0] = d.motion.PlaneX.Apply(p.X)
	w.Airplane.Position[1] = d.motion.PlaneY.Apply(p.Y)

	w.Propeller.Rotation[0] = wrap(w.Propeller.Rotation[0] + d.motion.PropellerSpeed)

	d.renderer.Render(w)
	d.ticks++
}

// Ticks returns the number of completed ticks.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Run ticks once per scheduler frame until the scheduler reports the host closed,
// Stop is called, or ctx is done. It returns ctx.Err() in the last case and nil
// otherwise. Run must be called from the goroutine that owns the host's display.
func (d *Driver) Run(ctx context.Context, sched Scheduler) error {
	if sched == nil {
		return fmt.Errorf("%w: scheduler", errMissing)
	}
	runCtx, cancel := context.WithCancel(ctx)
	d.mu.Lock()
	d.cancel = cancel
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.cancel = nil
		d.mu.Unlock()
		cancel()
	}()

	for runCtx.Err() == nil {
		if !sched.WaitFrame(runCtx) {
			break
		}
		if runCtx.Err() != nil {
			break
		}
		d.Tick()
	}
	return ctx.Err()
}

// Stop ends a running Run after its current frame. It is safe from any goroutine
// and a no-op when no loop is running.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
	}
}
