// Package world composes the aviator scene from the builders and keeps the
// handles the frame driver animates.
package world

import (
	"errors"
	"fmt"
	"image/color"

	"aviator/internal/builder"
	"aviator/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	seaY          = -600
	skyY          = -600
	airplaneY     = 200
	airplaneScale = 0.25
)

// Options control composition. Zero fields are not defaulted; start from DefaultOptions.
type Options struct {
	Clouds     int
	Camera     scene.Camera
	Hemisphere scene.HemisphereLight
	Sun        scene.DirectionalLight
	Fog        scene.Fog
	Background color.RGBA
}

// DefaultOptions returns the stock scene: 20 clouds, a 60° camera at (0, 200, 150)
// looking down -Z, hemisphere plus shadow-casting sun lights and warm fog.
func DefaultOptions() Options {
	return Options{
		Clouds: builder.DefaultClouds,
		Camera: scene.Camera{
			Fov:      60,
			Near:     1,
			Far:      10000,
			Aspect:   16.0 / 9.0,
			Position: mgl32.Vec3{0, 200, 150},
			Target:   mgl32.Vec3{0, 200, 0},
		},
		Hemisphere: scene.HemisphereLight{
			Sky:       color.RGBA{0xaa, 0xaa, 0xaa, 0xff},
			Ground:    color.RGBA{0x00, 0x00, 0x00, 0xff},
			Intensity: 0.9,
		},
		Sun: scene.DirectionalLight{
			Color:      color.RGBA{0xff, 0xff, 0xff, 0xff},
			Intensity:  0.9,
			Position:   mgl32.Vec3{150, 350, 350},
			CastShadow: true,
		},
		Fog:        scene.Fog{Color: color.RGBA{0xf7, 0xd9, 0xaa, 0xff}, Near: 100, Far: 950},
		Background: color.RGBA{0xf7, 0xd9, 0xaa, 0xff},
	}
}

// World is the composed scene and the nodes the frame driver mutates.
// Nothing else changes after Compose.
type World struct {
	Scene     *scene.Scene
	Sea       *scene.Node
	Sky       *scene.Node
	Airplane  *scene.Node
	Propeller *scene.Node
}

// ErrOptions is returned for options Compose cannot honour.
var ErrOptions = errors.New("world: invalid options")

// Compose builds the scene graph: sea and sky sunk 600 units below the origin
// and the airplane at a quarter scale, 200 units up.
func Compose(opts Options, rnd builder.Rand) (*World, error) {
	if opts.Clouds < 0 {
		return nil, fmt.Errorf("%w: negative cloud count %d", ErrOptions, opts.Clouds)
	}
	if rnd == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrOptions)
	}
	if !(opts.Camera.Near > 0 && opts.Camera.Near < opts.Camera.Far) {
		return nil, fmt.Errorf("%w: camera clip range [%g, %g]", ErrOptions, opts.Camera.Near, opts.Camera.Far)
	}

	scn := scene.New()
	scn.Camera = opts.Camera
	scn.Hemisphere = opts.Hemisphere
	scn.Sun = opts.Sun
	scn.Fog = opts.Fog
	scn.Background = opts.Background

	w := &World{Scene: scn}

	w.Sea = builder.Sea()
	w.Sea.Position[1] = seaY

	w.Sky = builder.Sky(rnd, opts.Clouds)
	w.Sky.Position[1] = skyY

	w.Airplane, w.Propeller = builder.Airplane()
	w.Airplane.SetScalar(airplaneScale)
	w.Airplane.Position[1] = airplaneY

	scn.Add(w.Sea, w.Sky, w.Airplane)
	return w, nil
}
