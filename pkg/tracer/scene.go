package tracer

import (
	"github.com/pkg/errors"

	"github.com/kestrelrender/pathtracer/pkg/accel"
	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/pdf"
)

// SceneConfig is the declarative input a scene-builder collaborator hands
// to the core: the flat object array the BVH is built over, the camera,
// the disjoint set of emitters to importance-sample as lights, and the
// background radiance for rays that escape the scene.
type SceneConfig struct {
	Objects    []accel.Hittable
	Camera     *Camera
	Lights     []pdf.Emitter
	Background Background
}

// World owns the immutable render-time state: the scene's BVH (built once)
// and the resolved light set (scene lights plus, if present, the HDRI
// background as an additional importance-sampled emitter).
type World struct {
	config SceneConfig
	bvh    *accel.BVH
	lights []pdf.Emitter

	Width, Height   int
	SamplesPerPixel int
	MaxDepth        int
	Logger          core.Logger

	// Progress, when non-nil, is called once per finished pixel with the
	// running count and the total. It is invoked concurrently from render
	// workers and must be safe for that.
	Progress func(completed, total int)
}

// NewWorld builds the BVH and resolves the light set. width/height and
// samplesPerPixel must be positive; an empty Objects slice is rejected
// since a BVH over zero objects has no meaningful traversal.
func NewWorld(cfg SceneConfig, width, height, samplesPerPixel, maxDepth int) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("tracer: image dimensions must be positive, got %dx%d", width, height)
	}
	if samplesPerPixel <= 0 {
		return nil, errors.Errorf("tracer: samplesPerPixel must be positive, got %d", samplesPerPixel)
	}
	if len(cfg.Objects) == 0 {
		return nil, errors.New("tracer: scene has no objects to build a BVH over")
	}
	if cfg.Camera == nil {
		return nil, errors.New("tracer: scene has no camera")
	}

	bvh := accel.NewBVH(cfg.Objects)

	lights := append([]pdf.Emitter(nil), cfg.Lights...)
	if cfg.Background.HDRI != nil {
		lights = append(lights, cfg.Background.HDRI)
	}

	return &World{
		config:          cfg,
		bvh:             bvh,
		lights:          lights,
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
		Logger:          core.NopLogger{},
	}, nil
}

// SetLogger swaps the render-progress logger (NopLogger by default).
func (w *World) SetLogger(l core.Logger) { w.Logger = l }
