package tracer

import (
	"math"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/kestrelrender/pathtracer/pkg/accel"
	"github.com/kestrelrender/pathtracer/pkg/core"
)

func errBadFrameSize(width, height, got int) error {
	return errors.Errorf("tracer: frame buffer has %d floats, want %d (%dx%d*3)", got, width*height*3, width, height)
}

// Draw renders the world into frame, a row-major W*H*3 linear-HDR float32
// buffer (top row first). Work is split into row ranges, one per
// goroutine; each goroutine owns its own *rand.Rand and accel.Stack so no
// mutable state crosses goroutines during rendering. The progress sink,
// when set, is notified once per finished pixel.
func (w *World) Draw(frame []float32) error {
	if len(frame) != w.Width*w.Height*3 {
		return errBadFrameSize(w.Width, w.Height, len(frame))
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > w.Height {
		numWorkers = w.Height
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	rowsPerWorker := (w.Height + numWorkers - 1) / numWorkers

	start := time.Now()
	var done atomic.Int64
	total := int64(w.Width * w.Height)
	var g errgroup.Group
	for wk := 0; wk < numWorkers; wk++ {
		y0 := wk * rowsPerWorker
		y1 := y0 + rowsPerWorker
		if y1 > w.Height {
			y1 = w.Height
		}
		if y0 >= y1 {
			continue
		}
		workerSeed := int64(wk)*2654435761 + 1
		g.Go(func() error {
			rng := rand.New(rand.NewSource(workerSeed))
			sampler := core.NewSampler(rng)
			stack := accel.NewStack()
			for y := y0; y < y1; y++ {
				for x := 0; x < w.Width; x++ {
					color := w.samplePixel(x, y, sampler, stack)
					idx := pixelOffset(w.Width, x, y)
					frame[idx+0] = float32(color.X)
					frame[idx+1] = float32(color.Y)
					frame[idx+2] = float32(color.Z)
					if w.Progress != nil {
						w.Progress(int(done.Add(1)), int(total))
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	w.Logger.Infof("render complete: %dx%d, %d spp, %d workers, %s",
		w.Width, w.Height, w.SamplesPerPixel, numWorkers, time.Since(start))
	return nil
}

func pixelOffset(width, x, y int) int { return (y*width + x) * 3 }

// samplePixel draws SamplesPerPixel stratified sub-pixel samples (section
// 4.7: x_strata = floor(sqrt(aa)), y_strata = floor(aa/x_strata)) and
// returns their mean radiance.
func (w *World) samplePixel(x, y int, sampler *core.Sampler, stack *accel.Stack) core.Vec3 {
	xStrata := int(math.Sqrt(float64(w.SamplesPerPixel)))
	if xStrata < 1 {
		xStrata = 1
	}
	yStrata := w.SamplesPerPixel / xStrata
	if yStrata < 1 {
		yStrata = 1
	}
	total := xStrata * yStrata

	sum := core.Vec3{}
	for j := 0; j < yStrata; j++ {
		for i := 0; i < xStrata; i++ {
			xi := sampler.Get2D()
			u := (float64(x) + (float64(i)+xi.X)/float64(xStrata)) / float64(w.Width-1)
			v := 1 - (float64(y)+(float64(j)+xi.Y)/float64(yStrata))/float64(w.Height-1)
			ray := w.config.Camera.GetRay(u, v, sampler)
			sum = sum.Add(w.rayColor(ray, w.MaxDepth, stack, sampler))
		}
	}
	return sum.Divide(float64(total))
}
