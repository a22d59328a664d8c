// Package tracer assembles the scene (objects, lights, background, camera)
// into a World, builds the BVH once, and drives the parallel Monte-Carlo
// pixel loop: stratified sub-pixel sampling, an
// iterative bounce loop mixing BRDF and light-set PDFs, and Russian
// roulette termination.
package tracer

import (
	"math"

	"github.com/pkg/errors"

	"github.com/kestrelrender/pathtracer/pkg/core"
)

// Camera is a thin-lens perspective ray generator: look-from/look-at/up
// plus vertical FOV and aspect ratio derive the orthonormal basis and
// viewport extents at the focus plane; aperture/2 gives the lens radius
// used for depth-of-field jitter. Exposure is stored but not consumed by
// the core; tone-mapping is an external-collaborator concern.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	Exposure        float64
}

// NewCamera builds a thin-lens camera. vfov is in degrees; aperture is the
// full lens diameter (lens radius = aperture/2); focusDistance is the
// distance from lookFrom to the plane that is in perfect focus.
func NewCamera(lookFrom, lookAt, up core.Vec3, vfov, aspectRatio, aperture, focusDistance, exposure float64) (*Camera, error) {
	w := lookFrom.Subtract(lookAt)
	if w.LengthSquared() == 0 {
		return nil, errors.Errorf("tracer: camera lookFrom and lookAt coincide at %v", lookFrom)
	}
	w = w.Normalize()
	u := up.Cross(w)
	if u.LengthSquared() == 0 {
		return nil, errors.Errorf("tracer: camera up vector %v is parallel to the view direction", up)
	}
	u = u.Normalize()
	v := w.Cross(u)

	theta := vfov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	viewportHeight := 2 * halfHeight
	viewportWidth := aspectRatio * viewportHeight

	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := lookFrom.
		Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          lookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u, v: v, w: w,
		lensRadius: aperture / 2,
		Exposure:   exposure,
	}, nil
}

// GetRay samples a primary ray through normalized viewport coordinates
// (s,t) in [0,1], jittering the eye point over the lens disk to produce
// depth-of-field blur proportional to distance from the focus plane.
func (c *Camera) GetRay(s, t float64, sampler *core.Sampler) core.Ray {
	rd := sampler.RandomInUnitDisk().Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	target := c.lowerLeftCorner.Add(c.horizontal.Multiply(s)).Add(c.vertical.Multiply(t))
	return core.NewRay(origin, target.Subtract(origin))
}
