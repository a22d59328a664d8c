package core

// Ray is a parametric ray: point(t) = Origin + t*Direction. Direction is not
// required to be unit length; callers that need a unit direction normalize
// explicitly (see ONB, dielectric refraction, Beer-Lambert path length).
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

func NewRay(origin, direction Vec3) Ray { return Ray{Origin: origin, Direction: direction} }

// NewRayTo builds a ray from origin toward target with a unit direction.
func NewRayTo(origin, target Vec3) Ray {
	return NewRay(origin, target.Subtract(origin).Normalize())
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
