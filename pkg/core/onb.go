package core

import "math"

// ONB is a right-handed orthonormal basis, built around a single "up"
// vector (U, V, W with W the given axis). Used to turn local hemisphere
// samples (cosine, uniform, lobe) into world-space directions.
type ONB struct {
	U, V, W Vec3
}

// NewONBFromW builds an orthonormal basis whose W axis is n (normalized).
func NewONBFromW(n Vec3) ONB {
	w := n.Normalize()

	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = Vec3{0, 1, 0}
	} else {
		a = Vec3{1, 0, 0}
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return ONB{U: u, V: v, W: w}
}

// Local transforms a vector given in local (tangent-space) coordinates into
// world space.
func (o ONB) Local(v Vec3) Vec3 {
	return o.U.Multiply(v.X).Add(o.V.Multiply(v.Y)).Add(o.W.Multiply(v.Z))
}

// LocalXYZ is a convenience for Local(Vec3{x,y,z}).
func (o ONB) LocalXYZ(x, y, z float64) Vec3 {
	return o.Local(Vec3{x, y, z})
}
