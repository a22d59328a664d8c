package core

import "math"

// AABB is an axis-aligned bounding box with Min <= Max componentwise.
type AABB struct {
	Min, Max Vec3
}

func NewAABB(min, max Vec3) AABB { return AABB{Min: min, Max: max} }

// infiniteAABB never intersects any ray; it fills unused BVH child lanes.
var infiniteAABB = AABB{
	Min: Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
	Max: Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
}

func InfiniteAABB() AABB { return infiniteAABB }

// NewAABBFromPoints returns the tightest AABB containing every point.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = Vec3{math.Min(min.X, p.X), math.Min(min.Y, p.Y), math.Min(min.Z, p.Z)}
		max = Vec3{math.Max(max.X, p.X), math.Max(max.Y, p.Y), math.Max(max.Z, p.Z)}
	}
	return AABB{Min: min, Max: max}
}

// SurroundingBox returns an AABB containing both a and b.
func SurroundingBox(a, b AABB) AABB { return a.Union(b) }

func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y), math.Min(b.Min.Z, o.Min.Z)},
		Max: Vec3{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y), math.Max(b.Max.Z, o.Max.Z)},
	}
}

func (b AABB) Center() Vec3 { return b.Min.Add(b.Max).Multiply(0.5) }
func (b AABB) Size() Vec3   { return b.Max.Subtract(b.Min) }

// LongestAxis returns 0(X)/1(Y)/2(Z). A tie involving Z (including the
// fully degenerate zero-extent case) resolves to Z; an X/Y tie resolves
// to Y.
func (b AABB) LongestAxis() int {
	s := b.Size()
	if s.X > s.Y && s.X > s.Z {
		return 0
	}
	if s.Y > s.Z {
		return 1
	}
	return 2
}

func (b AABB) Axis(axis int) (min, max float64) {
	switch axis {
	case 0:
		return b.Min.X, b.Max.X
	case 1:
		return b.Min.Y, b.Max.Y
	default:
		return b.Min.Z, b.Max.Z
	}
}

// Hit runs the classic slab test over all three axes.
func (b AABB) Hit(ray Ray, tMin, tMax float64) bool {
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dir := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	for axis := 0; axis < 3; axis++ {
		lo, hi := b.Axis(axis)
		d := dir[axis]
		if math.Abs(d) < 1e-12 {
			if origin[axis] < lo || origin[axis] > hi {
				return false
			}
			continue
		}
		invD := 1.0 / d
		t0 := (lo - origin[axis]) * invD
		t1 := (hi - origin[axis]) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}
