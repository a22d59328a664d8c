// Package core provides the numeric and sampling primitives shared by every
// other package: vectors, rays, bounding boxes, orthonormal bases and the
// per-thread RNG wrapper.
package core

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component vector used for points, directions and colors alike.
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 is used for texture coordinates and 2D sample pairs.
type Vec2 struct {
	X, Y float64
}

func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }
func NewVec2(x, y float64) Vec2    { return Vec2{X: x, Y: y} }

func (v Vec3) String() string {
	return fmt.Sprintf("{%.4g, %.4g, %.4g}", v.X, v.Y, v.Z)
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Subtract(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Multiply(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}
func (v Vec3) MultiplyVec(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3) Negate() Vec3            { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) Divide(s float64) Vec3   { return v.Multiply(1.0 / s) }

func (v Vec3) Dot(o Vec3) float64    { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) AbsDot(o Vec3) float64 { return math.Abs(v.Dot(o)) }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSquared() float64 { return v.Dot(v) }
func (v Vec3) Length() float64        { return math.Sqrt(v.LengthSquared()) }

func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Multiply(1.0 / l)
}

func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// IsFinite reports whether all three components are finite (no NaN/Inf).
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsNaN(v.Z) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsInf(v.Z, 0)
}

// HasNaN reports whether any component is NaN. Used by the integrator as the
// sentinel for "drop this sample" (x != x).
func (v Vec3) HasNaN() bool {
	return v.X != v.X || v.Y != v.Y || v.Z != v.Z
}

func (v Vec3) Clamp(lo, hi float64) Vec3 {
	return Vec3{
		X: math.Max(lo, math.Min(hi, v.X)),
		Y: math.Max(lo, math.Min(hi, v.Y)),
		Z: math.Max(lo, math.Min(hi, v.Z)),
	}
}

// GammaCorrect raises each component to 1/gamma (linear to display
// encoding). texture.Image applies the inverse, raising to gamma, when it
// reads pixels.
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	inv := 1.0 / gamma
	return Vec3{math.Pow(v.X, inv), math.Pow(v.Y, inv), math.Pow(v.Z, inv)}
}

// Luminance returns perceptual (Rec. 709) luminance, used by Russian
// roulette and by the environment-map importance sampler.
func (v Vec3) Luminance() float64 {
	return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z
}

// RotateY rotates the vector by theta radians about the Y axis.
func (v Vec3) RotateY(theta float64) Vec3 {
	cos, sin := math.Cos(theta), math.Sin(theta)
	return Vec3{
		X: cos*v.X + sin*v.Z,
		Y: v.Y,
		Z: -sin*v.X + cos*v.Z,
	}
}

// Reflect reflects v about normal n (n need not be unit length, but usually
// is). v is expected to point toward the surface.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends v (pointing toward the surface, unit length) through a
// surface with normal n (unit length, pointing against v) given the ratio
// of refractive indices etaOverEtaPrime. Assumes no total internal
// reflection; callers check that separately via Schlick reflectance.
func (v Vec3) Refract(n Vec3, etaOverEtaPrime float64) Vec3 {
	cosTheta := math.Min(v.Negate().Dot(n), 1.0)
	rOutPerp := v.Add(n.Multiply(cosTheta)).Multiply(etaOverEtaPrime)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

func (v Vec2) Add(o Vec2) Vec2         { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Multiply(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
