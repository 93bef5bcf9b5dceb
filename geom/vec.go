// Package geom provides the vector, plane, and basis arithmetic shared by
// every geometric package in this module.
package geom

import "math"

// Vec2 is a 2-dimensional floating point tuple, used for texture
// coordinates and for the 2D projections the triangulator works in.
type Vec2 struct {
	X, Y float64
}

// Add returns v+other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v-other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z-component of the 3D cross product of v and other,
// i.e. the signed area of the parallelogram they span.
func (v Vec2) Cross(other Vec2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Lerp linearly interpolates between v and other at parameter t.
func (v Vec2) Lerp(other Vec2, t float64) Vec2 {
	return v.Add(other.Sub(v).Scale(t))
}

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Vec3 is a 3-dimensional floating point tuple used for vertex positions
// and normals.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v-other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and other.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of v and other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. It returns the zero vector if
// v is shorter than the zero-vector length threshold (1e-12), matching
// spec.md's numeric tolerances.
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n < ZeroLengthEpsilon {
		return Vec3{}
	}
	return v.Scale(1 / n)
}

// Lerp linearly interpolates between v and other at parameter t.
func (v Vec3) Lerp(other Vec3, t float64) Vec3 {
	return v.Add(other.Sub(v).Scale(t))
}

// NormalLerp interpolates two unit normals and re-normalizes the result,
// approximating a spherical interpolation for the small angular deltas that
// occur between two vertices of the same source triangle.
func (v Vec3) NormalLerp(other Vec3, t float64) Vec3 {
	return v.Lerp(other, t).Normalize()
}

// Array returns the coordinates as a plain array, matching the teacher's
// Coord3D.Array() convention used when handing coordinates to external
// formats (model3d/export.go's castVector32).
func (v Vec3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Min returns the component-wise minimum of v and other.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{math.Min(v.X, other.X), math.Min(v.Y, other.Y), math.Min(v.Z, other.Z)}
}

// Max returns the component-wise maximum of v and other.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{math.Max(v.X, other.X), math.Max(v.Y, other.Y), math.Max(v.Z, other.Z)}
}
