package geom

import "math"

// Bounds is an axis-aligned bounding box, grounded on the teacher's Bounder
// convention (model2d/bounder.go: a Min/Max pair plus a union helper) but
// expressed as a concrete struct rather than an interface since Fragment
// only ever needs one bounds implementation.
type Bounds struct {
	Min, Max Vec3
}

// EmptyBounds returns a Bounds that contains no points: Min is +inf and Max
// is -inf in every component, so the first Add call replaces both.
func EmptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// Add grows b to include p, returning the updated bounds.
func (b Bounds) Add(p Vec3) Bounds {
	return Bounds{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Union returns the bounds containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Contains reports whether p lies within b (inclusive).
func (b Bounds) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Diagonal returns the length of the box's diagonal.
func (b Bounds) Diagonal() float64 {
	return b.Max.Sub(b.Min).Norm()
}

// Valid reports whether the bounds describe a non-empty, finite box,
// mirroring the teacher's BoundsValid check (model2d/bounder.go).
func (b Bounds) Valid() bool {
	if math.IsNaN(b.Min.X+b.Min.Y+b.Min.Z) || math.IsNaN(b.Max.X+b.Max.Y+b.Max.Z) {
		return false
	}
	return b.Max.X >= b.Min.X && b.Max.Y >= b.Min.Y && b.Max.Z >= b.Min.Z
}

// Volume returns the box's volume (zero for an empty or degenerate box).
func (b Bounds) Volume() float64 {
	if !b.Valid() {
		return 0
	}
	d := b.Max.Sub(b.Min)
	return d.X * d.Y * d.Z
}

// Clamp restricts p to lie within b, component-wise.
func (b Bounds) Clamp(p Vec3) Vec3 {
	return Vec3{
		X: math.Min(math.Max(p.X, b.Min.X), b.Max.X),
		Y: math.Min(math.Max(p.Y, b.Min.Y), b.Max.Y),
		Z: math.Min(math.Max(p.Z, b.Min.Z), b.Max.Z),
	}
}
