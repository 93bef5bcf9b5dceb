package geom

import "math"

// Plane is an oriented cutting plane: the set of points x such that
// (x-Origin)·Normal == 0. Normal need not be unit length on input, but
// Basis and Side both normalize it internally.
type Plane struct {
	Normal Vec3
	Origin Vec3
}

// Degenerate reports whether the plane's normal is too short to define an
// orientation (spec.md §4.2 "zero-length normal yields empty outputs").
func (p Plane) Degenerate() bool {
	return p.Normal.Norm() < ZeroLengthEpsilon
}

// SignedDistance returns (x-Origin)·n̂ for the unit normal n̂.
func (p Plane) SignedDistance(x Vec3) float64 {
	return x.Sub(p.Origin).Dot(p.Normal.Normalize())
}

// Side classifies x against the plane using the straddle epsilon. It
// returns +1 for points on the positive side or within epsilon of the
// plane (on-plane vertices fold to the positive/top side, per spec.md §4.2
// and §9 — this is the single place that tie-break is applied, so every
// caller inherits it automatically), and -1 otherwise.
func (p Plane) Side(x Vec3) int {
	if p.SignedDistance(x) >= -StraddleEpsilon {
		return 1
	}
	return -1
}

// Intersect finds the point where the segment (a,b) crosses the plane,
// returning the interpolation parameter s in [0,1] such that the point is
// a.Lerp(b, s). It is the caller's responsibility to only call Intersect on
// segments that actually straddle the plane; s is clamped to [0,1] to
// absorb the degenerate endpoint case described in spec.md §4.2.
func (p Plane) Intersect(a, b Vec3) float64 {
	n := p.Normal.Normalize()
	denom := b.Sub(a).Dot(n)
	if denom == 0 {
		return 0
	}
	s := a.Sub(p.Origin).Dot(n) / -denom
	if s < 0 {
		s = 0
	} else if s > 1 {
		s = 1
	}
	return s
}

// Basis returns an orthonormal (u, v) pair spanning the plane, with
// Normal.Normalize() as the implicit third axis. The construction (u is
// the world x axis with its component along the normal removed, or the
// world y axis when |n.X| > 0.9; v = n × u) is a
// common but arbitrary choice; spec.md §9 explicitly says callers must not
// depend on a specific rotation, only on scale and offset.
func (p Plane) Basis() (u, v Vec3) {
	n := p.Normal.Normalize()
	ref := Vec3{1, 0, 0}
	if math.Abs(n.X) > 0.9 {
		ref = Vec3{0, 1, 0}
	}
	u = ref.Sub(n.Scale(ref.Dot(n))).Normalize()
	v = n.Cross(u)
	return u, v
}

// Project2D projects x onto the plane's (u,v) basis relative to origin,
// yielding the 2D coordinates the triangulator and cut-face UV generator
// both work in.
func (p Plane) Project2D(origin Vec3, u, v Vec3, x Vec3) Vec2 {
	d := x.Sub(origin)
	return Vec2{d.Dot(u), d.Dot(v)}
}
