package geom

import "math"

// Hash is a deterministic, order-independent spatial-hash key for a Vec3,
// rounded to the grid defined by SpatialHashEpsilon. Two vertices are
// value-identical iff their hashes match (spec.md §3).
//
// Adapted from the teacher's Mesh.Repair equivalence-class hashing
// (mesh_ops.go), which rounds each coordinate to a grid and keys a map by
// the rounded triple; here the rounding is folded into a single comparable
// struct instead of the 2x2x2 cell replication Repair used to catch points
// that round to adjacent cells, since a single fixed tolerance is enough
// for weld/stitch purposes at the scale this module targets.
type Hash struct {
	X, Y, Z int64
}

// HashVec3 computes the spatial-hash key of v.
func HashVec3(v Vec3) Hash {
	return Hash{
		X: hashComponent(v.X),
		Y: hashComponent(v.Y),
		Z: hashComponent(v.Z),
	}
}

func hashComponent(x float64) int64 {
	return int64(math.Round(x / SpatialHashEpsilon))
}
