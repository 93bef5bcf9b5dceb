package geom

// Numeric tolerances. These are compile-time constants per spec.md §6;
// callers cannot override them.
const (
	// SpatialHashEpsilon is the grid size used to decide whether two
	// vertices are the same point (fragment welding, component stitching).
	SpatialHashEpsilon = 1e-9

	// StraddleEpsilon is the tolerance used to classify a vertex as
	// on-plane during slicing.
	StraddleEpsilon = 1e-7

	// ZeroLengthEpsilon is the threshold below which a vector is treated
	// as the zero vector.
	ZeroLengthEpsilon = 1e-12
)
