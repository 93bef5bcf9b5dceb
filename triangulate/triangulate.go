// Package triangulate implements spec.md §4.3: filling a closed 2D
// boundary loop (plus any interior constraint chains) with a constrained
// Delaunay triangulation, then assigning the result consistent 3D winding.
//
// The algorithm is grounded on the incremental-insertion/edge-flip
// approach of other_examples' gomesh cdt package (Build / InsertPoint /
// InsertConstraintEdge / RemoveCover), but expressed as a flat
// triangle-index slice with edge lookups through a map, matching this
// module's general preference (inherited from the teacher) for flat
// slices and maps over an explicit neighbor-pointer mesh structure.
package triangulate

import (
	"github.com/dgreenheck/three-pinata-sub000/fragment"
	"github.com/dgreenheck/three-pinata-sub000/geom"
)

// Triangulate fills the boundary and interior constraints described by
// verts/constraints with a constrained Delaunay triangulation, and returns
// a flat CutVertices-indexed triangle list wound so that each triangle's
// normal points along normal. Fewer than 3 vertices yields an empty
// result.
func Triangulate(verts []fragment.MeshVertex, constraints []fragment.EdgeConstraint, normal geom.Vec3) []int {
	if len(verts) < 3 {
		return nil
	}

	plane := geom.Plane{Normal: normal}
	u, v := plane.Basis()
	points := make([]geom.Vec2, len(verts))
	for i, vert := range verts {
		points[i] = plane.Project2D(geom.Vec3{}, u, v, vert.Position)
	}

	ts := newTriSoup(points)

	order := insertionOrder(constraints, len(points))
	for _, idx := range order {
		ts.insertPoint(idx)
	}

	for _, c := range constraints {
		if c.V1 == c.V2 {
			continue
		}
		ts.insertConstraintEdge(c.V1, c.V2)
	}

	ts.legalizeAll()
	ts.removeSuperTriangle()

	return ts.orientedTriangles(normal, verts)
}

// insertionOrder lists every real point index, constraint endpoints first
// so the perimeter loop is seeded early and later constraint-edge recovery
// has less to do — mirroring the teacher pack's "insert perimeter, then
// holes, then the rest" ordering (cdt/builder.go).
func insertionOrder(constraints []fragment.EdgeConstraint, n int) []int {
	order := make([]int, 0, n)
	seen := make([]bool, n)
	add := func(i int) {
		if i >= 0 && i < n && !seen[i] {
			seen[i] = true
			order = append(order, i)
		}
	}
	for _, c := range constraints {
		add(c.V1)
		add(c.V2)
	}
	for i := 0; i < n; i++ {
		add(i)
	}
	return order
}
