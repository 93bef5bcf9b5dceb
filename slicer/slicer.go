// Package slicer implements spec.md §4.2: partitioning an indexed triangle
// soup across a plane, producing two fragments with a new boundary loop
// along the cut, then closing that boundary with the constrained Delaunay
// triangulator.
package slicer

import (
	"github.com/dgreenheck/three-pinata-sub000/fragment"
	"github.com/dgreenheck/three-pinata-sub000/geom"
	"github.com/dgreenheck/three-pinata-sub000/triangulate"
)

// Options configures cut-face texture generation.
type Options struct {
	UVScale  geom.Vec2
	UVOffset geom.Vec2
}

// DefaultOptions returns an Options with unit scale and zero offset.
func DefaultOptions() Options {
	return Options{UVScale: geom.Vec2{X: 1, Y: 1}}
}

// Slice splits f across plane, returning the fragments on the positive
// (top) and negative (bottom) sides of plane.Normal. On-plane vertices
// fold to the top slice (geom.Plane.Side's tie-break). Degenerate input
// (fewer than 3 vertices, or a zero-length plane normal) yields two empty
// fragments, per spec.md §4.2's InvalidInput policy.
func Slice(f *fragment.Fragment, plane geom.Plane, opts Options) (top, bottom *fragment.Fragment) {
	top = fragment.New()
	bottom = fragment.New()
	if len(f.Vertices) < 3 || plane.Degenerate() {
		return top, bottom
	}

	side := classify(f.Vertices, plane)
	for i, v := range f.Vertices {
		if side[i] > 0 {
			top.AddMappedVertex(i, v)
		} else {
			bottom.AddMappedVertex(i, v)
		}
	}

	u, v := plane.Basis()
	cache := newEdgeCache(f.Vertices, plane, u, v, opts)

	partitionDefault(f, top, bottom, side, cache)

	if len(f.CutVertices) > 0 {
		cutSide := classifyCut(f.CutVertices, f.VertexAdjacency, side)
		partitionCutFaceWhole(f, top, bottom, cutSide)
	}

	top.WeldCutFaceVertices()
	bottom.WeldCutFaceVertices()

	n := plane.Normal.Normalize()
	topTris := triangulate.Triangulate(top.CutVertices, top.Constraints, n)
	top.Triangles[fragment.CutFace] = append(top.Triangles[fragment.CutFace], topTris...)

	bottomTris := triangulate.Triangulate(bottom.CutVertices, bottom.Constraints, n.Scale(-1))
	bottom.Triangles[fragment.CutFace] = append(bottom.Triangles[fragment.CutFace], bottomTris...)

	top.CalculateBounds()
	bottom.CalculateBounds()

	return top, bottom
}

func classify(verts []fragment.MeshVertex, plane geom.Plane) []int {
	side := make([]int, len(verts))
	for i, v := range verts {
		side[i] = plane.Side(v.Position)
	}
	return side
}

// classifyCut classifies cut-face vertices by the side of their outer twin
// (VertexAdjacency), since a cut vertex's position is identical to its
// twin's (invariant I2) and the twin was already classified above; this
// avoids computing plane.Side twice for bit-identical positions.
func classifyCut(cutVerts []fragment.MeshVertex, adjacency []int, outerSide []int) []int {
	side := make([]int, len(cutVerts))
	for i := range cutVerts {
		side[i] = outerSide[adjacency[i]]
	}
	return side
}
