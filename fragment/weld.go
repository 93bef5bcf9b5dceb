package fragment

import "github.com/dgreenheck/three-pinata-sub000/geom"

// WeldCutFaceVertices deduplicates CutVertices by spatial hash, rewrites
// VertexAdjacency to match the surviving indices, and rewrites the
// endpoints of every Constraint to the post-weld indices (spec.md §4.1,
// invariant I3).
//
// Grounded on the teacher's Mesh.Repair (mesh_ops.go): both group points by
// a spatial-hash key and replace every member of a group with one
// canonical representative. Repair needed equivalence classes spanning a
// 2x2x2 neighborhood of hash cells because it welds across an arbitrary
// mesh with no prior agreement on cell alignment; cut-face vertices are
// produced in pairs that are already bit-identical (spec.md §4.2's "shared
// intersection" guarantee), so a single-cell spatial hash is sufficient
// here and keeps the weld a straightforward first-seen-wins pass.
func (f *Fragment) WeldCutFaceVertices() {
	if len(f.CutVertices) == 0 {
		return
	}

	canonical := map[geom.Hash]int{}
	remap := make([]int, len(f.CutVertices))
	newVertices := make([]MeshVertex, 0, len(f.CutVertices))
	newAdjacency := make([]int, 0, len(f.CutVertices))

	for i, v := range f.CutVertices {
		h := geom.HashVec3(v.Position)
		if existing, ok := canonical[h]; ok {
			remap[i] = existing
			continue
		}
		newIdx := len(newVertices)
		canonical[h] = newIdx
		newVertices = append(newVertices, v)
		newAdjacency = append(newAdjacency, f.VertexAdjacency[i])
		remap[i] = newIdx
	}

	f.CutVertices = newVertices
	f.VertexAdjacency = newAdjacency

	for i, c := range f.Constraints {
		f.Constraints[i] = EdgeConstraint{V1: remap[c.V1], V2: remap[c.V2]}
	}

	// WeldCutFaceVertices always runs before the triangulator populates
	// CutFace (spec.md §4.2 step 5), but remap any pre-existing indices
	// defensively so re-running a weld is idempotent.
	for i, idx := range f.Triangles[CutFace] {
		f.Triangles[CutFace][i] = remap[idx]
	}
}
