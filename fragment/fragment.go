// Package fragment owns the vertex/triangle/constraint buffers that every
// other package in this module reads and writes. A Fragment is the
// fundamental carrier described in spec.md §3: it holds every vertex
// visible from outside the mesh, the interior cut-face vertices produced
// by slicing, two submeshes (outer and cut-face), the boundary constraints
// the triangulator must respect, and the index map used while a Fragment
// is being built from a source mesh.
//
// A Fragment is mutated only by the component that produced it (slicer,
// triangulator, splitter, or the fracture coordinator), through the
// ordered operations AddMappedVertex, AddCutFaceVertex, AddTriangle /
// AddMappedTriangle, WeldCutFaceVertices, and CalculateBounds. Once handed
// back to a caller it is treated as read-only.
package fragment

import "github.com/dgreenheck/three-pinata-sub000/geom"

// Submesh selects which triangle list a given index sequence addresses.
type Submesh int

const (
	// Default is submesh 0: outer faces, indices into Vertices.
	Default Submesh = 0
	// CutFace is submesh 1: interior faces synthesized by slicing,
	// indices into CutVertices.
	CutFace Submesh = 1

	numSubmeshes = 2
)

// MeshVertex is a single vertex: position, normal, and texture coordinate.
type MeshVertex struct {
	Position geom.Vec3
	Normal   geom.Vec3
	UV       geom.Vec2
}

// EdgeConstraint is an edge the triangulator must preserve. Two constraints
// are equal iff they name the same unordered pair of cut-vertex indices.
type EdgeConstraint struct {
	V1, V2 int
}

// Equal reports whether c and other name the same unordered vertex pair.
func (c EdgeConstraint) Equal(other EdgeConstraint) bool {
	return (c.V1 == other.V1 && c.V2 == other.V2) || (c.V1 == other.V2 && c.V2 == other.V1)
}

// Fragment is the fundamental carrier described in spec.md §3.
type Fragment struct {
	// Vertices holds every vertex visible from outside the mesh,
	// including those lying on a cut boundary.
	Vertices []MeshVertex

	// CutVertices holds vertices of the interior cut face only. Each
	// entry has a corresponding Vertices entry tracked by
	// VertexAdjacency, duplicated so the outer and cut-face submeshes
	// can carry independent normals and UVs (spec.md §9, "Shared
	// boundary vertices").
	CutVertices []MeshVertex

	// VertexAdjacency[i] is the index into Vertices that CutVertices[i]
	// was duplicated from.
	VertexAdjacency []int

	// Triangles[Default] indexes Vertices; Triangles[CutFace] indexes
	// CutVertices.
	Triangles [numSubmeshes][]int

	// Constraints are the boundary loops the triangulator must
	// preserve when it fills CutFace.
	Constraints []EdgeConstraint

	// IndexMap is a sparse map from source-mesh vertex indices to this
	// fragment's Vertices indices, populated while a fragment is built
	// as a slicer output.
	IndexMap map[int]int

	// CutIndexMap is IndexMap's counterpart for CutFace-submesh sourcing:
	// it maps a source fragment's CutVertices index to this fragment's
	// CutVertices index. It exists because re-slicing a fragment that
	// already carries a cut face (successive Voronoi half-space clips,
	// or any generation>0 refracture) must partition that submesh the
	// same way the Default submesh is partitioned.
	CutIndexMap map[int]int

	// Bounds is the axis-aligned box of Vertices, valid only after
	// CalculateBounds is called.
	Bounds geom.Bounds

	// Generation is the refracture-depth counter the fracture
	// coordinator reads and increments (spec.md §4.6 "Refracture";
	// promoted from the spec's "userData/metadata" wording to a
	// first-class field since Go has no implicit per-object bag).
	Generation int
}

// New creates an empty Fragment ready to receive vertices and triangles.
func New() *Fragment {
	return &Fragment{IndexMap: map[int]int{}, CutIndexMap: map[int]int{}}
}

// VertexCount returns len(Vertices).
func (f *Fragment) VertexCount() int {
	return len(f.Vertices)
}

// TriangleCount returns the total number of triangles across both
// submeshes, computed as each submesh's index count divided by 3 and
// summed — per spec.md §9, this is the only correct semantics; the
// alternative of dividing the combined index count is never implemented.
func (f *Fragment) TriangleCount() int {
	return len(f.Triangles[Default])/3 + len(f.Triangles[CutFace])/3
}

// AddVertex appends v to Vertices and returns its index.
func (f *Fragment) AddVertex(v MeshVertex) int {
	f.Vertices = append(f.Vertices, v)
	return len(f.Vertices) - 1
}

// AddMappedVertex appends v to Vertices, records sourceIndex -> new index in
// IndexMap, and returns the new index.
func (f *Fragment) AddMappedVertex(sourceIndex int, v MeshVertex) int {
	idx := f.AddVertex(v)
	f.IndexMap[sourceIndex] = idx
	return idx
}

// AddCutFaceVertex appends v to both Vertices (under outerV, the vertex
// carrying the outer-face normal/UV) and CutVertices (under cutV, carrying
// the flat cut-face normal), linking them via VertexAdjacency. It returns
// both the new Vertices index and the new CutVertices index.
func (f *Fragment) AddCutFaceVertex(outerV, cutV MeshVertex) (outerIdx, cutIdx int) {
	outerIdx = f.AddVertex(outerV)
	f.CutVertices = append(f.CutVertices, cutV)
	f.VertexAdjacency = append(f.VertexAdjacency, outerIdx)
	return outerIdx, len(f.CutVertices) - 1
}

// AddMappedCutVertex appends cut to CutVertices, creates a position-matched
// mirror entry in Vertices so invariant I2 holds, links the two via
// VertexAdjacency, records sourceIndex -> new cut index in CutIndexMap, and
// returns the new CutVertices index.
func (f *Fragment) AddMappedCutVertex(sourceIndex int, cut MeshVertex) int {
	_, idx := f.AddCutFaceVertex(cut, cut)
	f.CutIndexMap[sourceIndex] = idx
	return idx
}

// AddMappedTriangleSub is AddMappedTriangle generalized over submesh: for
// Default it translates through IndexMap (addressing Vertices); for
// CutFace it translates through CutIndexMap (addressing CutVertices).
func (f *Fragment) AddMappedTriangleSub(v1, v2, v3 int, sub Submesh) {
	if sub == Default {
		f.AddMappedTriangle(v1, v2, v3, sub)
		return
	}
	i1, ok1 := f.CutIndexMap[v1]
	i2, ok2 := f.CutIndexMap[v2]
	i3, ok3 := f.CutIndexMap[v3]
	if !ok1 || !ok2 || !ok3 {
		return
	}
	f.AddTriangle(i1, i2, i3, sub)
}

// AddTriangle appends a triangle of the given submesh using fragment-local
// indices directly (no translation through IndexMap).
func (f *Fragment) AddTriangle(v1, v2, v3 int, sub Submesh) {
	f.Triangles[sub] = append(f.Triangles[sub], v1, v2, v3)
}

// AddMappedTriangle translates source-mesh indices through IndexMap before
// appending the triangle to the given submesh. Vertices not yet present in
// IndexMap are silently skipped (they belong to the other side of a slice
// and were never added to this fragment); callers are expected to only
// invoke this for triangles fully resolved on one side.
func (f *Fragment) AddMappedTriangle(v1, v2, v3 int, sub Submesh) {
	i1, ok1 := f.IndexMap[v1]
	i2, ok2 := f.IndexMap[v2]
	i3, ok3 := f.IndexMap[v3]
	if !ok1 || !ok2 || !ok3 {
		return
	}
	f.AddTriangle(i1, i2, i3, sub)
}

// CalculateBounds recomputes Bounds from Vertices.
func (f *Fragment) CalculateBounds() {
	b := geom.EmptyBounds()
	for _, v := range f.Vertices {
		b = b.Add(v.Position)
	}
	f.Bounds = b
}

// NeedsWeld reports whether any two CutVertices currently share a spatial
// hash, mirroring the teacher's Mesh.NeedsRepair check (mesh_ops.go) that
// precedes a welding pass.
func (f *Fragment) NeedsWeld() bool {
	seen := map[geom.Hash]bool{}
	for _, v := range f.CutVertices {
		h := geom.HashVec3(v.Position)
		if seen[h] {
			return true
		}
		seen[h] = true
	}
	return false
}

// Clone makes a deep copy of f so a caller can triangulate or otherwise
// mutate a working copy without disturbing the original.
func (f *Fragment) Clone() *Fragment {
	out := &Fragment{
		Vertices:        append([]MeshVertex(nil), f.Vertices...),
		CutVertices:     append([]MeshVertex(nil), f.CutVertices...),
		VertexAdjacency: append([]int(nil), f.VertexAdjacency...),
		Constraints:     append([]EdgeConstraint(nil), f.Constraints...),
		Bounds:          f.Bounds,
		Generation:      f.Generation,
		IndexMap:        make(map[int]int, len(f.IndexMap)),
		CutIndexMap:     make(map[int]int, len(f.CutIndexMap)),
	}
	for i := range f.Triangles {
		out.Triangles[i] = append([]int(nil), f.Triangles[i]...)
	}
	for k, v := range f.IndexMap {
		out.IndexMap[k] = v
	}
	for k, v := range f.CutIndexMap {
		out.CutIndexMap[k] = v
	}
	return out
}
