// Package components implements spec.md §4.4: splitting a Fragment into
// its maximal connected pieces after a cut may have separated previously
// joined geometry (e.g. slicing a donut-shaped fragment in half produces
// two disjoint rings).
//
// Connectivity is computed with a union-find (disjoint-set) structure
// with union-by-rank and path compression, as spec.md §4.4 requires.
// The union rules themselves — link a cut vertex to its outer twin, link
// spatially-coincident outer vertices, and link every pair of vertices
// sharing a triangle edge in either submesh — are the Go-idiomatic
// restatement of the connectivity the teacher's removeAllConnected BFS
// (model3d/mesh_hierarchy.go) establishes by walking shared edges; a
// union-find reaches the same partition without needing the teacher's
// explicit adjacency-pointer mesh.
package components

import "github.com/dgreenheck/three-pinata-sub000/fragment"

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
}

// Split partitions f into its maximal connected pieces, ordered by the
// lowest Vertices index each piece contains. A fragment with a single
// connected component returns a single-element slice containing f itself
// (not a copy), so callers can always treat Split's result as the
// authoritative output regardless of whether a split actually occurred.
func Split(f *fragment.Fragment) []*fragment.Fragment {
	uf := newUnionFind(len(f.Vertices))

	// Spatial-hash collisions between outer vertices (two independently
	// built boundary loops that happen to coincide in space) are unioned
	// explicitly, since no triangle edge connects them directly.
	hashGroups := map[hashable][]int{}
	for i, v := range f.Vertices {
		h := hashVec3(v.Position)
		hashGroups[h] = append(hashGroups[h], i)
	}
	for _, group := range hashGroups {
		for i := 1; i < len(group); i++ {
			uf.union(group[0], group[i])
		}
	}

	unionTriangleEdges(uf, f.Triangles[fragment.Default])
	unionCutTriangleEdges(uf, f, f.Triangles[fragment.CutFace])

	groups := map[int][]int{}
	var roots []int
	for i := range f.Vertices {
		root := uf.find(i)
		if _, ok := groups[root]; !ok {
			roots = append(roots, root)
		}
		groups[root] = append(groups[root], i)
	}

	if len(groups) <= 1 {
		return []*fragment.Fragment{f}
	}

	out := make([]*fragment.Fragment, 0, len(groups))
	for _, root := range roots {
		out = append(out, buildSubfragment(f, groups[root]))
	}
	return out
}

func unionTriangleEdges(uf *unionFind, tris []int) {
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := tris[i], tris[i+1], tris[i+2]
		uf.union(a, b)
		uf.union(b, c)
		uf.union(c, a)
	}
}

// unionCutTriangleEdges unions CutFace triangle vertices through their
// outer twins (VertexAdjacency), since the union-find here is defined
// over Vertices indices, not CutVertices indices.
func unionCutTriangleEdges(uf *unionFind, f *fragment.Fragment, tris []int) {
	for i := 0; i+2 < len(tris); i += 3 {
		a := f.VertexAdjacency[tris[i]]
		b := f.VertexAdjacency[tris[i+1]]
		c := f.VertexAdjacency[tris[i+2]]
		uf.union(a, b)
		uf.union(b, c)
		uf.union(c, a)
	}
}

type hashable struct{ x, y, z int64 }

func hashVec3(p interface{ Array() [3]float64 }) hashable {
	a := p.Array()
	const eps = 1e-9
	return hashable{int64(round(a[0] / eps)), int64(round(a[1] / eps)), int64(round(a[2] / eps))}
}

func round(x float64) float64 {
	if x < 0 {
		return -round(-x)
	}
	return float64(int64(x + 0.5))
}

// buildSubfragment creates a new fragment containing only members (a set
// of Vertices indices) and the triangles/cut-vertices reachable from
// them, re-indexing everything through a fresh IndexMap/CutIndexMap.
func buildSubfragment(f *fragment.Fragment, members []int) *fragment.Fragment {
	out := fragment.New()
	memberSet := make(map[int]bool, len(members))
	for _, m := range members {
		memberSet[m] = true
	}

	for _, m := range members {
		out.AddMappedVertex(m, f.Vertices[m])
	}

	for i, adj := range f.VertexAdjacency {
		if memberSet[adj] {
			out.AddMappedCutVertex(i, f.CutVertices[i])
		}
	}

	copyTriangles(out, f.Triangles[fragment.Default], fragment.Default, memberSet, nil)
	copyTriangles(out, f.Triangles[fragment.CutFace], fragment.CutFace, memberSet, f.VertexAdjacency)

	for _, c := range f.Constraints {
		if !memberSet[f.VertexAdjacency[c.V1]] {
			continue
		}
		nv1, ok1 := out.CutIndexMap[c.V1]
		nv2, ok2 := out.CutIndexMap[c.V2]
		if ok1 && ok2 {
			out.Constraints = append(out.Constraints, fragment.EdgeConstraint{V1: nv1, V2: nv2})
		}
	}

	out.CalculateBounds()
	return out
}

// copyTriangles appends every triangle of tris (indexed against the
// source fragment) whose vertices all belong to memberSet, translating
// indices via sub's own IndexMap (Default) or CutIndexMap (CutFace,
// reached through adjacency since memberSet is defined over outer-vertex
// indices).
func copyTriangles(sub *fragment.Fragment, tris []int, kind fragment.Submesh, memberSet map[int]bool, adjacency []int) {
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := tris[i], tris[i+1], tris[i+2]
		if kind == fragment.Default {
			if !memberSet[a] || !memberSet[b] || !memberSet[c] {
				continue
			}
			sub.AddMappedTriangle(a, b, c, kind)
		} else {
			if !memberSet[adjacency[a]] || !memberSet[adjacency[b]] || !memberSet[adjacency[c]] {
				continue
			}
			sub.AddMappedTriangleSub(a, b, c, kind)
		}
	}
}
