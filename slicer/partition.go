package slicer

import "github.com/dgreenheck/three-pinata-sub000/fragment"

// partitionDefault walks every triangle of the source Default submesh,
// routes whole triangles to whichever output fragment their vertices all
// lie on, and splits straddling triangles into the three-triangle fan
// described in spec.md §4.2 step 3: the minority vertex's fragment gets a
// single triangle against the two new boundary points, and the majority
// side gets the remaining quad split along the diagonal between the far
// boundary point and the far majority vertex. Every straddling triangle
// also appends one EdgeConstraint (the new boundary edge) to both outputs,
// so the triangulator inherits a closed loop per spec.md §4.2 step 4.
func partitionDefault(f, top, bottom *fragment.Fragment, side []int, cache *edgeCache) {
	src := f.Triangles[fragment.Default]
	for i := 0; i+2 < len(src); i += 3 {
		a, b, c := src[i], src[i+1], src[i+2]
		sa, sb, sc := side[a], side[b], side[c]

		if sa == sb && sb == sc {
			dst := bottom
			if sa > 0 {
				dst = top
			}
			dst.AddMappedTriangle(a, b, c, fragment.Default)
			continue
		}

		splitTriangle(top, bottom, cache, a, b, c, sa, sb, sc)
	}
}

// splitTriangle handles one straddling triangle (a, b, c) in winding
// order, given each vertex's side. Exactly one or two vertices share a
// side; the lone vertex is rotated to position "lone" with its neighbors
// kept in (next, prev) winding order so the fan below preserves the
// original triangle's orientation on both outputs.
func splitTriangle(top, bottom *fragment.Fragment, cache *edgeCache, a, b, c, sa, sb, sc int) {
	type vert struct {
		idx  int
		side int
	}
	vs := [3]vert{{a, sa}, {b, sb}, {c, sc}}

	lone := -1
	for i := range vs {
		other1 := vs[(i+1)%3].side
		other2 := vs[(i+2)%3].side
		if other1 == other2 && vs[i].side != other1 {
			lone = i
			break
		}
	}
	if lone == -1 {
		// side is always ±1 (splitTriangle is only ever called on a
		// straddling triangle, i.e. sa/sb/sc not all equal), so two of the
		// three must match and a lone vertex always exists.
		panic("slicer: splitTriangle called with no lone vertex (side values must be ±1)")
	}

	loneV := vs[lone]
	nextV := vs[(lone+1)%3]
	prevV := vs[(lone+2)%3]

	loneTop := loneV.side > 0
	x1Outer, x1Cut := cache.ensure(loneV.idx, nextV.idx, pick(top, bottom, loneTop), loneTop)

	x2Outer, x2Cut := cache.ensure(prevV.idx, loneV.idx, pick(top, bottom, loneTop), loneTop)

	loneFrag := pick(top, bottom, loneTop)
	loneLocal, ok := loneFrag.IndexMap[loneV.idx]
	if ok {
		loneFrag.AddTriangle(loneLocal, x1Outer, x2Outer, fragment.Default)
	}

	majFrag := pick(top, bottom, !loneTop)
	majX1Outer, majX1Cut := cache.ensure(loneV.idx, nextV.idx, majFrag, !loneTop)
	majX2Outer, majX2Cut := cache.ensure(prevV.idx, loneV.idx, majFrag, !loneTop)

	nextLocal, nextOK := majFrag.IndexMap[nextV.idx]
	prevLocal, prevOK := majFrag.IndexMap[prevV.idx]
	if nextOK && prevOK {
		majFrag.AddTriangle(nextLocal, prevLocal, majX2Outer, fragment.Default)
		majFrag.AddTriangle(nextLocal, majX2Outer, majX1Outer, fragment.Default)
	}

	loneFrag.Constraints = append(loneFrag.Constraints, fragment.EdgeConstraint{V1: x1Cut, V2: x2Cut})
	majFrag.Constraints = append(majFrag.Constraints, fragment.EdgeConstraint{V1: majX1Cut, V2: majX2Cut})
}

func pick(top, bottom *fragment.Fragment, isTop bool) *fragment.Fragment {
	if isTop {
		return top
	}
	return bottom
}

// partitionCutFaceWhole partitions the source CutFace submesh (an already
// closed interior patch from a prior slice) across the new plane. Per the
// simplification recorded in DESIGN.md, this submesh is never re-split at
// the triangle level: a whole triangle is routed to the side holding all
// three of its vertices, and a straddling triangle is routed wholly to
// whichever side holds the majority (2-of-3) of its vertices. This keeps
// the new cut's CutFace submesh purely additive, matching the Voronoi
// clipper's need to accumulate more than one planar patch per cell.
func partitionCutFaceWhole(f, top, bottom *fragment.Fragment, cutSide []int) {
	for i, v := range f.CutVertices {
		dst := bottom
		if cutSide[i] > 0 {
			dst = top
		}
		dst.AddMappedCutVertex(i, v)
	}

	src := f.Triangles[fragment.CutFace]
	for i := 0; i+2 < len(src); i += 3 {
		a, b, c := src[i], src[i+1], src[i+2]
		count := cutSide[a] + cutSide[b] + cutSide[c]
		dst := bottom
		if count > 0 {
			dst = top
		}
		// A straddling triangle's minority vertex was routed to the other
		// side above; carry a copy of it along so the triangle stays whole.
		for _, x := range [3]int{a, b, c} {
			if _, ok := dst.CutIndexMap[x]; !ok {
				dst.AddMappedCutVertex(x, f.CutVertices[x])
			}
		}
		dst.AddMappedTriangleSub(a, b, c, fragment.CutFace)
	}
}
