package triangulate

import (
	"math"

	"github.com/dgreenheck/three-pinata-sub000/fragment"
	"github.com/dgreenheck/three-pinata-sub000/geom"
)

// superTriangleMargin is the multiple of the input's bounding-box
// diagonal used to size the enclosing super-triangle, per spec.md §4.3
// step 1 ("at least 10x the bounding diagonal so no real point can ever
// lie outside it").
const superTriangleMargin = 10.0

type edgeKey struct{ a, b int }

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// triSoup is a flat, index-based triangulation working set: triangles are
// stored as plain [3]int vertex-index triples, and adjacency is recovered
// on demand through edgeTri rather than carried as explicit neighbor
// pointers (model3d's general preference for flat slices plus maps over a
// half-edge structure, applied here to the CDT's internal state).
type triSoup struct {
	points     []geom.Vec2
	tris       [][3]int
	alive      []bool
	edgeTri    map[edgeKey][]int
	superStart int
	constrain  map[edgeKey]bool
}

func newTriSoup(realPoints []geom.Vec2) *triSoup {
	min, max := realPoints[0], realPoints[0]
	for _, p := range realPoints {
		min = geom.Vec2{X: math.Min(min.X, p.X), Y: math.Min(min.Y, p.Y)}
		max = geom.Vec2{X: math.Max(max.X, p.X), Y: math.Max(max.Y, p.Y)}
	}
	center := geom.Vec2{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}
	diag := math.Hypot(max.X-min.X, max.Y-min.Y)
	if diag < geom.ZeroLengthEpsilon {
		diag = 1
	}
	r := diag * superTriangleMargin

	// A large isosceles triangle centered on the input's bounding box,
	// guaranteed to strictly contain every real point.
	s0 := geom.Vec2{X: center.X - 2*r, Y: center.Y - r}
	s1 := geom.Vec2{X: center.X + 2*r, Y: center.Y - r}
	s2 := geom.Vec2{X: center.X, Y: center.Y + 2*r}

	points := append(append([]geom.Vec2(nil), realPoints...), s0, s1, s2)
	superStart := len(realPoints)

	ts := &triSoup{
		points:     points,
		edgeTri:    map[edgeKey][]int{},
		superStart: superStart,
		constrain:  map[edgeKey]bool{},
	}
	ts.addTriangle(superStart, superStart+1, superStart+2)
	return ts
}

func orient2D(a, b, c geom.Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// inCircumcircle reports whether d lies strictly inside the circumcircle
// of the CCW triangle (a,b,c), via the standard 3x3 determinant test.
func inCircumcircle(a, b, c, d geom.Vec2) bool {
	ax, ay := a.X-d.X, a.Y-d.Y
	bx, by := b.X-d.X, b.Y-d.Y
	cx, cy := c.X-d.X, c.Y-d.Y

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)
	return det > 0
}

func (ts *triSoup) addTriangle(a, b, c int) int {
	if orient2D(ts.points[a], ts.points[b], ts.points[c]) < 0 {
		b, c = c, b
	}
	idx := len(ts.tris)
	ts.tris = append(ts.tris, [3]int{a, b, c})
	ts.alive = append(ts.alive, true)
	ts.registerEdges(idx)
	return idx
}

func (ts *triSoup) registerEdges(idx int) {
	t := ts.tris[idx]
	for e := 0; e < 3; e++ {
		k := newEdgeKey(t[e], t[(e+1)%3])
		ts.edgeTri[k] = append(ts.edgeTri[k], idx)
	}
}

func (ts *triSoup) removeTriangle(idx int) {
	if !ts.alive[idx] {
		return
	}
	ts.alive[idx] = false
	t := ts.tris[idx]
	for e := 0; e < 3; e++ {
		k := newEdgeKey(t[e], t[(e+1)%3])
		list := ts.edgeTri[k]
		for i, v := range list {
			if v == idx {
				ts.edgeTri[k] = append(list[:i], list[i+1:]...)
				break
			}
		}
	}
}

// neighborAcross returns the other living triangle sharing edge (a,b), or
// -1 if (a,b) is a boundary edge.
func (ts *triSoup) neighborAcross(self, a, b int) int {
	for _, t := range ts.edgeTri[newEdgeKey(a, b)] {
		if t != self && ts.alive[t] {
			return t
		}
	}
	return -1
}

// thirdVertex returns the vertex of triangle t that is not a or b.
func (ts *triSoup) thirdVertex(t, a, b int) int {
	tri := ts.tris[t]
	for _, v := range tri {
		if v != a && v != b {
			return v
		}
	}
	return -1
}

// locate returns the index of a living triangle containing p (or whose
// boundary p lies on). Brute force: fragment-scale triangulations in this
// module's domain (per-cell or per-slice cut faces) never approach a size
// where this matters.
func (ts *triSoup) locate(p geom.Vec2) int {
	for i, alive := range ts.alive {
		if !alive {
			continue
		}
		t := ts.tris[i]
		a, b, c := ts.points[t[0]], ts.points[t[1]], ts.points[t[2]]
		d1 := orient2D(a, b, p)
		d2 := orient2D(b, c, p)
		d3 := orient2D(c, a, p)
		neg := d1 < -geom.StraddleEpsilon || d2 < -geom.StraddleEpsilon || d3 < -geom.StraddleEpsilon
		pos := d1 > geom.StraddleEpsilon || d2 > geom.StraddleEpsilon || d3 > geom.StraddleEpsilon
		if !(neg && pos) {
			return i
		}
	}
	return -1
}

// insertPoint inserts the real point at vidx into the triangulation,
// splitting whichever living triangle currently contains it.
func (ts *triSoup) insertPoint(vidx int) {
	home := ts.locate(ts.points[vidx])
	if home < 0 {
		return
	}
	t := ts.tris[home]
	a, b, c := t[0], t[1], t[2]
	ts.removeTriangle(home)

	t0 := ts.addTriangle(a, b, vidx)
	t1 := ts.addTriangle(b, c, vidx)
	t2 := ts.addTriangle(c, a, vidx)

	ts.legalize(t0, a, b)
	ts.legalize(t1, b, c)
	ts.legalize(t2, c, a)
}

// legalize applies the Lawson edge-flip test to edge (a,b) of triangle t
// and recurses into the two new edges produced by a flip. Constrained
// edges are never flipped (spec.md §4.3 step 6, "constraint protection").
func (ts *triSoup) legalize(t, a, b int) {
	if !ts.alive[t] || ts.constrain[newEdgeKey(a, b)] {
		return
	}
	opp := ts.neighborAcross(t, a, b)
	if opp < 0 {
		return
	}
	p := ts.thirdVertex(t, a, b)
	q := ts.thirdVertex(opp, a, b)
	if p < 0 || q < 0 {
		return
	}
	if !inCircumcircle(ts.points[a], ts.points[b], ts.points[p], ts.points[q]) {
		return
	}

	ts.removeTriangle(t)
	ts.removeTriangle(opp)
	nt0 := ts.addTriangle(p, q, b)
	nt1 := ts.addTriangle(p, a, q)

	ts.legalize(nt0, q, b)
	ts.legalize(nt1, a, q)
}

// legalizeAll runs three global Lawson passes over every living edge, used
// after all constraint edges are recovered (spec.md §4.3 step 6 final
// legalization).
func (ts *triSoup) legalizeAll() {
	for pass := 0; pass < 3; pass++ {
		for i, alive := range ts.alive {
			if !alive {
				continue
			}
			t := ts.tris[i]
			ts.legalize(i, t[0], t[1])
			if !ts.alive[i] {
				continue
			}
			ts.legalize(i, t[1], t[2])
			if !ts.alive[i] {
				continue
			}
			ts.legalize(i, t[2], t[0])
		}
	}
}

// removeSuperTriangle implements spec.md §4.3 step 6's two-stage cleanup:
// flood-fill outward from every triangle touching a super-triangle vertex,
// crossing only non-constraint edges, then delete everything reached. A
// constraint edge always stops the flood, so a triangle belongs to the
// exterior only if it is reachable from the super-triangle without
// crossing a boundary the caller asked to keep — this is what clears the
// dead space between two disjoint constrained loops (e.g. two separate
// quads triangulated in one call), not just triangles literally touching a
// super-vertex. With no constraints at all there is no boundary to stop
// the flood, so only the triangles touching a super-vertex are deleted and
// the triangulation of the points' convex hull remains.
func (ts *triSoup) removeSuperTriangle() {
	queue := make([]int, 0)
	visited := make(map[int]bool)
	for i, alive := range ts.alive {
		if !alive {
			continue
		}
		t := ts.tris[i]
		if t[0] >= ts.superStart || t[1] >= ts.superStart || t[2] >= ts.superStart {
			visited[i] = true
			queue = append(queue, i)
		}
	}

	for len(ts.constrain) > 0 && len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		t := ts.tris[cur]
		for e := 0; e < 3; e++ {
			a, b := t[e], t[(e+1)%3]
			if ts.constrain[newEdgeKey(a, b)] {
				continue
			}
			nb := ts.neighborAcross(cur, a, b)
			if nb >= 0 && !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	for idx := range visited {
		ts.removeTriangle(idx)
	}
}

// orientedTriangles flattens the surviving triangles into a CutVertices
// index list, winding each one so its geometric normal agrees with
// normal's sign (spec.md §4.3 step 7).
func (ts *triSoup) orientedTriangles(normal geom.Vec3, verts []fragment.MeshVertex) []int {
	out := make([]int, 0, len(ts.tris)*3)
	for i, alive := range ts.alive {
		if !alive {
			continue
		}
		t := ts.tris[i]
		a, b, c := verts[t[0]].Position, verts[t[1]].Position, verts[t[2]].Position
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Dot(normal) < 0 {
			t[1], t[2] = t[2], t[1]
		}
		out = append(out, t[0], t[1], t[2])
	}
	return out
}
