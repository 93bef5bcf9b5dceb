package triangulate

import "github.com/dgreenheck/three-pinata-sub000/geom"

// insertConstraintEdge forces edge (u,v) to exist in the triangulation,
// flipping any edge it crosses (the Lawson channel algorithm), then marks
// it constrained so later legalization passes never flip it away.
// Grounded on the teacher pack's forceEdge / findIntersectingEdges
// (other_examples' gomesh cdt/constraint.go).
func (ts *triSoup) insertConstraintEdge(u, v int) {
	key := newEdgeKey(u, v)
	if ts.hasEdge(u, v) {
		ts.constrain[key] = true
		return
	}

	const maxFlips = 10000
	flips := 0
	for !ts.hasEdge(u, v) && flips < maxFlips {
		crossing, ok := ts.findCrossingEdge(u, v)
		if !ok {
			break
		}
		if ts.flipEdge(crossing.t, crossing.a, crossing.b) {
			flips++
		} else {
			// A constrained or unflippable edge blocks the channel; give
			// up rather than loop forever on degenerate input.
			break
		}
	}

	ts.constrain[key] = true
}

func (ts *triSoup) hasEdge(u, v int) bool {
	for _, t := range ts.edgeTri[newEdgeKey(u, v)] {
		if ts.alive[t] {
			return true
		}
	}
	return false
}

type crossingEdge struct {
	t    int
	a, b int
}

// findCrossingEdge returns one living, non-constrained triangle edge that
// properly intersects segment (u,v) in the open interior of both
// segments.
func (ts *triSoup) findCrossingEdge(u, v int) (crossingEdge, bool) {
	pu, pv := ts.points[u], ts.points[v]
	for i, alive := range ts.alive {
		if !alive {
			continue
		}
		t := ts.tris[i]
		for e := 0; e < 3; e++ {
			a, b := t[e], t[(e+1)%3]
			if a == u || a == v || b == u || b == v {
				continue
			}
			if ts.constrain[newEdgeKey(a, b)] {
				continue
			}
			if segmentsIntersect(pu, pv, ts.points[a], ts.points[b]) {
				return crossingEdge{t: i, a: a, b: b}, true
			}
		}
	}
	return crossingEdge{}, false
}

// flipEdge replaces triangles (t, opposite-across-(a,b)) with the two
// triangles formed by the other diagonal, returning false if (a,b) has no
// living neighbor across it or is constrained.
func (ts *triSoup) flipEdge(t, a, b int) bool {
	if ts.constrain[newEdgeKey(a, b)] {
		return false
	}
	opp := ts.neighborAcross(t, a, b)
	if opp < 0 {
		return false
	}
	p := ts.thirdVertex(t, a, b)
	q := ts.thirdVertex(opp, a, b)
	if p < 0 || q < 0 {
		return false
	}

	ts.removeTriangle(t)
	ts.removeTriangle(opp)
	ts.addTriangle(p, q, b)
	ts.addTriangle(p, a, q)
	return true
}

// segmentsIntersect reports whether open segments (p1,p2) and (p3,p4)
// properly cross, using the standard orientation-sign test.
func segmentsIntersect(p1, p2, p3, p4 geom.Vec2) bool {
	d1 := orient2D(p3, p4, p1)
	d2 := orient2D(p3, p4, p2)
	d3 := orient2D(p1, p2, p3)
	d4 := orient2D(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}
