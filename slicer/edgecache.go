package slicer

import (
	"github.com/dgreenheck/three-pinata-sub000/fragment"
	"github.com/dgreenheck/three-pinata-sub000/geom"
)

// edgeKey identifies an undirected source-mesh edge. Per spec.md §4.2,
// "edge intersections are computed once per source edge and shared between
// the two triangles that abut it, guaranteeing that the two sides'
// boundary vertex positions are bit-identical."
type edgeKey struct{ a, b int }

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// boundaryPoint is the geometry computed once for a straddling source
// edge: an outer-role copy (interpolated normal/UV, used by the split
// Default- or CutFace-submesh triangles) and a cut-role copy (flat plane
// normal, projected UV, used by the new cut boundary loop).
type boundaryPoint struct {
	outer fragment.MeshVertex
	cut   fragment.MeshVertex
}

// edgeCache memoizes the boundary-point geometry per source edge, and the
// (outerIdx, cutIdx) pair each output fragment assigned to that point once
// it is first needed on that side.
type edgeCache struct {
	verts []fragment.MeshVertex
	plane geom.Plane
	u, v  geom.Vec3
	opts  Options

	points map[edgeKey]boundaryPoint
	top    map[edgeKey][2]int
	bottom map[edgeKey][2]int
}

func newEdgeCache(verts []fragment.MeshVertex, plane geom.Plane, u, v geom.Vec3, opts Options) *edgeCache {
	return &edgeCache{
		verts:  verts,
		plane:  plane,
		u:      u,
		v:      v,
		opts:   opts,
		points: map[edgeKey]boundaryPoint{},
		top:    map[edgeKey][2]int{},
		bottom: map[edgeKey][2]int{},
	}
}

func (c *edgeCache) point(a, b int) boundaryPoint {
	key := newEdgeKey(a, b)
	if p, ok := c.points[key]; ok {
		return p
	}
	va, vb := c.verts[a], c.verts[b]
	s := c.plane.Intersect(va.Position, vb.Position)
	pos := va.Position.Lerp(vb.Position, s)

	n := c.plane.Normal.Normalize()
	p := boundaryPoint{
		outer: fragment.MeshVertex{
			Position: pos,
			Normal:   va.Normal.NormalLerp(vb.Normal, s),
			UV:       va.UV.Lerp(vb.UV, s),
		},
		cut: fragment.MeshVertex{
			Position: pos,
			Normal:   n,
			UV:       c.cutUV(pos),
		},
	}
	c.points[key] = p
	return p
}

func (c *edgeCache) cutUV(pos geom.Vec3) geom.Vec2 {
	proj := c.plane.Project2D(c.plane.Origin, c.u, c.v, pos)
	return geom.Vec2{
		X: proj.X*c.opts.UVScale.X + c.opts.UVOffset.X,
		Y: proj.Y*c.opts.UVScale.Y + c.opts.UVOffset.Y,
	}
}

// ensure returns the (outerIdx, cutIdx) pair for the boundary point of
// source edge (a,b) within frag, which must be either the top or bottom
// output fragment of this call — creating it on first use and memoizing
// it per side so triangles sharing the edge reuse the same indices.
func (c *edgeCache) ensure(a, b int, frag *fragment.Fragment, isTop bool) (outerIdx, cutIdx int) {
	key := newEdgeKey(a, b)
	table := c.bottom
	if isTop {
		table = c.top
	}
	if idx, ok := table[key]; ok {
		return idx[0], idx[1]
	}
	p := c.point(a, b)
	cutVertex := p.cut
	if !isTop {
		cutVertex.Normal = cutVertex.Normal.Scale(-1)
	}
	outerIdx, cutIdx = frag.AddCutFaceVertex(p.outer, cutVertex)
	table[key] = [2]int{outerIdx, cutIdx}
	return outerIdx, cutIdx
}
