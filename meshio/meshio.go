// Package meshio implements spec.md §6's interchange format: a flat,
// parallel-array mesh description with no on-disk format of its own, plus
// the conversions to and from fragment.Fragment. The flat-array shape and
// the de-duplication-by-map construction are grounded on the teacher's
// EncodeSTL/EncodePLY (model3d/export.go), which build exactly this kind
// of position/normal/index array directly off a Fragment-equivalent
// triangle list.
package meshio

import (
	"github.com/pkg/errors"

	"github.com/dgreenheck/three-pinata-sub000/fragment"
	"github.com/dgreenheck/three-pinata-sub000/geom"
)

// Group names a contiguous run of Indices belonging to one submesh, so a
// single flat index buffer can carry both the Default and CutFace
// submeshes.
type Group struct {
	Start     int
	Count     int
	SubmeshID int
}

// Mesh is the wire-free interchange struct spec.md §6 names: parallel
// attribute arrays plus a flat triangle index buffer split into Groups.
type Mesh struct {
	Positions []geom.Vec3
	Normals   []geom.Vec3
	UVs       []geom.Vec2
	Indices   []uint32
	Groups    []Group
}

// FromFragment flattens f into a Mesh. Default-submesh vertices come from
// f.Vertices and CutFace-submesh vertices come from f.CutVertices; the two
// attribute ranges are concatenated so a single Positions/Normals/UVs set
// covers both, with Groups recording which index range belongs to which
// submesh and at what vertex-index offset.
func FromFragment(f *fragment.Fragment) Mesh {
	var m Mesh

	appendVerts := func(verts []fragment.MeshVertex) int {
		offset := len(m.Positions)
		for _, v := range verts {
			m.Positions = append(m.Positions, v.Position)
			m.Normals = append(m.Normals, v.Normal)
			m.UVs = append(m.UVs, v.UV)
		}
		return offset
	}

	defaultOffset := appendVerts(f.Vertices)
	if len(f.Triangles[fragment.Default]) > 0 {
		start := len(m.Indices)
		for _, idx := range f.Triangles[fragment.Default] {
			m.Indices = append(m.Indices, uint32(idx+defaultOffset))
		}
		m.Groups = append(m.Groups, Group{Start: start, Count: len(f.Triangles[fragment.Default]), SubmeshID: int(fragment.Default)})
	}

	cutOffset := appendVerts(f.CutVertices)
	if len(f.Triangles[fragment.CutFace]) > 0 {
		start := len(m.Indices)
		for _, idx := range f.Triangles[fragment.CutFace] {
			m.Indices = append(m.Indices, uint32(idx+cutOffset))
		}
		m.Groups = append(m.Groups, Group{Start: start, Count: len(f.Triangles[fragment.CutFace]), SubmeshID: int(fragment.CutFace)})
	}

	return m
}

// ToFragment rebuilds a Fragment from a Mesh produced by FromFragment (or
// an equivalent host-constructed one). It validates the mesh's internal
// consistency and returns a genuine Go error on malformed input — unlike
// the geometric core packages, meshio sits at the host boundary and
// follows spec.md §7's explicit carve-out for boundary-validation errors.
func ToFragment(m Mesh) (*fragment.Fragment, error) {
	if len(m.Positions) != len(m.Normals) || len(m.Positions) != len(m.UVs) {
		return nil, errors.New("meshio: Positions, Normals, and UVs must have equal length")
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			return nil, errors.Errorf("meshio: index %d out of range for %d vertices", idx, len(m.Positions))
		}
	}

	f := fragment.New()
	localIndex := make(map[uint32]int, len(m.Positions))

	resolve := func(idx uint32, sub fragment.Submesh) int {
		if local, ok := localIndex[idx]; ok {
			return local
		}
		v := fragment.MeshVertex{Position: m.Positions[idx], Normal: m.Normals[idx], UV: m.UVs[idx]}
		var local int
		if sub == fragment.Default {
			local = f.AddVertex(v)
		} else {
			_, local = f.AddCutFaceVertex(v, v)
		}
		localIndex[idx] = local
		return local
	}

	for _, g := range m.Groups {
		if g.Start < 0 || g.Start+g.Count > len(m.Indices) || g.Count%3 != 0 {
			return nil, errors.Errorf("meshio: group %+v is out of range or not a multiple of 3", g)
		}
		sub := fragment.Submesh(g.SubmeshID)
		for i := g.Start; i < g.Start+g.Count; i += 3 {
			a := resolve(m.Indices[i], sub)
			b := resolve(m.Indices[i+1], sub)
			c := resolve(m.Indices[i+2], sub)
			f.AddTriangle(a, b, c, sub)
		}
	}

	f.CalculateBounds()
	return f, nil
}
