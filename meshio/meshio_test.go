package meshio

import (
	"testing"

	"github.com/dgreenheck/three-pinata-sub000/fragment"
	"github.com/dgreenheck/three-pinata-sub000/geom"
)

func triangleFragment() *fragment.Fragment {
	f := fragment.New()
	f.AddMappedVertex(0, fragment.MeshVertex{Position: geom.Vec3{X: 0}, Normal: geom.Vec3{Z: 1}})
	f.AddMappedVertex(1, fragment.MeshVertex{Position: geom.Vec3{X: 1}, Normal: geom.Vec3{Z: 1}})
	f.AddMappedVertex(2, fragment.MeshVertex{Position: geom.Vec3{X: 2}, Normal: geom.Vec3{Z: 1}})
	f.AddMappedTriangle(0, 1, 2, fragment.Default)
	f.CalculateBounds()
	return f
}

func TestFromFragmentRoundTrip(t *testing.T) {
	f := triangleFragment()
	m := FromFragment(f)

	if len(m.Positions) != 3 || len(m.Indices) != 3 {
		t.Fatalf("unexpected mesh shape: %d positions, %d indices", len(m.Positions), len(m.Indices))
	}

	back, err := ToFragment(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.TriangleCount() != f.TriangleCount() {
		t.Fatalf("expected round trip to preserve triangle count, got %d want %d", back.TriangleCount(), f.TriangleCount())
	}
	if back.VertexCount() != f.VertexCount() {
		t.Fatalf("expected round trip to preserve vertex count, got %d want %d", back.VertexCount(), f.VertexCount())
	}
}

func TestToFragmentRejectsMismatchedAttributeLengths(t *testing.T) {
	m := Mesh{
		Positions: []geom.Vec3{{X: 0}, {X: 1}},
		Normals:   []geom.Vec3{{Z: 1}},
		UVs:       []geom.Vec2{{}, {}},
	}
	if _, err := ToFragment(m); err == nil {
		t.Fatalf("expected an error for mismatched attribute array lengths")
	}
}

func TestToFragmentRejectsOutOfRangeIndex(t *testing.T) {
	m := Mesh{
		Positions: []geom.Vec3{{X: 0}, {X: 1}, {X: 2}},
		Normals:   []geom.Vec3{{}, {}, {}},
		UVs:       []geom.Vec2{{}, {}, {}},
		Indices:   []uint32{0, 1, 5},
		Groups:    []Group{{Start: 0, Count: 3, SubmeshID: 0}},
	}
	if _, err := ToFragment(m); err == nil {
		t.Fatalf("expected an error for an out-of-range index")
	}
}
