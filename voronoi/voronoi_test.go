package voronoi

import (
	"math"
	"testing"

	"github.com/dgreenheck/three-pinata-sub000/fragment"
	"github.com/dgreenheck/three-pinata-sub000/geom"
)

func TestGenerateSeedsUserSuppliedVerbatim(t *testing.T) {
	user := []geom.Vec3{{X: 1}, {X: 2}, {X: 3}}
	seeds := GenerateSeeds(SeedOptions{Count: 10, UserSeeds: user})
	if len(seeds) != len(user) {
		t.Fatalf("expected user seeds to be used verbatim, got %d seeds for %d supplied", len(seeds), len(user))
	}
}

func TestGenerateSeedsDeterministic(t *testing.T) {
	bounds := geom.Bounds{Min: geom.Vec3{}, Max: geom.Vec3{X: 1, Y: 1, Z: 1}}
	opts := SeedOptions{Count: 12, Bounds: bounds, Rand: geom.NewRand(7)}
	a := GenerateSeeds(opts)

	opts2 := SeedOptions{Count: 12, Bounds: bounds, Rand: geom.NewRand(7)}
	b := GenerateSeeds(opts2)

	if len(a) != len(b) {
		t.Fatalf("expected equal-length seed lists, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seed %d differs between identically-seeded runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateSeedsWithinBounds(t *testing.T) {
	bounds := geom.Bounds{Min: geom.Vec3{X: -1, Y: -1, Z: -1}, Max: geom.Vec3{X: 1, Y: 1, Z: 1}}
	opts := SeedOptions{
		Count: 50, Bounds: bounds, Rand: geom.NewRand(3),
		HasImpact: true, ImpactPoint: geom.Vec3{}, ImpactRadius: 0.5,
	}
	seeds := GenerateSeeds(opts)
	for i, s := range seeds {
		if !bounds.Contains(s) {
			t.Fatalf("seed %d at %+v lies outside bounds %+v", i, s, bounds)
		}
	}
}

func unitCubeFragment() *fragment.Fragment {
	f := fragment.New()
	positions := []geom.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	for i, p := range positions {
		f.AddMappedVertex(i, fragment.MeshVertex{Position: p, Normal: geom.Vec3{Z: -1}})
	}
	faces := [][4]int{
		{0, 1, 2, 3}, {4, 5, 6, 7}, {0, 1, 5, 4},
		{1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
	}
	for _, q := range faces {
		f.AddMappedTriangle(q[0], q[1], q[2], fragment.Default)
		f.AddMappedTriangle(q[0], q[2], q[3], fragment.Default)
	}
	f.CalculateBounds()
	return f
}

// thinPane builds a sheet-like fragment spanning X in [0,2], Y in [0,2],
// Z in [0,0.1], for exercising 2.5D clipping (spec.md §8 scenario 6).
func thinPane() *fragment.Fragment {
	f := fragment.New()
	positions := []geom.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 2, Y: 2, Z: 0}, {X: 0, Y: 2, Z: 0},
		{X: 0, Y: 0, Z: 0.1}, {X: 2, Y: 0, Z: 0.1}, {X: 2, Y: 2, Z: 0.1}, {X: 0, Y: 2, Z: 0.1},
	}
	for i, p := range positions {
		f.AddMappedVertex(i, fragment.MeshVertex{Position: p, Normal: geom.Vec3{Z: -1}})
	}
	faces := [][4]int{
		{0, 1, 2, 3}, {4, 5, 6, 7}, {0, 1, 5, 4},
		{1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
	}
	for _, q := range faces {
		f.AddMappedTriangle(q[0], q[1], q[2], fragment.Default)
		f.AddMappedTriangle(q[0], q[2], q[3], fragment.Default)
	}
	f.CalculateBounds()
	return f
}

// TestClip25DPreservesProjectionAxisSpan covers part of spec.md §8 scenario
// 6: in Mode25D with ProjectionAxis=z, clipping never clips along z, so
// every non-empty cell still spans the pane's full thickness.
func TestClip25DPreservesProjectionAxisSpan(t *testing.T) {
	f := thinPane()
	seeds := []geom.Vec3{
		{X: 0.5, Y: 0.5, Z: 0.05}, {X: 1.5, Y: 0.5, Z: 0.05},
		{X: 0.5, Y: 1.5, Z: 0.05}, {X: 1.5, Y: 1.5, Z: 0.05},
	}
	cells := Clip(f, seeds, ClipOptions{Mode: Mode25D, ProjectionAxis: 2})

	for i, cell := range cells {
		minZ, maxZ := math.Inf(1), math.Inf(-1)
		for _, v := range cell.Vertices {
			minZ = math.Min(minZ, v.Position.Z)
			maxZ = math.Max(maxZ, v.Position.Z)
		}
		if maxZ-minZ < 0.1-1e-9 {
			t.Fatalf("cell %d does not span the full pane thickness: z range [%v,%v]", i, minZ, maxZ)
		}
	}
}

func TestClipCubeIntoFourCellsStaysWithinBounds(t *testing.T) {
	f := unitCubeFragment()
	seeds := []geom.Vec3{
		{X: 0.25, Y: 0.25, Z: 0.25},
		{X: 0.75, Y: 0.25, Z: 0.25},
		{X: 0.25, Y: 0.75, Z: 0.75},
		{X: 0.75, Y: 0.75, Z: 0.75},
	}
	cells := Clip(f, seeds, ClipOptions{Mode: Mode3D})
	if len(cells) == 0 {
		t.Fatalf("expected at least one non-empty cell")
	}
	for _, cell := range cells {
		for _, v := range cell.Vertices {
			if !f.Bounds.Contains(v.Position) {
				t.Fatalf("cell vertex %+v escaped source bounds %+v", v.Position, f.Bounds)
			}
		}
	}
}
