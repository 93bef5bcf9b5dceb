// Package voronoi implements spec.md §4.5 (seed generation) and §4.6 (cell
// clipping): placing N seed points inside a fragment's bounding box and
// carving the fragment into the cells of their Voronoi diagram by
// iterated half-space slicing.
package voronoi

import "github.com/dgreenheck/three-pinata-sub000/geom"

// impactFraction is the policy share of seeds drawn from the
// impact-biased Gaussian when an impact point is supplied (spec.md §4.5,
// "policy: 70%").
const impactFraction = 0.70

// SeedOptions configures GenerateSeeds.
type SeedOptions struct {
	Count  int
	Bounds geom.Bounds

	HasImpact    bool
	ImpactPoint  geom.Vec3
	ImpactRadius float64

	HasGrain    bool
	GrainDir    geom.Vec3
	Anisotropy  float64
	UserSeeds   []geom.Vec3
	Rand        *geom.Rand
}

// GenerateSeeds returns exactly len(opts.UserSeeds) seeds if any were
// supplied (used verbatim, per spec.md §4.5 — padding or truncating to
// Count is the caller's concern, not this function's), otherwise exactly
// opts.Count seeds built from the impact-bias and uniform policies.
func GenerateSeeds(opts SeedOptions) []geom.Vec3 {
	if len(opts.UserSeeds) > 0 {
		return append([]geom.Vec3(nil), opts.UserSeeds...)
	}
	if opts.Count <= 0 {
		return nil
	}

	r := opts.Rand
	seeds := make([]geom.Vec3, opts.Count)

	numImpact := 0
	if opts.HasImpact {
		numImpact = int(float64(opts.Count)*impactFraction + 0.5)
	}

	for i := 0; i < opts.Count; i++ {
		if i < numImpact {
			seeds[i] = opts.Bounds.Clamp(impactSample(r, opts.ImpactPoint, opts.ImpactRadius))
		} else {
			seeds[i] = r.Vec3(opts.Bounds)
		}
	}
	return seeds
}

// impactSample draws one point from a 3D Gaussian of standard deviation
// r/2 centered at p (spec.md §4.5). Clamping to the fragment's AABB is
// the caller's responsibility (GenerateSeeds applies it uniformly to
// every impact-biased sample).
func impactSample(r *geom.Rand, p geom.Vec3, radius float64) geom.Vec3 {
	sigma := radius / 2
	return geom.Vec3{
		X: p.X + r.Gaussian()*sigma,
		Y: p.Y + r.Gaussian()*sigma,
		Z: p.Z + r.Gaussian()*sigma,
	}
}

// grainScale maps x into the stretched metric space used by the cell
// clipper's bisector planes (GenerateSeeds does not read the grain
// options): coordinates along dir are divided by anisotropy and coordinates
// perpendicular to it are left unchanged (spec.md §4.5 "grain direction").
func grainScale(x geom.Vec3, dir geom.Vec3, anisotropy float64) geom.Vec3 {
	if anisotropy == 0 {
		anisotropy = 1
	}
	along := x.Dot(dir)
	perp := x.Sub(dir.Scale(along))
	return perp.Add(dir.Scale(along / anisotropy))
}
