// Package fracture implements spec.md §4.7: the top-level coordinator
// that turns one input Fragment into N output Fragments, either by
// repeated random-plane bisection (simple mode) or by Voronoi cell
// clipping (voronoi mode), splitting disconnected geometry after every
// cut.
package fracture

import (
	"log"
	"time"

	"github.com/dgreenheck/three-pinata-sub000/components"
	"github.com/dgreenheck/three-pinata-sub000/fragment"
	"github.com/dgreenheck/three-pinata-sub000/geom"
	"github.com/dgreenheck/three-pinata-sub000/slicer"
	"github.com/dgreenheck/three-pinata-sub000/voronoi"
)

// Method selects the top-level fracture strategy.
type Method int

const (
	// Simple repeatedly bisects the FIFO queue's front fragment with a
	// random plane until FragmentCount is reached (spec.md §4.7).
	Simple Method = iota
	// Voronoi generates seeds and clips one cell per seed (spec.md §4.6).
	Voronoi
)

// VoronoiOptions configures Method=Voronoi.
type VoronoiOptions struct {
	Mode            voronoi.Mode
	ProjectionAxis  int
	ImpactPoint     geom.Vec3
	ImpactRadius    float64
	HasImpact       bool
	GrainDirection  geom.Vec3
	Anisotropy      float64
	HasGrain        bool
	SeedPoints      []geom.Vec3
}

// Options is the fracture coordinator's full option set, matching
// spec.md §4.7's option table.
type Options struct {
	Method Method

	FragmentCount int

	// Axes restricts the random plane normal's nonzero components in
	// Simple mode; an axis set to false is always zero. NewOptions enables
	// all three; in a zero-valued Options all three are false, and
	// randomPlane then falls back to the x axis.
	AxisX, AxisY, AxisZ bool

	Voronoi VoronoiOptions

	Seed int64

	// DetectIsolatedFragments is accepted for API compatibility with
	// spec.md's option table; the splitter always runs after every cut
	// regardless of its value (spec.md §9 design note).
	DetectIsolatedFragments bool

	MaxGeneration int

	SlicerOptions slicer.Options

	Verbose bool
}

// NewOptions returns an Options with all three axes enabled, unit slicer
// UV scale, and a generation ceiling of 1 (no refracture by default).
func NewOptions() Options {
	return Options{
		AxisX: true, AxisY: true, AxisZ: true,
		FragmentCount: 2,
		MaxGeneration: 1,
		SlicerOptions: slicer.DefaultOptions(),
	}
}

// Fracture splits f into up to opts.FragmentCount fragments per
// opts.Method. A fragment whose Generation already meets or exceeds
// opts.MaxGeneration is returned unchanged, in a single-element slice
// (spec.md §4.6 "Refracture").
func Fracture(f *fragment.Fragment, opts Options) []*fragment.Fragment {
	if f.Generation >= opts.MaxGeneration {
		if opts.Verbose {
			log.Printf("fracture: fragment at generation %d meets max %d, refusing", f.Generation, opts.MaxGeneration)
		}
		return []*fragment.Fragment{f}
	}

	var out []*fragment.Fragment
	switch opts.Method {
	case Voronoi:
		out = fractureVoronoi(f, opts)
	default:
		out = fractureSimple(f, opts)
	}

	for _, frag := range out {
		frag.Generation = f.Generation + 1
	}
	if opts.Verbose {
		log.Printf("fracture: produced %d fragments (method=%d)", len(out), opts.Method)
	}
	return out
}

// fractureSimple implements spec.md §4.7's "simple mode": a FIFO queue
// seeded with f, repeatedly bisecting the front fragment with a random
// unit normal restricted to the enabled axes until the queue reaches
// FragmentCount, running the splitter on every slice's output.
func fractureSimple(f *fragment.Fragment, opts Options) []*fragment.Fragment {
	r := randFor(opts)
	queue := []*fragment.Fragment{f}

	for len(queue) < opts.FragmentCount && len(queue) > 0 {
		front := queue[0]
		queue = queue[1:]

		plane := randomPlane(r, front, opts)
		top, bottom := slicer.Slice(front, plane, opts.SlicerOptions)

		for _, half := range []*fragment.Fragment{top, bottom} {
			if half.VertexCount() == 0 {
				continue
			}
			queue = append(queue, components.Split(half)...)
		}
	}
	return queue
}

// randomPlane draws a unit normal with zero components on disabled axes
// and origin at the fragment's centroid (spec.md §4.7).
func randomPlane(r *geom.Rand, f *fragment.Fragment, opts Options) geom.Plane {
	n := geom.Vec3{}
	if opts.AxisX {
		n.X = r.Range(-1, 1)
	}
	if opts.AxisY {
		n.Y = r.Range(-1, 1)
	}
	if opts.AxisZ {
		n.Z = r.Range(-1, 1)
	}
	if n.Norm() < geom.ZeroLengthEpsilon {
		n = geom.Vec3{X: 1}
	}
	return geom.Plane{Normal: n.Normalize(), Origin: f.Bounds.Center()}
}

// fractureVoronoi implements spec.md §4.7's "Voronoi mode": generate N
// seeds, clip one cell per seed, run the splitter on every cell, and
// concatenate. An empty cell silently reduces the effective fragment
// count; the coordinator never retries (spec.md §4.6).
func fractureVoronoi(f *fragment.Fragment, opts Options) []*fragment.Fragment {
	r := randFor(opts)
	seedOpts := voronoi.SeedOptions{
		Count:        opts.FragmentCount,
		Bounds:       f.Bounds,
		HasImpact:    opts.Voronoi.HasImpact,
		ImpactPoint:  opts.Voronoi.ImpactPoint,
		ImpactRadius: opts.Voronoi.ImpactRadius,
		HasGrain:     opts.Voronoi.HasGrain,
		GrainDir:     opts.Voronoi.GrainDirection,
		Anisotropy:   opts.Voronoi.Anisotropy,
		UserSeeds:    opts.Voronoi.SeedPoints,
		Rand:         r,
	}
	seeds := voronoi.GenerateSeeds(seedOpts)

	clipOpts := voronoi.ClipOptions{
		Mode:           opts.Voronoi.Mode,
		ProjectionAxis: opts.Voronoi.ProjectionAxis,
		HasGrain:       opts.Voronoi.HasGrain,
		GrainDir:       opts.Voronoi.GrainDirection,
		Anisotropy:     opts.Voronoi.Anisotropy,
		SlicerOptions:  opts.SlicerOptions,
	}
	cells := voronoi.Clip(f, seeds, clipOpts)

	var out []*fragment.Fragment
	for _, cell := range cells {
		out = append(out, components.Split(cell)...)
	}
	return out
}

// randFor builds the coordinator's RNG: a caller-supplied seed is
// deterministic and reproducible, an absent one (0) falls back to a
// time-derived seed per spec.md §4.7's option table ("seed; if absent,
// time-derived").
func randFor(opts Options) *geom.Rand {
	if opts.Seed != 0 {
		return geom.NewRand(opts.Seed)
	}
	return geom.NewRand(time.Now().UnixNano())
}
