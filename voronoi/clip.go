package voronoi

import (
	"github.com/dgreenheck/three-pinata-sub000/fragment"
	"github.com/dgreenheck/three-pinata-sub000/geom"
	"github.com/dgreenheck/three-pinata-sub000/slicer"
	"github.com/unixpickle/splaytree"
)

// neighborCullK is the maximum number of nearest-neighbor seeds whose
// half-spaces are consulted when clipping one cell (spec.md §4.6, "policy
// K=24"); this is a performance cutoff, not a correctness requirement,
// since farther seeds' half-spaces are implied by closer ones.
const neighborCullK = 24

// Mode selects how the clipper builds half-space planes.
type Mode int

const (
	// Mode3D uses all three axes (spec.md §4.6 "3D").
	Mode3D Mode = iota
	// Mode25D creates prismatic cells by omitting clips perpendicular to
	// ProjectionAxis (spec.md §4.6 "2.5D", for sheet-like objects).
	Mode25D
)

// ClipOptions configures ClipCell.
type ClipOptions struct {
	Mode Mode
	// ProjectionAxis is 0, 1, or 2 (x, y, z), used only when Mode is
	// Mode25D.
	ProjectionAxis int

	HasGrain   bool
	GrainDir   geom.Vec3
	Anisotropy float64

	SlicerOptions slicer.Options
}

// ClipCell clips f to the Voronoi cell of seeds[i] by intersecting the
// half-spaces H_ij = {x : d(x,s_i) <= d(x,s_j)} for the nearest
// neighborCullK other seeds, implemented by slicing once per neighbor and
// retaining only the s_i side each time (spec.md §4.6). Returns an empty
// fragment if the cell is clipped away entirely.
func ClipCell(f *fragment.Fragment, seeds []geom.Vec3, i int, opts ClipOptions) *fragment.Fragment {
	current := f
	for _, j := range nearestNeighbors(seeds, i, neighborCullK) {
		if current.VertexCount() == 0 {
			break
		}
		plane := bisectorPlane(seeds[i], seeds[j], opts)
		if opts.Mode == Mode25D {
			plane = dropProjectionAxis(plane, opts.ProjectionAxis)
		}
		top, _ := slicer.Slice(current, plane, opts.SlicerOptions)
		current = top
	}
	return current
}

// bisectorPlane returns the plane H_ij whose positive side is the s_i
// side: normal (s_i - s_j) (grain-scaled in anisotropic mode, then mapped
// back to world space) and origin (s_i+s_j)/2.
func bisectorPlane(si, sj geom.Vec3, opts ClipOptions) geom.Plane {
	normal := si.Sub(sj)
	if opts.HasGrain {
		// The metric used to compare distances stretches the grain axis
		// by Anisotropy; the bisector of two points under a diagonally
		// scaled metric is the bisector of their scaled images mapped
		// back through the same diagonal scale, so reusing grainScale
		// on the normal (documented simplification, spec.md §9 open
		// question on anisotropic cell shape) reproduces the elongated
		// cells described in spec.md §4.5 without deriving a separate
		// transform.
		dir := opts.GrainDir.Normalize()
		normal = grainScale(normal, dir, opts.Anisotropy)
	}
	return geom.Plane{Normal: normal, Origin: si.Add(sj).Scale(0.5)}
}

// dropProjectionAxis zeroes the plane normal's component along
// projectionAxis, turning a 3D bisector plane into a prismatic one that
// never clips along the sheet's thickness direction.
func dropProjectionAxis(p geom.Plane, axis int) geom.Plane {
	n := p.Normal
	switch axis {
	case 0:
		n.X = 0
	case 1:
		n.Y = 0
	case 2:
		n.Z = 0
	}
	return geom.Plane{Normal: n, Origin: p.Origin}
}

// neighborNode is a splaytree element ordered by increasing squared
// distance (so the tree's Max is the farthest candidate), with seed index
// as a tiebreaker so two equidistant
// seeds still compare consistently.
type neighborNode struct {
	dist float64
	idx  int
}

func (n *neighborNode) Compare(other *neighborNode) int {
	if n.dist < other.dist {
		return -1
	} else if n.dist > other.dist {
		return 1
	} else if n.idx < other.idx {
		return -1
	} else if n.idx > other.idx {
		return 1
	}
	return 0
}

// nearestNeighbors returns the indices of the up-to-k seeds closest to
// seeds[i] (excluding i itself), sorted by increasing distance. It keeps a
// splaytree bounded to size k, evicting the current farthest candidate
// (the tree's Max) whenever a closer one arrives, mirroring the teacher's
// splaytree-backed priority queue in nextMeshDiscs
// (model3d/parameterization.go) rather than sorting the full seed list.
func nearestNeighbors(seeds []geom.Vec3, i, k int) []int {
	tree := &splaytree.Tree[*neighborNode]{}
	size := 0
	for j := range seeds {
		if j == i {
			continue
		}
		d := seeds[j].Sub(seeds[i]).Dot(seeds[j].Sub(seeds[i]))
		node := &neighborNode{dist: d, idx: j}
		tree.Insert(node)
		size++
		if size > k {
			tree.Delete(tree.Max())
			size--
		}
	}

	out := make([]int, size)
	for idx := size - 1; idx >= 0; idx-- {
		m := tree.Max()
		tree.Delete(m)
		out[idx] = m.idx
	}
	return out
}

// Clip carves f into one fragment per non-empty cell of seeds' Voronoi
// diagram (spec.md §4.6's top-level contract, used directly by the
// fracture coordinator's Voronoi mode).
func Clip(f *fragment.Fragment, seeds []geom.Vec3, opts ClipOptions) []*fragment.Fragment {
	out := make([]*fragment.Fragment, 0, len(seeds))
	for i := range seeds {
		cell := ClipCell(f, seeds, i, opts)
		if cell.VertexCount() == 0 || cell.TriangleCount() == 0 {
			continue
		}
		out = append(out, cell)
	}
	return out
}
