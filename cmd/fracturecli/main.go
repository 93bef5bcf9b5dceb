// Command fracturecli is a thin demonstration harness for the fracture
// package, in the spirit of the teacher's examples/ directory: read a
// mesh description, fracture it, write one JSON file per output
// fragment. It is host/demo code, not a core concern — the core package
// has no file format or CLI of its own (spec.md §6).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"

	"github.com/dgreenheck/three-pinata-sub000/fracture"
	"github.com/dgreenheck/three-pinata-sub000/meshio"
)

func main() {
	inPath := flag.String("in", "", "input mesh JSON file (meshio.Mesh)")
	outDir := flag.String("out", ".", "directory to write fragment_N.json files")
	method := flag.String("method", "simple", "simple | voronoi")
	count := flag.Int("count", 2, "target fragment count")
	seed := flag.Int64("seed", 1, "RNG seed (0 is time-derived)")
	verbose := flag.Bool("v", false, "log progress")
	flag.Parse()

	if *inPath == "" {
		log.Fatal("fracturecli: -in is required")
	}

	m, err := loadMesh(*inPath)
	essentials.Must(err)

	f, err := meshio.ToFragment(m)
	essentials.Must(err)

	opts := fracture.NewOptions()
	opts.FragmentCount = *count
	opts.Seed = *seed
	opts.Verbose = *verbose
	if *method == "voronoi" {
		opts.Method = fracture.Voronoi
	}

	log.Printf("fracturing %d triangles into up to %d fragments (%s mode)...", f.TriangleCount(), opts.FragmentCount, *method)
	fragments := fracture.Fracture(f, opts)
	log.Printf("produced %d fragments", len(fragments))

	for i, frag := range fragments {
		out := meshio.FromFragment(frag)
		data, err := json.Marshal(out)
		essentials.Must(err)

		path := filepath.Join(*outDir, fmt.Sprintf("fragment_%d.json", i))
		essentials.Must(ioutil.WriteFile(path, data, 0644))
	}
}

func loadMesh(path string) (meshio.Mesh, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return meshio.Mesh{}, errors.Wrap(err, "read input mesh")
	}
	var m meshio.Mesh
	if err := json.Unmarshal(data, &m); err != nil {
		return meshio.Mesh{}, errors.Wrap(err, "parse input mesh JSON")
	}
	return m, nil
}
