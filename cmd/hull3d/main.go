package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/hullgraph/hull3d/dcel"
	"github.com/hullgraph/hull3d/delaunay"
	"github.com/hullgraph/hull3d/generate"
	"github.com/hullgraph/hull3d/hull"
	"github.com/hullgraph/hull3d/point"
	"github.com/hullgraph/hull3d/voronoi"
	"github.com/hullgraph/hull3d/wktpoints"
)

func main() {
	seed := flag.Int64("seed", 0, "seed (0 will cause the current unix nano epoch to be used)")
	count := flag.Int("count", 20, "number of points to generate when -in is not given (delaunay and voronoi round it up to a square grid)")
	in := flag.String("in", "", "path to a wktpoints-encoded point set (MULTIPOINT WKT); random points are generated if empty")
	summary := flag.Bool("summary", false, "print vertex/edge/face counts instead of the wktpoints-encoded result")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: hull3d [flags] hull|delaunay|voronoi")
		os.Exit(2)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	slog.Info("starting", "subcommand", flag.Arg(0), "seed", *seed)
	rnd := rand.New(rand.NewSource(*seed))

	switch flag.Arg(0) {
	case "hull":
		runHull(rnd, *in, *count, *summary)
	case "delaunay":
		runDelaunay(rnd, *in, *count, *summary)
	case "voronoi":
		runVoronoi(rnd, *in, *count, *summary)
	default:
		slog.Error("unknown subcommand", "subcommand", flag.Arg(0))
		os.Exit(2)
	}
}

func readOrGenerate3D(rnd *rand.Rand, in string, count int) []point.Vec[float64] {
	if in == "" {
		return generate.RandomPoints3D(rnd, count, generate.Box{
			Min: point.Vec[float64]{X: -10, Y: -10, Z: -10},
			Max: point.Vec[float64]{X: 10, Y: 10, Z: 10},
		})
	}
	data, err := os.ReadFile(in)
	if err != nil {
		slog.Error("reading input", "path", in, "err", err)
		os.Exit(1)
	}
	pts, _, err := wktpoints.Parse(string(data))
	if err != nil {
		slog.Error("parsing input", "path", in, "err", err)
		os.Exit(1)
	}
	return pts
}

func readOrGenerate2D(in string, count int) []point.XY {
	if in == "" {
		grid := 1
		for grid*grid < count {
			grid++
		}
		return generate.RandomGrid2D(grid, grid)
	}
	data, err := os.ReadFile(in)
	if err != nil {
		slog.Error("reading input", "path", in, "err", err)
		os.Exit(1)
	}
	pts, err := wktpoints.ParseXY(string(data))
	if err != nil {
		slog.Error("parsing input", "path", in, "err", err)
		os.Exit(1)
	}
	return pts
}

func runHull(rnd *rand.Rand, in string, count int, summary bool) {
	pts := readOrGenerate3D(rnd, in, count)
	m, peak := hull.ComputeConvexHull3D[float64, point.Vec[float64]](pts, hull.WithRand[float64](rnd))
	if peak == dcel.NilVertex {
		slog.Error("hull requires at least 3 non-collinear points")
		os.Exit(1)
	}
	if summary {
		edges := m.ExploreGraph(peak)
		verts := map[dcel.VertexID]bool{}
		for _, e := range edges {
			verts[m.EdgeOrigin(e)] = true
		}
		fmt.Printf("vertices=%d edges=%d\n", len(verts), len(edges)/2)
		return
	}
	var hullPts []point.Vec[float64]
	seen := map[dcel.VertexID]bool{}
	for _, e := range m.ExploreGraph(peak) {
		v := m.EdgeOrigin(e)
		if !seen[v] {
			seen[v] = true
			hullPts = append(hullPts, m.VertexData(v))
		}
	}
	fmt.Println(wktpoints.Format(hullPts, true))
}

func runDelaunay(rnd *rand.Rand, in string, count int, summary bool) {
	pts := readOrGenerate2D(in, count)
	m, outerFace := delaunay.Triangulate(pts, hull.WithRand[float64](rnd))
	if outerFace == dcel.NilFace {
		slog.Error("delaunay triangulation requires at least 3 non-collinear points")
		os.Exit(1)
	}
	origin := m.EdgeOrigin(m.FaceOuterComponent(outerFace))
	edges := m.ExploreGraph(origin)
	if summary {
		faces := map[dcel.FaceID]bool{}
		for _, e := range edges {
			faces[m.EdgeFace(e)] = true
		}
		fmt.Printf("vertices=%d edges=%d faces=%d\n", len(pts), len(edges)/2, len(faces))
		return
	}
	var triPts []point.Vec[float64]
	seen := map[dcel.VertexID]bool{}
	for _, e := range edges {
		v := m.EdgeOrigin(e)
		if !seen[v] {
			seen[v] = true
			triPts = append(triPts, m.VertexData(v).Vec)
		}
	}
	fmt.Println(wktpoints.Format(triPts, true))
}

func runVoronoi(rnd *rand.Rand, in string, count int, summary bool) {
	pts := readOrGenerate2D(in, count)
	diagram := voronoi.ComputeVoronoiDiagram(pts)
	if summary {
		fmt.Printf("vertices=%d edges=%d\n", len(diagram.Vertices), len(diagram.Edges))
		return
	}
	var out []point.Vec[float64]
	for _, v := range diagram.Vertices {
		out = append(out, point.Vec[float64]{X: v.X, Y: v.Y})
	}
	fmt.Println(wktpoints.Format(out, false))
}
