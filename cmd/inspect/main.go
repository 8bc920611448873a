package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"wireframe-renderer/internal/geometry"
	"wireframe-renderer/internal/model"
	"wireframe-renderer/internal/pipeline"
	"wireframe-renderer/internal/source"
)

// inspect prints model statistics and the first few transformed points.
func main() {
	n := flag.Int("n", 5, "Number of points to print")
	rotation := flag.String("rotation", "literal", "Rotation mode: literal or corrected")
	dump := flag.Bool("dump", false, "Re-serialize the parsed model to stdout")
	edges := flag.Int("edges", 0, "Number of rotated edge segments to print")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: inspect [flags] <model file>")
		os.Exit(2)
	}

	text, err := source.Load(flag.Arg(0))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cfg := pipeline.DefaultConfig()
	cfg.Policy = model.SkipInvalid
	if cfg.Rotation, err = geometry.ParseRotationMode(*rotation); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}

	res, err := pipeline.Run(string(text), cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if *dump {
		if _, err := res.Model.WriteTo(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Model: %s\n", res.Model.Summary())
	fmt.Printf("Valid faces: %d, edges: %d\n", len(res.Faces), len(res.Edges3D))
	for _, w := range res.Warnings {
		fmt.Printf("  warning: %v\n", w)
	}

	minX, minY, minZ := math.Inf(1), math.Inf(1), math.Inf(1)
	maxX, maxY, maxZ := math.Inf(-1), math.Inf(-1), math.Inf(-1)
	for _, p := range res.Model.Points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		minZ, maxZ = math.Min(minZ, p.Z), math.Max(maxZ, p.Z)
	}
	if len(res.Model.Points) > 0 {
		fmt.Printf("BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n", minX, maxX, minY, maxY, minZ, maxZ)
	}

	fmt.Printf("Rotation: %s (X=%g°, Y=%g)\n", cfg.Rotation, cfg.AngleX, cfg.AngleY)
	for i := 0; i < *n && i < len(res.Rotated); i++ {
		p, r, q := res.Model.Points[i], res.Rotated[i], res.Projected[i]
		fmt.Printf("  [%d] (%g, %g, %g) -> (%.17g, %.17g, %.17g) -> (%.17g, %.17g)\n",
			i, p.X, p.Y, p.Z, r.X, r.Y, r.Z, q.X, q.Y)
	}

	for i, s := range geometry.Segments3D(res.Edges3D, res.Rotated) {
		if i >= *edges {
			break
		}
		fmt.Printf("  edge %v: (%.6g, %.6g, %.6g) - (%.6g, %.6g, %.6g)\n",
			res.Edges3D[i], s.From.X, s.From.Y, s.From.Z, s.To.X, s.To.Y, s.To.Z)
	}
}
