package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wireframe-renderer/internal/batch"
	"wireframe-renderer/internal/config"
	"wireframe-renderer/internal/export"
	"wireframe-renderer/internal/raster"
	"wireframe-renderer/internal/source"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	url := flag.String("url", "", "Archive URL used when no model files are given")
	outputDir := flag.String("output", "", "Output directory (default: .)")
	format := flag.String("format", "", "Image format: webp, png or tga (default: webp)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 1024)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	rotation := flag.String("rotation", "", "Rotation mode: literal or corrected (default: literal)")
	policy := flag.String("policy", "", "Invalid record policy: fail or skip (default: fail)")
	label := flag.Bool("label", false, "Draw a caption on each image")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [model files...]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		URL:         *url,
		OutputDir:   *outputDir,
		Format:      *format,
		Size:        *size,
		Supersample: *supersample,
		Workers:     *workers,
		Rotation:    *rotation,
		Policy:      *policy,
		Label:       *label,
	})

	pcfg, err := cfg.Pipeline()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	fmtOut, err := export.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Model files from args, or the configured source
	var jobs []batch.Job
	for _, path := range flag.Args() {
		jobs = append(jobs, batch.JobFromPath(path))
	}
	if len(jobs) == 0 {
		text, err := source.Acquire(source.Options{
			URL:         cfg.URL,
			ArchivePath: cfg.ArchivePath,
			TextPath:    cfg.TextPath,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error acquiring model: %v\n", err)
			os.Exit(1)
		}
		jobs = append(jobs, batch.Job{Name: batch.JobFromPath(cfg.TextPath).Name, Path: cfg.TextPath, Text: text})
	}

	fmt.Printf("Wireframe renderer → %s\n", fmtOut)
	fmt.Printf("Models: %d, Workers: %d, Rotation: %s, Policy: %s\n", len(jobs), cfg.Workers, pcfg.Rotation, pcfg.Policy)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		Pipeline: pcfg,
		Render: raster.Options{
			OutputDir:   cfg.OutputDir,
			Format:      fmtOut,
			Size:        cfg.RenderSize,
			Supersample: cfg.Supersample,
			Label:       cfg.Label,
			Elevation:   cfg.Elevation,
			Azimuth:     cfg.Azimuth,
		},
		Workers: cfg.Workers,
	}, jobs)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	failed := batch.Summarize(results, 20)

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
