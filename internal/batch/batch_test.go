package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"wireframe-renderer/internal/export"
	"wireframe-renderer/internal/pipeline"
	"wireframe-renderer/internal/raster"
)

const triangle = "point 0 0 0\npoint 1 0 0\npoint 0 1 0\nface 0 1 2\n"

func TestJobFromPath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"/data/bunny.ssv", "bunny"},
		{"model.ssv.gz", "model"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := JobFromPath(tt.in).Name; got != tt.want {
			t.Errorf("JobFromPath(%q).Name = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "tri.ssv")
	if err := os.WriteFile(good, []byte(triangle), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Config{
		Pipeline: pipeline.DefaultConfig(),
		Render:   raster.Options{OutputDir: filepath.Join(dir, "out"), Size: 32, Format: export.PNG},
		Workers:  2,
	}
	jobs := []Job{
		JobFromPath(good),
		{Name: "inline", Text: []byte(triangle)},
		{Name: "broken", Text: []byte("point 0 0 0\nface 0 1 2\n")},
		JobFromPath(filepath.Join(dir, "missing.ssv")),
	}

	results := Run(cfg, jobs)
	if len(results) != len(jobs) {
		t.Fatalf("len(results) = %d", len(results))
	}

	for i, want := range []bool{true, true, false, false} {
		if results[i].Success != want {
			t.Errorf("job %s success = %v, want %v (%s)", jobs[i].Name, results[i].Success, want, results[i].Error)
		}
	}
	if results[0].Points != 3 || results[0].Faces != 1 || len(results[0].Images) != 2 {
		t.Errorf("result[0] = %+v", results[0])
	}
	for _, img := range results[1].Images {
		if _, err := os.Stat(img); err != nil {
			t.Errorf("image %s: %v", img, err)
		}
	}

	if n := Summarize(results, 20); n != 2 {
		t.Errorf("Summarize = %d, want 2", n)
	}

	manifest := filepath.Join(cfg.Render.OutputDir, "manifest.json")
	if err := WriteManifest(manifest, results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("manifest json: %v", err)
	}
	if len(entries) != 4 || entries[0].Images[0] != "tri-3d.png" || entries[2].Error == "" {
		t.Errorf("manifest = %+v", entries)
	}
}
