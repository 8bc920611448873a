package config

import (
	"os"
	"path/filepath"
	"testing"

	"wireframe-renderer/internal/geometry"
	"wireframe-renderer/internal/model"
)

func TestLoadAndResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"cache_dir": "/tmp/cache", "text_path": "m.txt", "render_size": 512, "angle_y": 0, "rotation": "corrected", "policy": "skip"}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Resolve(Flags{Supersample: 3, Format: "png"})

	if cfg.RenderSize != 512 || cfg.Supersample != 3 || cfg.Format != "png" {
		t.Errorf("render settings = %d/%d/%s", cfg.RenderSize, cfg.Supersample, cfg.Format)
	}
	if cfg.TextPath != filepath.Join("/tmp/cache", "m.txt") {
		t.Errorf("TextPath = %q", cfg.TextPath)
	}
	if cfg.ArchivePath != filepath.Join("/tmp/cache", "model.gz") {
		t.Errorf("ArchivePath = %q", cfg.ArchivePath)
	}
	if cfg.URL != DefaultURL || cfg.Workers <= 0 {
		t.Errorf("defaults not applied: %+v", cfg)
	}

	pc, err := cfg.Pipeline()
	if err != nil {
		t.Fatalf("Pipeline: %v", err)
	}
	if pc.AngleX != 15 || pc.AngleY != 0 || pc.Scale != 5 || pc.Offset != 2 {
		t.Errorf("pipeline config = %+v", pc)
	}
	if pc.Rotation != geometry.RotationCorrected || pc.Policy != model.SkipInvalid {
		t.Errorf("modes = %v/%v", pc.Rotation, pc.Policy)
	}
}

func TestLoadCameraZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"elevation": 0, "azimuth": 0}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Elevation == nil || *cfg.Elevation != 0 || cfg.Azimuth == nil || *cfg.Azimuth != 0 {
		t.Errorf("camera = %v/%v, want explicit 0/0", cfg.Elevation, cfg.Azimuth)
	}

	var unset Config
	unset.Resolve(Flags{})
	if unset.Elevation != nil || unset.Azimuth != nil {
		t.Errorf("unset camera resolved to %v/%v, want nil", unset.Elevation, unset.Azimuth)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	cfg := Config{RenderSize: 256, Rotation: "corrected", Workers: 2}
	cfg.Resolve(Flags{Size: 128, Rotation: "literal", Workers: 8, Label: true})

	if cfg.RenderSize != 128 || cfg.Rotation != "literal" || cfg.Workers != 8 || !cfg.Label {
		t.Errorf("flags did not override: %+v", cfg)
	}
}

func TestPipelineRejectsUnknownModes(t *testing.T) {
	for _, cfg := range []Config{{Rotation: "euler"}, {Policy: "ignore"}} {
		if _, err := cfg.Pipeline(); err == nil {
			t.Errorf("Pipeline(%+v): want error", cfg)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file: want error")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("bad json: want error")
	}
}
