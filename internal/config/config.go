package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"wireframe-renderer/internal/export"
	"wireframe-renderer/internal/geometry"
	"wireframe-renderer/internal/model"
	"wireframe-renderer/internal/pipeline"
)

// DefaultURL serves the reference model archive.
const DefaultURL = "http://2014.fallchallenge.org/"

// Config holds all configurable paths and render settings.
type Config struct {
	// Acquisition, used when no model files are given
	URL         string `json:"url"`
	CacheDir    string `json:"cache_dir"`
	ArchivePath string `json:"archive_path"`
	TextPath    string `json:"text_path"`

	OutputDir string `json:"output_dir"`

	// Render settings
	Format      string `json:"format"`
	RenderSize  int    `json:"render_size"`
	Supersample int    `json:"supersample"`
	Label       bool   `json:"label"`
	Workers     int    `json:"workers"`

	// 3D view camera in degrees; nil means default
	Elevation *float64 `json:"elevation"`
	Azimuth   *float64 `json:"azimuth"`

	// Geometry; nil means default
	AngleX   *float64 `json:"angle_x"`
	AngleY   *float64 `json:"angle_y"`
	Scale    *float64 `json:"scale"`
	Offset   *float64 `json:"offset"`
	Rotation string   `json:"rotation"` // "literal" or "corrected"
	Policy   string   `json:"policy"`   // "fail" or "skip"
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	URL         string
	OutputDir   string
	Format      string
	Size        int
	Supersample int
	Workers     int
	Rotation    string
	Policy      string
	Label       bool
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.URL != "" {
		c.URL = flags.URL
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Rotation != "" {
		c.Rotation = flags.Rotation
	}
	if flags.Policy != "" {
		c.Policy = flags.Policy
	}
	if flags.Label {
		c.Label = true
	}

	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.CacheDir == "" {
		c.CacheDir = "."
	}
	if c.ArchivePath == "" {
		c.ArchivePath = filepath.Join(c.CacheDir, "model.gz")
	} else if !filepath.IsAbs(c.ArchivePath) {
		c.ArchivePath = filepath.Join(c.CacheDir, c.ArchivePath)
	}
	if c.TextPath == "" {
		c.TextPath = filepath.Join(c.CacheDir, "model.ssv")
	} else if !filepath.IsAbs(c.TextPath) {
		c.TextPath = filepath.Join(c.CacheDir, c.TextPath)
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}

	// Defaults for render settings
	if c.Format == "" {
		c.Format = string(export.WebP)
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 1024
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Pipeline converts the geometry settings, rejecting unknown mode names.
func (c *Config) Pipeline() (pipeline.Config, error) {
	pc := pipeline.DefaultConfig()
	if c.AngleX != nil {
		pc.AngleX = *c.AngleX
	}
	if c.AngleY != nil {
		pc.AngleY = *c.AngleY
	}
	if c.Scale != nil {
		pc.Scale = *c.Scale
	}
	if c.Offset != nil {
		pc.Offset = *c.Offset
	}

	mode, err := geometry.ParseRotationMode(c.Rotation)
	if err != nil {
		return pc, fmt.Errorf("config: %w", err)
	}
	pc.Rotation = mode

	policy, ok := model.ParsePolicy(c.Policy)
	if !ok {
		return pc, fmt.Errorf("config: unknown policy %q", c.Policy)
	}
	pc.Policy = policy

	return pc, nil
}
