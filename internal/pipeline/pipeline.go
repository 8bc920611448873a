package pipeline

import (
	"fmt"
	"io"
	"math"
	"strings"

	"wireframe-renderer/internal/geometry"
	"wireframe-renderer/internal/model"
)

// Config holds the camera orientation and projection parameters.
type Config struct {
	AngleX   float64 // degrees, applied first
	AngleY   float64 // degrees, applied second
	Scale    float64
	Offset   float64
	Rotation geometry.RotationMode
	Policy   model.Policy
}

// Defaults give a 15° tilt and a -30° turn.
const (
	DefaultAngleX = 15.0
	DefaultAngleY = -30.0
)

// DefaultConfig reproduces the reference renders.
func DefaultConfig() Config {
	return Config{
		AngleX:   DefaultAngleX,
		AngleY:   DefaultAngleY,
		Scale:    geometry.DefaultScale,
		Offset:   geometry.DefaultOffset,
		Rotation: geometry.RotationLiteral,
		Policy:   model.FailFast,
	}
}

func (c Config) validate() error {
	for name, v := range map[string]float64{
		"angle_x": c.AngleX,
		"angle_y": c.AngleY,
		"scale":   c.Scale,
		"offset":  c.Offset,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("pipeline: %s must be finite, got %g", name, v)
		}
	}
	if !c.Rotation.Valid() {
		return fmt.Errorf("pipeline: unknown rotation mode %v", c.Rotation)
	}
	if c.Policy != model.FailFast && c.Policy != model.SkipInvalid {
		return fmt.Errorf("pipeline: unknown error policy %v", c.Policy)
	}
	return nil
}

// Result holds everything derived from one model. All slices are fresh;
// Model.Points is never modified.
type Result struct {
	Model     *model.Model
	Faces     []model.Face // faces that passed index validation
	Rotated   []model.Point3D
	Projected []model.Point2D // same length and order as Rotated
	Edges3D   []model.Edge
	Edges2D   []model.Edge
	Warnings  []error // only populated under model.SkipInvalid
}

// Run parses text and derives both views.
func Run(text string, cfg Config) (*Result, error) {
	return RunReader(strings.NewReader(text), cfg)
}

// RunReader is Run over a stream.
func RunReader(r io.Reader, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	m, warnings, err := model.ParseWithPolicy(r, cfg.Policy)
	if err != nil {
		return nil, fmt.Errorf("pipeline: parse: %w", err)
	}
	res := &Result{Model: m, Warnings: warnings}

	res.Rotated = geometry.RotateAll(m.Points, cfg.AngleX, cfg.AngleY, cfg.Rotation)

	projected, singular := geometry.ProjectAll(res.Rotated, cfg.Scale, cfg.Offset)
	if len(singular) > 0 {
		if cfg.Policy == model.FailFast {
			return nil, fmt.Errorf("pipeline: project: %w", singular[0])
		}
		res.Warnings = append(res.Warnings, singular...)
	}
	res.Projected = projected

	res.Faces, err = validFaces(m.Faces, len(m.Points), cfg.Policy, &res.Warnings)
	if err != nil {
		return nil, fmt.Errorf("pipeline: faces: %w", err)
	}

	if res.Edges3D, err = geometry.ExtractEdges(res.Faces, len(res.Rotated)); err != nil {
		return nil, fmt.Errorf("pipeline: 3d edges: %w", err)
	}
	if res.Edges2D, err = geometry.ExtractEdges(res.Faces, len(res.Projected)); err != nil {
		return nil, fmt.Errorf("pipeline: 2d edges: %w", err)
	}

	return res, nil
}

func validFaces(faces []model.Face, n int, policy model.Policy, warnings *[]error) ([]model.Face, error) {
	out := make([]model.Face, 0, len(faces))
	for i, f := range faces {
		if _, err := geometry.FaceEdges(f, n); err != nil {
			err.(*geometry.IndexError).Face = i
			if policy == model.FailFast {
				return nil, err
			}
			*warnings = append(*warnings, err)
			continue
		}
		out = append(out, f)
	}
	return out, nil
}
