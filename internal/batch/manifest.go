package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one model in the output manifest.
type ManifestEntry struct {
	Name     string   `json:"name"`
	Source   string   `json:"source,omitempty"`
	Points   int      `json:"points"`
	Faces    int      `json:"faces"`
	Images   []string `json:"images,omitempty"`
	Warnings int      `json:"warnings,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// WriteManifest writes manifest.json. Image paths are made relative to
// the manifest's directory when possible.
func WriteManifest(path string, results []Result) error {
	base := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		e := ManifestEntry{
			Name:     r.Name,
			Source:   r.Source,
			Points:   r.Points,
			Faces:    r.Faces,
			Warnings: len(r.Warnings),
			Error:    r.Error,
		}
		for _, img := range r.Images {
			if rel, err := filepath.Rel(base, img); err == nil {
				img = rel
			}
			e.Images = append(e.Images, filepath.ToSlash(img))
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
