package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one scene in the output manifest.
type ManifestEntry struct {
	Name       string  `json:"name"`
	Image      string  `json:"image,omitempty"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Triangles  int     `json:"triangles"`
	Degenerate int     `json:"degenerate"`
	Written    int     `json:"pixels_written"`
	Occluded   int     `json:"pixels_occluded"`
	Seconds    float64 `json:"seconds"`
	Error      string  `json:"error,omitempty"`
}

// WriteManifest writes a JSON summary of results to path.
// Failed scenes are listed with their error and no image.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		e := ManifestEntry{
			Name:       r.Name,
			Width:      r.Width,
			Height:     r.Height,
			Triangles:  r.Stats.Triangles,
			Degenerate: r.Stats.Degenerate,
			Written:    r.Stats.Written,
			Occluded:   r.Stats.Occluded,
			Seconds:    r.Elapsed.Seconds(),
			Error:      r.Error,
		}
		if r.Success {
			e.Image = r.Output
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write manifest %s: %w", path, err)
	}
	return nil
}
