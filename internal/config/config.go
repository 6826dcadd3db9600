package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"obj-bmp-renderer/internal/mathutil"
	"obj-bmp-renderer/internal/mesh"
	"obj-bmp-renderer/internal/raster"
	"obj-bmp-renderer/internal/shade"
)

// Defaults applied by Resolve.
const (
	DefaultWidth  = 700
	DefaultHeight = 700
	DefaultOutput = "out.bmp"
)

// Config holds every scene to render plus shared settings.
type Config struct {
	// Paths
	BaseDir   string `json:"base_dir"`   // relative mesh paths resolve here
	OutputDir string `json:"output_dir"` // relative outputs resolve here

	Workers int     `json:"workers"`
	Scenes  []Scene `json:"scenes"`
}

// Scene is one render: a surface, the meshes drawn into it and the output file.
type Scene struct {
	Name       string           `json:"name"`
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Background [3]float64       `json:"background"` // 0-1 channels
	Viewport   *raster.Viewport `json:"viewport,omitempty"`
	Output     string           `json:"output"`
	Meshes     []MeshSpec       `json:"meshes"`
}

// MeshSpec places one OBJ file in a scene. Translate and Scale take two or
// three components; a missing z translates by 0 and scales by 1.
type MeshSpec struct {
	Path      string     `json:"path"`
	Translate []float64  `json:"translate"`
	Scale     []float64  `json:"scale"`
	Shader    shade.Spec `json:"shader"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values; BaseDir defaults to
// the directory holding the file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	} else if !filepath.IsAbs(cfg.BaseDir) {
		cfg.BaseDir = filepath.Join(filepath.Dir(path), cfg.BaseDir)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// When Mesh is set the config's scenes are replaced by a single scene
// built from the flags.
type Flags struct {
	Mesh      string
	Output    string
	OutputDir string
	Width     int
	Height    int
	Shader    string
	Translate string // "x,y[,z]"
	Scale     string // "x,y[,z]"
	Workers   int
}

// Resolve merges flags into c and fills any empty fields with defaults.
func (c *Config) Resolve(flags Flags) error {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if flags.Mesh != "" {
		ms := MeshSpec{Path: flags.Mesh, Shader: shade.Spec{Kind: flags.Shader}}
		var err error
		if ms.Translate, err = parseList(flags.Translate); err != nil {
			return fmt.Errorf("config: -translate: %w", err)
		}
		if ms.Scale, err = parseList(flags.Scale); err != nil {
			return fmt.Errorf("config: -scale: %w", err)
		}
		c.Scenes = []Scene{{Output: flags.Output, Meshes: []MeshSpec{ms}}}
	} else if flags.Output != "" && len(c.Scenes) == 1 {
		c.Scenes[0].Output = flags.Output
	}

	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}

	for i := range c.Scenes {
		s := &c.Scenes[i]
		if flags.Width > 0 {
			s.Width = flags.Width
		}
		if flags.Height > 0 {
			s.Height = flags.Height
		}
		if s.Width <= 0 {
			s.Width = DefaultWidth
		}
		if s.Height <= 0 {
			s.Height = DefaultHeight
		}

		if s.Name == "" {
			s.Name = fmt.Sprintf("scene%d", i)
		}
		if s.Output == "" {
			if len(c.Scenes) == 1 {
				s.Output = DefaultOutput
			} else {
				s.Output = s.Name + ".bmp"
			}
		}
		if c.OutputDir != "" && !filepath.IsAbs(s.Output) {
			s.Output = filepath.Join(c.OutputDir, s.Output)
		}

		for j := range s.Meshes {
			m := &s.Meshes[j]
			if c.BaseDir != "" && m.Path != "" && !filepath.IsAbs(m.Path) {
				m.Path = filepath.Join(c.BaseDir, m.Path)
			}
		}
	}

	return c.Validate()
}

// Validate reports the first problem that would stop a render.
func (c *Config) Validate() error {
	if len(c.Scenes) == 0 {
		return errors.New("config: no scenes to render")
	}
	for i, s := range c.Scenes {
		if len(s.Meshes) == 0 {
			return fmt.Errorf("config: scene %q has no meshes", s.Name)
		}
		for j, m := range s.Meshes {
			if m.Path == "" {
				return fmt.Errorf("config: scene %d mesh %d: empty path", i, j)
			}
			if _, err := m.Transform(); err != nil {
				return fmt.Errorf("config: scene %d mesh %d: %w", i, j, err)
			}
			if _, err := shade.New(m.Shader); err != nil {
				return fmt.Errorf("config: scene %d mesh %d: %w", i, j, err)
			}
		}
	}
	return nil
}

// Transform converts the translate and scale lists.
func (m MeshSpec) Transform() (mesh.Transform, error) {
	t, err := toVec(m.Translate, 0)
	if err != nil {
		return mesh.Transform{}, fmt.Errorf("translate: %w", err)
	}
	s, err := toVec(m.Scale, 1)
	if err != nil {
		return mesh.Transform{}, fmt.Errorf("scale: %w", err)
	}
	return mesh.Transform{Translate: t, Scale: s}, nil
}

// BackgroundRGB returns the clear color.
func (s Scene) BackgroundRGB() shade.RGB {
	return shade.RGB{R: s.Background[0], G: s.Background[1], B: s.Background[2]}
}

// toVec fills missing components with def; an empty list is all def.
func toVec(vals []float64, def float64) (mathutil.Vec3, error) {
	v := mathutil.Vec3{def, def, def}
	switch len(vals) {
	case 0:
	case 2, 3:
		copy(v[:], vals)
	default:
		return v, fmt.Errorf("want 2 or 3 components, got %d", len(vals))
	}
	return v, nil
}

func parseList(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}
