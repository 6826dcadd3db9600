package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"obj-bmp-renderer/internal/batch"
	"obj-bmp-renderer/internal/config"
	"obj-bmp-renderer/internal/render"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a scene config JSON file")
	meshPath := flag.String("mesh", "", "Render a single OBJ file instead of the config scenes")
	output := flag.String("out", "", "Output image (.bmp, .webp, .tga or .png; default: out.bmp)")
	outputDir := flag.String("output-dir", "", "Directory for relative outputs")
	width := flag.Int("width", 0, "Surface width (default: 700)")
	height := flag.Int("height", 0, "Surface height (default: 700)")
	shader := flag.String("shader", "", "Shader for -mesh: flat or jupiter (default: flat white)")
	translate := flag.String("translate", "", "Translate for -mesh as x,y[,z]")
	scale := flag.String("scale", "", "Scale for -mesh as x,y[,z]")
	workers := flag.Int("workers", 0, "Scenes rendered in parallel (default: NumCPU)")
	manifest := flag.String("manifest", "", "Write a JSON manifest of the results to this path")
	verbose := flag.Bool("v", false, "Log render progress to stderr")

	flag.Parse()

	if *verbose {
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *configFile == "" && *meshPath == "" {
		fmt.Fprintln(os.Stderr, "Error: need -config or -mesh.")
		flag.Usage()
		os.Exit(2)
	}

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
	err := cfg.Resolve(config.Flags{
		Mesh:      *meshPath,
		Output:    *output,
		OutputDir: *outputDir,
		Width:     *width,
		Height:    *height,
		Shader:    *shader,
		Translate: *translate,
		Scale:     *scale,
		Workers:   *workers,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	results := batch.Run(cfg.Scenes, cfg.Workers)
	elapsed := time.Since(start)

	failed := 0
	for _, r := range results {
		if r.Success {
			fmt.Printf("%s: %s (%dx%d, %d triangles, %d pixels)\n",
				r.Name, r.Output, r.Width, r.Height, r.Stats.Triangles, r.Stats.Written)
		} else {
			failed++
			fmt.Fprintf(os.Stderr, "Error: %s: %s\n", r.Name, r.Error)
		}
	}
	fmt.Printf("Rendered %d/%d in %.2fs\n", len(results)-failed, len(results), elapsed.Seconds())

	if *manifest != "" {
		if err := os.MkdirAll(filepath.Dir(*manifest), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else if err := batch.WriteManifest(*manifest, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
