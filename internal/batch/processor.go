package batch

import (
	"sync"
	"sync/atomic"
	"time"

	"obj-bmp-renderer/internal/config"
	"obj-bmp-renderer/internal/obj"
	"obj-bmp-renderer/internal/raster"
	"obj-bmp-renderer/internal/render"
	"obj-bmp-renderer/internal/shade"
)

// Result holds the outcome of rendering one scene.
type Result struct {
	Name    string
	Output  string
	Width   int
	Height  int
	Stats   raster.Stats
	Elapsed time.Duration
	Success bool
	Error   string
}

// Run renders every scene using a pool of workers. Each scene gets its
// own render context, so scenes never share a framebuffer; parsed meshes
// are shared through one cache.
func Run(scenes []config.Scene, workers int) []Result {
	total := len(scenes)
	results := make([]Result, total)
	if total == 0 {
		return results
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > total {
		workers = total
	}
	var processed atomic.Int64

	start := time.Now()
	log := render.Logger()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					log.Info("progress", "done", p, "total", total, "scenes_per_sec", float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	cache := obj.NewCache()
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = RenderScene(scenes[idx], cache)
				processed.Add(1)
			}
		}()
	}

	for i := range scenes {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

// RenderScene draws all meshes of s and writes its output file. A nil
// cache parses every mesh directly.
func RenderScene(s config.Scene, cache *obj.Cache) Result {
	start := time.Now()
	res := Result{Name: s.Name, Output: s.Output, Width: s.Width, Height: s.Height}
	fail := func(err error) Result {
		res.Error = err.Error()
		res.Elapsed = time.Since(start)
		render.Logger().Warn("scene failed", "scene", s.Name, "err", err)
		return res
	}

	ctx, err := render.CreateSurface(s.Width, s.Height)
	if err != nil {
		return fail(err)
	}
	if cache != nil {
		ctx.SetLoader(cache)
	}
	if s.Viewport != nil {
		v := s.Viewport
		ctx.Viewport(v.X, v.Y, v.Width, v.Height)
	}
	ctx.Clear(s.BackgroundRGB())

	for _, m := range s.Meshes {
		xf, err := m.Transform()
		if err != nil {
			return fail(&render.StageError{Stage: render.StageIngestion, Path: m.Path, Err: err})
		}
		sh, err := shade.New(m.Shader)
		if err != nil {
			return fail(&render.StageError{Stage: render.StageRasterization, Path: m.Path, Err: err})
		}
		if err := ctx.LoadMesh(m.Path, xf, sh); err != nil {
			return fail(err)
		}
	}

	if err := ctx.Finish(s.Output); err != nil {
		return fail(err)
	}

	res.Stats = ctx.Stats()
	res.Elapsed = time.Since(start)
	res.Success = true
	return res
}
