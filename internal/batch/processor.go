package batch

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"wireframe-renderer/internal/pipeline"
	"wireframe-renderer/internal/raster"
	"wireframe-renderer/internal/source"
)

// Config holds all shared settings for a batch run.
type Config struct {
	Pipeline pipeline.Config
	Render   raster.Options // Name is set per job
	Workers  int
}

// Job is one model to render. When Text is nil the model is loaded from Path.
type Job struct {
	Name string
	Path string
	Text []byte
}

// JobFromPath names a job after its file, without extensions.
func JobFromPath(path string) Job {
	name := filepath.Base(path)
	for ext := filepath.Ext(name); ext != ""; ext = filepath.Ext(name) {
		name = strings.TrimSuffix(name, ext)
	}
	return Job{Name: name, Path: path}
}

// Result holds the outcome of processing one job.
type Result struct {
	Name     string
	Source   string
	Points   int
	Faces    int
	Images   []string
	Warnings []string
	Success  bool
	Error    string
}

// Run processes all jobs using a worker pool.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()

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
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f models/sec\n", p, total, rate)
				}
			}
		}
	}()

	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(cfg Config, job Job) Result {
	res := Result{Name: job.Name, Source: job.Path}

	text := job.Text
	if text == nil {
		var err error
		if text, err = source.Load(job.Path); err != nil {
			res.Error = err.Error()
			return res
		}
	}

	out, err := pipeline.RunReader(bytes.NewReader(text), cfg.Pipeline)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Points = len(out.Model.Points)
	res.Faces = len(out.Faces)
	for _, w := range out.Warnings {
		res.Warnings = append(res.Warnings, w.Error())
	}

	opts := cfg.Render
	opts.Name = job.Name
	r := raster.NewRenderer(opts)

	if err := pipeline.Render(out, r); err != nil {
		res.Error = err.Error()
		return res
	}

	for _, v := range []pipeline.View{pipeline.View3D, pipeline.View2D} {
		res.Images = append(res.Images, r.Path(v))
	}
	res.Success = true
	return res
}

// Summarize prints per-job failures (up to limit) and returns the failure count.
func Summarize(results []Result, limit int) int {
	var failed []Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
		for _, w := range r.Warnings {
			fmt.Fprintf(os.Stderr, "  warning: %s: %s\n", r.Name, w)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(results))
	if len(failed) == 0 {
		return 0
	}

	fmt.Printf("\nFailed (%d):\n", len(failed))
	if len(failed) < limit {
		limit = len(failed)
	}
	for _, f := range failed[:limit] {
		fmt.Printf("  %s: %s\n", f.Name, f.Error)
	}
	return len(failed)
}
