package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/termplot/pkg/cache"
	"github.com/matzehuels/termplot/pkg/canvas"
	"github.com/matzehuels/termplot/pkg/errors"
	"github.com/matzehuels/termplot/pkg/observability"
	"github.com/matzehuels/termplot/pkg/scene"
)

// cachedRender is the cache entry for a rendered scene.
type cachedRender struct {
	Output string `json:"output"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Runner executes the pipeline with caching.
//
// The Runner holds no per-render state, so one Runner may serve concurrent
// renders as long as its Cache is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses [cache.DefaultKeyer] and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute loads the scene file at path and renders it.
func (r *Runner) Execute(ctx context.Context, path string, opts Options) (*Result, error) {
	start := time.Now()
	s, err := r.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	loadTime := time.Since(start)

	res, err := r.RenderScene(ctx, s, opts)
	if err != nil {
		return nil, err
	}
	res.Stats.LoadTime = loadTime
	return res, nil
}

// Load reads and decodes a scene file.
func (r *Runner) Load(ctx context.Context, path string) (*scene.Scene, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	s, err := scene.Load(path)
	observability.Pipeline().OnLoadComplete(ctx, path, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("loaded scene", "path", path, "title", s.Title, "duration", time.Since(start))
	return s, nil
}

// Decode parses a scene from memory, e.g. a request body.
func (r *Runner) Decode(ctx context.Context, data []byte, f scene.Format) (*scene.Scene, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) > MaxSceneBytes {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scene is %d bytes, limit is %d", len(data), MaxSceneBytes)
	}
	start := time.Now()
	s, err := scene.Decode(data, f)
	observability.Pipeline().OnLoadComplete(ctx, "-", time.Since(start), err)
	return s, err
}

// RenderScene builds and renders s, consulting the cache first.
func (r *Runner) RenderScene(ctx context.Context, s *scene.Scene, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	w, h := opts.target(s.Width, s.Height)

	data, err := scene.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash scene")
	}
	key := r.Keyer.RenderKey(cache.Hash(data), cache.RenderKeyOpts{Width: w, Height: h, Plain: opts.Plain})

	if !opts.Refresh {
		if res, ok := r.lookup(ctx, key); ok {
			res.Title = s.Title
			r.Logger.Debug("render cache hit", "title", s.Title, "rows", res.Stats.Rows)
			return res, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	buildStart := time.Now()
	c, err := s.Build()
	buildTime := time.Since(buildStart)
	observability.Pipeline().OnBuildComplete(ctx, buildTime, err)
	if err != nil {
		return nil, err
	}

	res, err := r.RenderCanvas(ctx, c, Options{Width: w, Height: h, Plain: opts.Plain})
	if err != nil {
		return nil, err
	}
	res.Title = s.Title
	res.Stats.BuildTime = buildTime

	r.store(ctx, key, res)
	return res, nil
}

// lookup returns the cached render under key. Unreadable entries count as
// misses.
func (r *Runner) lookup(ctx context.Context, key string) (*Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("render cache lookup failed", "err", err)
	}
	var entry cachedRender
	if !hit || json.Unmarshal(data, &entry) != nil {
		observability.Cache().OnCacheMiss(ctx, key)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, key)

	res := &Result{Output: entry.Output, Width: entry.Width, Height: entry.Height, Cached: true}
	res.Stats.Rows = countRows(entry.Output)
	return res, true
}

func (r *Runner) store(ctx context.Context, key string, res *Result) {
	data, err := json.Marshal(cachedRender{Output: res.Output, Width: res.Width, Height: res.Height})
	if err == nil {
		err = r.Cache.Set(ctx, key, data, cache.TTLRender)
	}
	if err != nil {
		r.Logger.Warn("render cache store failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, key, len(data))
}

// RenderCanvas renders an already built canvas tree. It does not cache.
func (r *Runner) RenderCanvas(ctx context.Context, c canvas.Canvas, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = c.Width()
	}
	if h <= 0 {
		h = c.Height()
	}

	observability.Pipeline().OnRenderStart(ctx, w, h)
	start := time.Now()
	out, err := canvas.String(c, w, h)
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, 0, time.Since(start), err)
		return nil, err
	}
	if opts.Plain {
		out = canvas.Plain(out)
	}
	res := &Result{Output: out, Width: w, Height: h}
	res.Stats.Rows = countRows(out)
	res.Stats.RenderTime = time.Since(start)
	observability.Pipeline().OnRenderComplete(ctx, res.Stats.Rows, res.Stats.RenderTime, nil)

	r.Logger.Info("rendered canvas",
		"size", fmt.Sprintf("%dx%d", w, h),
		"rows", res.Stats.Rows,
		"duration", res.Stats.RenderTime)
	return res, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

func countRows(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
