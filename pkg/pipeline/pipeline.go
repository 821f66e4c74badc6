// Package pipeline provides the load → build → render pipeline for termplot.
//
// The CLI commands and the HTTP server all go through a [Runner], so a scene
// renders identically no matter which entry point produced it, and the
// default values below are defined in one place.
//
// # Stages
//
//  1. Load: read a scene file or request body ([scene.Decode])
//  2. Build: turn the scene into a canvas tree ([scene.Scene.Build])
//  3. Render: draw the tree at the target size ([canvas.String])
//
// Rendered output is cached by scene hash and render options. Build and
// render are skipped entirely on a cache hit.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, "status.toml", pipeline.Options{Width: 120})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Output)
package pipeline

import (
	"time"

	"github.com/matzehuels/termplot/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth and DefaultHeight of zero render at the scene's own size,
	// falling back to the root canvas's intrinsic size.
	DefaultWidth  = 0
	DefaultHeight = 0

	// MaxDimension bounds a render target in dots on either axis.
	MaxDimension = errors.MaxDimension

	// DefaultListen is the address the server binds to.
	DefaultListen = "127.0.0.1:8372"

	// MaxSceneBytes bounds a scene body accepted by the server.
	MaxSceneBytes = 1 << 20
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a render. It supports JSON for server requests.
type Options struct {
	// Width and Height are the target size in dots. Zero uses the scene's
	// size, then the intrinsic size.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// Plain strips every escape sequence from the output.
	Plain bool `json:"plain,omitempty"`

	// Refresh skips the cache lookup but still stores the fresh result.
	Refresh bool `json:"refresh,omitempty"`

	validated bool
}

// Result is the output of a pipeline run.
type Result struct {
	Title string

	// Output is the rendered drawing, rows joined by newlines.
	Output string

	// Width and Height are the requested size in dots after defaults.
	Width, Height int

	Stats  Stats
	Cached bool
}

// Stats holds stage timings.
type Stats struct {
	Rows       int
	LoadTime   time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateDimension checks a target size component.
func ValidateDimension(name string, v int) error {
	if v < 0 || v > MaxDimension {
		return errors.New(errors.ErrCodeInvalidInput, "%s %d out of range [0, %d]", name, v, MaxDimension)
	}
	return nil
}

// ValidateAndSetDefaults checks the options and fills in defaults. Calling it
// again is a no-op.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := ValidateDimension("width", o.Width); err != nil {
		return err
	}
	if err := ValidateDimension("height", o.Height); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// target resolves the render size from the options and the scene's own
// preference.
func (o *Options) target(sceneWidth, sceneHeight int) (int, int) {
	w, h := o.Width, o.Height
	if w == DefaultWidth {
		w = sceneWidth
	}
	if h == DefaultHeight {
		h = sceneHeight
	}
	return w, h
}
