package render

import "errors"

// ErrEmptyScene - nothing to draw: no disks and no path.
var ErrEmptyScene = errors.New("render: nothing to draw")

// closeTol bounds the endpoint gap below which a path is drawn closed.
const closeTol = 1e-6

// Options control the SVG document produced by WriteSVG.
type Options struct {
	Margin    float64 // blank border around the drawing, scene units
	DiskStyle string  // CSS for the disk circles
	PathStyle string  // CSS for the envelope path
}

// Option mutates Options.
type Option func(*Options)

// WithMargin sets the blank border width. Panics if m is negative.
func WithMargin(m float64) Option {
	if m < 0 {
		panic("render: margin must not be negative")
	}

	return func(o *Options) { o.Margin = m }
}

// WithDiskStyle sets the CSS applied to disk circles. Panics on empty style.
func WithDiskStyle(style string) Option {
	if style == "" {
		panic("render: empty disk style")
	}

	return func(o *Options) { o.DiskStyle = style }
}

// WithPathStyle sets the CSS applied to the envelope path. Panics on empty style.
func WithPathStyle(style string) Option {
	if style == "" {
		panic("render: empty path style")
	}

	return func(o *Options) { o.PathStyle = style }
}

// DefaultOptions returns the rendering defaults.
func DefaultOptions() Options {
	return Options{
		Margin:    20,
		DiskStyle: "fill:none;stroke:#888;stroke-width:1",
		PathStyle: "fill:none;stroke:#d33;stroke-width:2",
	}
}

func buildOptions(opts []Option) Options {
	var (
		cfg Options
		opt Option
	)

	cfg = DefaultOptions()
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}
