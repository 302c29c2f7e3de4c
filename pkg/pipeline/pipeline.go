// Package pipeline provides the scenario → layout → render pipeline shared
// by the CLI and the HTTP server.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: apply overrides to a scenario, run the prepare pass and export
//     the geometry as an [export.Document]
//  2. Render: turn the document into artifacts (SVG, PNG, JSON)
//
// Each stage is cached independently through a [cache.Cache], keyed by a
// hash of its inputs.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, s, pipeline.Options{
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/masonry/pkg/cache"
	"github.com/matzehuels/masonry/pkg/column"
	"github.com/matzehuels/masonry/pkg/errors"
	"github.com/matzehuels/masonry/pkg/export"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatJSON}

// DefaultScale is the default PNG scale factor.
const DefaultScale = 2.0

// Overrides replace scenario settings for a single run. Zero values leave
// the scenario untouched.
type Overrides struct {
	Width     float64 `json:"width,omitempty"`
	Columns   int     `json:"columns,omitempty"`
	Direction string  `json:"direction,omitempty"`
	Sticky    bool    `json:"sticky,omitempty"`
}

// Options contains all configuration for a pipeline run.
type Options struct {
	Overrides Overrides `json:"overrides"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	Labels   bool     `json:"labels,omitempty"`
	Sections bool     `json:"sections,omitempty"`

	// Refresh bypasses cached results; fresh results are still stored.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run.
	RunID string

	// ScenarioHash is the content hash of the scenario after overrides.
	ScenarioHash string

	Document  export.Document
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Sections   int
	Items      int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the document came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f, ValidFormats...); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks overrides and render options.
func (o *Options) Validate() error {
	if o.Overrides.Direction != "" {
		if _, err := column.ParseRenderDirection(o.Overrides.Direction); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "direction override")
		}
	}
	if err := errors.ValidateLength("width override", o.Overrides.Width); err != nil {
		return err
	}
	if err := errors.ValidateCount("columns override", o.Overrides.Columns); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// SetDefaults fills unset render options.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutKeyOpts returns cache key options for the layout stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:     o.Overrides.Width,
		Columns:   o.Overrides.Columns,
		Direction: o.Overrides.Direction,
		Sticky:    o.Overrides.Sticky,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Labels: o.Labels, Sections: o.Sections}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}
