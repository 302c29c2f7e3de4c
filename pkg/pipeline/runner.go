package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/masonry/pkg/cache"
	"github.com/matzehuels/masonry/pkg/export"
	"github.com/matzehuels/masonry/pkg/scenario"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  cache.Observed(c),
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, s *scenario.Scenario, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	opts.SetDefaults()

	result, err := r.Layout(ctx, s, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, result.Document, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"run", result.RunID,
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Layout applies overrides and computes the geometry document, using the
// cache when possible. The returned result has no artifacts.
func (r *Runner) Layout(ctx context.Context, s *scenario.Scenario, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	effective, err := ApplyOverrides(s, opts.Overrides)
	if err != nil {
		return nil, err
	}
	if err := effective.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:        uuid.NewString(),
		ScenarioHash: effective.Hash(),
	}

	start := time.Now()
	doc, hit := r.generateLayout(ctx, effective, result.ScenarioHash, opts)
	doc.RunID = result.RunID

	result.Document = doc
	result.Stats.LayoutTime = time.Since(start)
	result.Stats.Sections = len(doc.Sections)
	result.Stats.Items = doc.ItemCount()
	result.CacheInfo.LayoutHit = hit

	r.Logger.Info("computed layout",
		"run", result.RunID,
		"sections", result.Stats.Sections,
		"items", result.Stats.Items,
		"cached", hit,
		"duration", result.Stats.LayoutTime)

	return result, nil
}

func (r *Runner) generateLayout(ctx context.Context, s *scenario.Scenario, hash string, opts Options) (export.Document, bool) {
	key := r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if doc, err := export.Unmarshal(data); err == nil {
				doc.Name = s.Name
				return doc, true
			}
			r.Logger.Debug("discarding unreadable cached layout", "key", key)
		} else if err != nil {
			r.Logger.Warn("layout cache read failed", "err", err)
		}
	}

	doc := GenerateLayout(s)
	if data, err := export.Marshal(doc); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
			r.Logger.Warn("layout cache write failed", "err", err)
		}
	}
	return doc, false
}

// RenderWithCacheInfo generates artifacts with caching and reports whether
// every format came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, d export.Document, opts Options) (map[string][]byte, bool, error) {
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}
	opts.SetDefaults()

	// Artifacts carry no run metadata.
	keyed := d
	keyed.RunID, keyed.Name = "", ""
	data, err := export.Marshal(keyed)
	if err != nil {
		return nil, false, fmt.Errorf("serialize document for cache key: %w", err)
	}
	docHash := cache.Hash(data)

	artifacts := make(map[string][]byte, len(opts.Formats))
	if !opts.Refresh {
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := Render(keyed, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("artifact cache write failed", "format", format, "err", err)
		}
	}

	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
