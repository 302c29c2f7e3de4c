package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/masonry/pkg/export"
	"github.com/matzehuels/masonry/pkg/pipeline"
	"github.com/matzehuels/masonry/pkg/scenario"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		refresh    bool
		caching    cacheFlags
	)
	opts := pipeline.Options{Scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [scenario|layout.json]",
		Short: "Render a scenario or geometry document to SVG, PNG or JSON",
		Long: `Render a scenario or geometry document to SVG, PNG or JSON.

The input is either a scenario (TOML or JSON), which is laid out first, or a
document written by 'layout'. Each requested format is written next to the
input, or to <output>.<format> when --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			opts.Refresh = refresh
			if err := opts.Validate(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], output, caching, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: input without extension)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "label each frame with its index path")
	cmd.Flags().BoolVar(&opts.Sections, "sections", false, "outline section frames")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached results")
	caching.register(cmd)
	registerOverrides(cmd, &opts.Overrides)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input, output string, caching cacheFlags, opts pipeline.Options) error {
	runner, err := c.newRunner(ctx, caching)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Loading "+filepath.Base(input)+"...")
	spinner.Start()
	prog := newProgress(c.Logger)

	doc, layoutHit, err := c.loadDocument(ctx, runner, input, opts)
	if err != nil {
		spinner.StopWithError("Load failed")
		return err
	}

	spinner.SetMessage(fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
	artifacts, renderHit, err := runner.RenderWithCacheInfo(ctx, doc, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()
	prog.done("rendered", "formats", len(artifacts), "cached", renderHit)

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := basePath(output, input)
	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	printSuccess("Render complete")
	for _, format := range formats {
		path := base + "." + format
		if filepath.Clean(path) == filepath.Clean(input) {
			path = base + ".out." + format
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(len(doc.Sections), doc.ItemCount(), layoutHit && renderHit)
	return nil
}

// loadDocument returns the geometry document for input, laying out the
// scenario when input is not already a document.
func (c *CLI) loadDocument(ctx context.Context, runner *pipeline.Runner, input string, opts pipeline.Options) (export.Document, bool, error) {
	if isDocument(input) {
		c.Logger.Debug("input is a layout document", "path", input)
		doc, err := export.ReadFile(input)
		if err != nil {
			return export.Document{}, false, fmt.Errorf("load document %s: %w", input, err)
		}
		return doc, true, nil
	}

	s, err := scenario.ReadFile(input)
	if err != nil {
		return export.Document{}, false, fmt.Errorf("load scenario %s: %w", input, err)
	}
	result, err := runner.Layout(ctx, s, opts)
	if err != nil {
		return export.Document{}, false, fmt.Errorf("compute layout: %w", err)
	}
	return result.Document, result.CacheInfo.LayoutHit, nil
}

// isDocument reports whether path holds a geometry document rather than a
// scenario. Documents are JSON with a top-level content_size.
func isDocument(path string) bool {
	if scenario.DetectFormat(path) != scenario.FormatJSON {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var probe struct {
		ContentSize *json.RawMessage `json:"content_size"`
	}
	return json.Unmarshal(data, &probe) == nil && probe.ContentSize != nil
}
