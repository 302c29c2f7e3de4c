package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/masonry/pkg/column"
	"github.com/matzehuels/masonry/pkg/export"
	"github.com/matzehuels/masonry/pkg/geom"
	"github.com/matzehuels/masonry/pkg/pipeline"
	"github.com/matzehuels/masonry/pkg/scenario"
)

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		refresh bool
		caching cacheFlags
		opts    pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   "layout [scenario]",
		Short: "Prepare a scenario and write its geometry document",
		Long: `Prepare a scenario and write its geometry document.

The scenario is a TOML or JSON file describing the viewport, layout options
and sections. The output is a layout.json document with every header, item
and footer frame, which 'render' turns into SVG or PNG.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Refresh = refresh
			return c.runLayout(cmd.Context(), args[0], output, caching, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if a cached layout exists")
	caching.register(cmd)
	registerOverrides(cmd, &opts.Overrides)

	return cmd
}

// runLayout loads the scenario, computes the layout and writes the document.
func (c *CLI) runLayout(ctx context.Context, input, output string, caching cacheFlags, opts pipeline.Options) error {
	s, err := scenario.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load scenario %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, caching)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Preparing layout...")
	spinner.Start()
	result, err := runner.Layout(ctx, s, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if output == "" {
		output = strings.TrimSuffix(basePath("", input), ".layout") + ".layout.json"
	}
	if err := export.WriteFile(output, result.Document); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Layout complete")
	printFile(output)
	printStats(result.Stats.Sections, result.Stats.Items, result.CacheInfo.LayoutHit)
	printNewline()
	printNextStep("Render", appName+" render "+output)

	return nil
}

// loadLayout reads a scenario, applies overrides and the scroll offset (when
// non-nil) and prepares it.
func loadLayout(input string, ov pipeline.Overrides, offset *geom.Point) (*scenario.Scenario, *column.Layout, error) {
	s, err := scenario.ReadFile(input)
	if err != nil {
		return nil, nil, fmt.Errorf("load scenario %s: %w", input, err)
	}
	s, err = pipeline.ApplyOverrides(s, ov)
	if err != nil {
		return nil, nil, err
	}
	if offset != nil {
		s.SetOffset(*offset)
	}
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}
	l := s.NewLayout()
	l.Prepare()
	return s, l, nil
}
