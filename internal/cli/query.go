package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/masonry/pkg/column"
	"github.com/matzehuels/masonry/pkg/errors"
	"github.com/matzehuels/masonry/pkg/geom"
	"github.com/matzehuels/masonry/pkg/pipeline"
)

// queryFlags are shared by every query subcommand.
type queryFlags struct {
	overrides pipeline.Overrides
	offset    string
	idsOnly   bool
}

func (f *queryFlags) register(cmd *cobra.Command) {
	registerOverrides(cmd, &f.overrides)
	cmd.Flags().StringVar(&f.offset, "offset", "", "scroll offset x,y (overrides the scenario)")
	cmd.Flags().BoolVar(&f.idsOnly, "ids", false, "print index paths only")
}

func (f *queryFlags) load(input string) (*column.Layout, error) {
	var offset *geom.Point
	if f.offset != "" {
		v, err := parseFloats("offset", f.offset, 2)
		if err != nil {
			return nil, err
		}
		offset = &geom.Point{X: v[0], Y: v[1]}
	}
	_, l, err := loadLayout(input, f.overrides, offset)
	return l, err
}

// queryCommand creates the query command and its subcommands.
func (c *CLI) queryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Ask a prepared layout spatial questions",
		Long: `Ask a prepared layout spatial questions.

Each subcommand lays out the scenario and prints the answer. Index paths are
written section:item, e.g. 0:3.`,
	}

	cmd.AddCommand(c.queryRectCommand())
	cmd.AddCommand(c.queryPointCommand())
	cmd.AddCommand(c.queryItemCommand())
	cmd.AddCommand(c.queryHeaderCommand())
	cmd.AddCommand(c.queryNextCommand())
	cmd.AddCommand(c.queryScrollCommand())

	return cmd
}

func (c *CLI) queryRectCommand() *cobra.Command {
	var (
		flags queryFlags
		rect  string
	)
	cmd := &cobra.Command{
		Use:   "rect [scenario] --rect x,y,w,h",
		Short: "List the items intersecting a rectangle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats("rect", rect, 4)
			if err != nil {
				return err
			}
			l, err := flags.load(args[0])
			if err != nil {
				return err
			}
			attrs := l.ItemsIntersecting(geom.NewRect(v[0], v[1], v[2], v[3]))
			c.Logger.Debug("rect query", "rect", rect, "items", len(attrs))
			printAttributes(cmd.OutOrStdout(), attrs, flags.idsOnly)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&rect, "rect", "", "query rectangle x,y,w,h")
	_ = cmd.MarkFlagRequired("rect")
	return cmd
}

func (c *CLI) queryPointCommand() *cobra.Command {
	var (
		flags queryFlags
		at    string
	)
	cmd := &cobra.Command{
		Use:   "point [scenario] --at x,y",
		Short: "Find the item under a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats("at", at, 2)
			if err != nil {
				return err
			}
			l, err := flags.load(args[0])
			if err != nil {
				return err
			}
			p, ok := l.ItemAt(geom.Point{X: v[0], Y: v[1]})
			if !ok {
				return errors.New(errors.ErrCodeNotFound, "no item at %s", at)
			}
			return printItem(cmd, l, p, flags.idsOnly)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&at, "at", "", "point x,y")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}

func (c *CLI) queryItemCommand() *cobra.Command {
	var (
		flags queryFlags
		path  string
	)
	cmd := &cobra.Command{
		Use:   "item [scenario] --path s:i",
		Short: "Print the frame of one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePath(path)
			if err != nil {
				return err
			}
			l, err := flags.load(args[0])
			if err != nil {
				return err
			}
			return printItem(cmd, l, p, flags.idsOnly)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&path, "path", "", "index path section:item")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

func (c *CLI) queryHeaderCommand() *cobra.Command {
	var (
		flags   queryFlags
		section int
		footer  bool
	)
	cmd := &cobra.Command{
		Use:   "header [scenario] --section s",
		Short: "Print a section's header frame, pinned if enabled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := flags.load(args[0])
			if err != nil {
				return err
			}
			kind := column.KindHeader
			if footer {
				kind = column.KindFooter
			}
			a, ok := l.AttributesForSupplementary(kind, column.Path(section, 0))
			if !ok {
				return errors.New(errors.ErrCodeNotFound, "section %d has no %s", section, kind)
			}
			printAttributes(cmd.OutOrStdout(), []column.Attributes{a}, flags.idsOnly)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&section, "section", 0, "section index")
	cmd.Flags().BoolVar(&footer, "footer", false, "print the footer instead")
	return cmd
}

func (c *CLI) queryNextCommand() *cobra.Command {
	var (
		flags queryFlags
		path  string
		dir   string
	)
	cmd := &cobra.Command{
		Use:   "next [scenario] --path s:i --dir up|down|left|right",
		Short: "Find the item reached by a directional move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePath(path)
			if err != nil {
				return err
			}
			d, err := column.ParseDirection(dir)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidDirection, err, "--dir")
			}
			l, err := flags.load(args[0])
			if err != nil {
				return err
			}
			next, ok := l.NextItem(d, p)
			if !ok {
				return errors.New(errors.ErrCodeNotFound, "no item %s of %s", d, p)
			}
			return printItem(cmd, l, next, flags.idsOnly)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&path, "path", "", "index path section:item")
	cmd.Flags().StringVar(&dir, "dir", "", "direction: up, down, left, right")
	_ = cmd.MarkFlagRequired("path")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}

func (c *CLI) queryScrollCommand() *cobra.Command {
	var (
		flags queryFlags
		path  string
	)
	cmd := &cobra.Command{
		Use:   "scroll [scenario] --path s:i",
		Short: "Print the rectangle to scroll to so an item is visible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePath(path)
			if err != nil {
				return err
			}
			l, err := flags.load(args[0])
			if err != nil {
				return err
			}
			r, ok := l.ScrollTarget(p, column.ScrollTop)
			if !ok {
				return errors.New(errors.ErrCodeNotFound, "no item at %s", p)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatRect(r))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&path, "path", "", "index path section:item")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

func printItem(cmd *cobra.Command, l *column.Layout, p column.IndexPath, idsOnly bool) error {
	a, ok := l.AttributesForItem(p)
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "no item at %s", p)
	}
	printAttributes(cmd.OutOrStdout(), []column.Attributes{a}, idsOnly)
	return nil
}

func parsePath(s string) (column.IndexPath, error) {
	p, err := column.ParseIndexPath(s)
	if err != nil {
		return column.IndexPath{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "--path")
	}
	return p, nil
}

// parseFloats parses exactly n comma-separated numbers.
func parseFloats(name, s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, errors.New(errors.ErrCodeInvalidInput, "--%s: want %d comma-separated numbers, got %q", name, n, s)
	}
	out := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "--%s: %q is not a number", name, part)
		}
		out[i] = v
	}
	return out, nil
}
