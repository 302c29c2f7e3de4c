package pipeline

import (
	"fmt"

	"github.com/matzehuels/masonry/pkg/errors"
	"github.com/matzehuels/masonry/pkg/export"
	"github.com/matzehuels/masonry/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
func Render(d export.Document, opts Options) (map[string][]byte, error) {
	sinkOpts := buildSinkOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(d, sinkOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(d, sinkOpts...)
		case FormatJSON:
			data, err = export.Marshal(d)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func buildSinkOptions(opts Options) []sink.Option {
	var out []sink.Option
	if opts.Labels {
		out = append(out, sink.WithLabels())
	}
	if opts.Sections {
		out = append(out, sink.WithSectionFrames())
	}
	if opts.Scale > 0 {
		out = append(out, sink.WithScale(opts.Scale))
	}
	return out
}
