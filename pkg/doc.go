// Package pkg provides the libraries behind masonry, a geometry engine for
// sectioned multi-column "waterfall" layouts.
//
// # Overview
//
// A layout pass walks every section once, placing each item in a column
// chosen by the render direction and recording its frame. Queries are then
// answered from the cached frames without recomputation. The pkg directory
// is organized around that flow:
//
//  1. [geom] - Points, sizes, rects and insets
//  2. [column] - The layout engine, spatial queries, sticky headers and
//     directional navigation
//  3. [scenario] - Declarative hosts loaded from TOML or JSON
//  4. [export] - The serializable geometry document
//  5. [render/sink] - SVG and PNG output
//  6. [pipeline] - Orchestration (scenario → layout → render) with caching
//  7. [server] - The HTTP API
//
// # Architecture
//
// The typical data flow:
//
//	scenario.toml
//	     ↓
//	[scenario] package (host + per-section overrides)
//	     ↓
//	[column] package (Prepare, then queries)
//	     ↓
//	[export] package (geometry document)
//	     ↓
//	SVG/PNG/JSON output
//
// # Quick Start
//
//	s, err := scenario.ReadFile("feed.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	l := s.NewLayout()
//	l.Prepare()
//
//	for _, a := range l.ItemsIntersecting(s.ContentVisibleRect()) {
//	    fmt.Println(a.Path, a.Frame)
//	}
//
// # Supporting Packages
//
//   - [cache]: file, Redis and null backends for layouts and artifacts
//   - [errors]: error codes and input validation
//   - [observability]: hooks for layout passes, cache traffic and requests
//   - [buildinfo]: version information set at build time
//
// [geom]: github.com/matzehuels/masonry/pkg/geom
// [column]: github.com/matzehuels/masonry/pkg/column
// [scenario]: github.com/matzehuels/masonry/pkg/scenario
// [export]: github.com/matzehuels/masonry/pkg/export
// [render/sink]: github.com/matzehuels/masonry/pkg/render/sink
// [pipeline]: github.com/matzehuels/masonry/pkg/pipeline
// [server]: github.com/matzehuels/masonry/pkg/server
// [cache]: github.com/matzehuels/masonry/pkg/cache
// [errors]: github.com/matzehuels/masonry/pkg/errors
// [observability]: github.com/matzehuels/masonry/pkg/observability
// [buildinfo]: github.com/matzehuels/masonry/pkg/buildinfo
package pkg
