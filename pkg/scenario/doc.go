// Package scenario describes a collection view declaratively so that layouts
// can be computed outside of a UI toolkit.
//
// A [Scenario] plays both roles the column layout needs: it is the
// [column.Host] (viewport size, content insets, scroll offset, item counts)
// and the [column.Delegate] (per-section overrides and per-item size hints).
// Scenarios are loaded from TOML or JSON files:
//
//	name = "feed"
//
//	[viewport]
//	width = 375
//	height = 667
//
//	[layout]
//	column_count = 2
//	render_direction = "shortest-first"
//	header_height = 32
//
//	[[sections]]
//	items = 6
//	heights = [120, 80, 200]
//
//	[[sections]]
//	columns = 3
//	ratios = [{ width = 4, height = 3 }, { width = 1, height = 1 }]
//
// Keys omitted from the [layout] table keep the values of
// [column.DefaultOptions].
package scenario
