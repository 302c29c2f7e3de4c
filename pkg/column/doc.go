// Package column computes a column ("masonry") layout for a sectioned
// collection of items.
//
// # Overview
//
// A [Layout] consumes item counts from a [Host] and per-item size hints from
// a [Delegate] and produces the frame of every item, section header and
// section footer. Once prepared, the layout answers spatial queries against
// those frames without touching the host's items again.
//
// # Preparing
//
// [Layout.Prepare] runs one top-to-bottom pass over all sections. For each
// section it resolves the column count, insets and spacing, places the
// header, then drops every item into a column chosen by the configured
// [RenderDirection]:
//
//   - [ShortestFirst]: the column whose bottom is currently highest on screen
//     (ties go to the lowest index). This is the masonry effect.
//   - [LeftToRight]: item index modulo the column count.
//   - [RightToLeft]: the mirror image of [LeftToRight].
//
// Item heights are resolved in this order: a valid aspect ratio scaled to the
// column width (plus the delegate's explicit height, if it also answers one),
// the delegate's explicit height, then [Options.ItemHeight].
//
// # Querying
//
// The query methods read the snapshot published by the most recent completed
// Prepare:
//
//   - [Layout.ContentSize], [Layout.SectionFrame]
//   - [Layout.ItemsIntersecting], [Layout.IndexPathsIntersecting], [Layout.ItemAt]
//   - [Layout.AttributesForItem], [Layout.AttributesForSupplementary]
//   - [Layout.ScrollTarget], [Layout.NextItem]
//
// Rect queries scan each column top to bottom and stop as soon as an item
// starts below the query rectangle, so the cost is proportional to the
// visible items rather than the section size.
//
// # Sticky headers
//
// With [Options.PinHeaders] set, header lookups return a copy whose frame is
// clamped between its natural position and the point where the next
// section's header pushes it away. The cached frame is never modified.
//
// # Concurrency
//
// Prepare, Configure and ShouldInvalidate must be called from a single
// goroutine. Query methods may run concurrently with each other and with
// Prepare: each query loads one complete snapshot and never observes a
// partially built pass.
package column
