// Package layout computes grid geometry for responsive proxy lists.
//
// Given an item count, a measured container width and a Sizing preset, the
// engine derives a Plan: how many columns fit, how many rows are needed, how
// tall the scrolling viewport is and whether the list is large enough to be
// virtualized. Plans are pure values; they are recomputed on every render and
// never cached.
//
// Decide turns a Plan into a RenderPlan, the tagged choice between windowed
// and flat rendering. A container width of 0 means "not measured yet" and
// always selects flat rendering, so a grid never flashes a degenerate
// single-column layout before the first measurement arrives.
package layout
