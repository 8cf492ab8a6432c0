package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidSizing is returned by Sizing.Validate for unusable presets.
var ErrInvalidSizing = errors.New("invalid sizing")

// Sizing holds the tunable constants of a grid variant.
type Sizing struct {
	ColumnWidth         int `yaml:"column_width"         json:"column_width"`
	RowHeight           int `yaml:"row_height"           json:"row_height"`
	VirtualizeThreshold int `yaml:"virtualize_threshold" json:"virtualize_threshold"`
	MaxViewportHeight   int `yaml:"max_viewport_height"  json:"max_viewport_height"`
}

// Browser-unit presets of the detail and summary proxy views.
//
//nolint:gochecknoglobals // Read-only presets.
var (
	DetailPixels  = Sizing{ColumnWidth: 220, RowHeight: 76, VirtualizeThreshold: 200, MaxViewportHeight: 600}
	SummaryPixels = Sizing{ColumnWidth: 22, RowHeight: 22, VirtualizeThreshold: 400, MaxViewportHeight: 240}
)

// Terminal-cell presets. A detail card is 24 columns by 3 lines, a summary
// dot is 2 columns by 1 line.
//
//nolint:gochecknoglobals // Read-only presets.
var (
	DetailTerminal  = Sizing{ColumnWidth: 24, RowHeight: 3, VirtualizeThreshold: 200, MaxViewportHeight: 30}
	SummaryTerminal = Sizing{ColumnWidth: 2, RowHeight: 1, VirtualizeThreshold: 400, MaxViewportHeight: 12}
)

// Validate reports sizes the engine would have to clamp.
// Compute never calls it; it is meant for configuration loading.
func (s Sizing) Validate() error {
	var errs []error
	if s.ColumnWidth <= 0 {
		errs = append(errs, fmt.Errorf("%w: column_width must be > 0, got %d", ErrInvalidSizing, s.ColumnWidth))
	}
	if s.RowHeight <= 0 {
		errs = append(errs, fmt.Errorf("%w: row_height must be > 0, got %d", ErrInvalidSizing, s.RowHeight))
	}
	if s.VirtualizeThreshold < 0 {
		errs = append(errs, fmt.Errorf("%w: virtualize_threshold must be >= 0, got %d",
			ErrInvalidSizing, s.VirtualizeThreshold))
	}
	if s.MaxViewportHeight <= 0 {
		errs = append(errs, fmt.Errorf("%w: max_viewport_height must be > 0, got %d",
			ErrInvalidSizing, s.MaxViewportHeight))
	}
	return errors.Join(errs...)
}

// Clamped returns a copy with every size forced into its valid range.
func (s Sizing) Clamped() Sizing {
	if s.ColumnWidth < 1 {
		s.ColumnWidth = 1
	}
	if s.RowHeight < 1 {
		s.RowHeight = 1
	}
	if s.VirtualizeThreshold < 0 {
		s.VirtualizeThreshold = 0
	}
	if s.MaxViewportHeight < 1 {
		s.MaxViewportHeight = 1
	}
	return s
}
