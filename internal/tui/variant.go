package tui

import (
	"fmt"
	"strings"

	"github.com/rshade/proxygrid/internal/grid"
)

// Variant selects how proxies are drawn.
type Variant string

const (
	// VariantDetail draws each proxy as a card with its name.
	VariantDetail Variant = "detail"
	// VariantSummary draws each proxy as a dot.
	VariantSummary Variant = "summary"
)

// ParseVariant parses a variant name, case-insensitively. An empty string
// selects VariantDetail.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantDetail, "":
		return VariantDetail, nil
	case VariantSummary:
		return VariantSummary, nil
	default:
		return "", fmt.Errorf("unknown variant %q (want detail or summary)", s)
	}
}

// Cells returns the cell renderer of the variant.
func (v Variant) Cells() grid.CellRenderer {
	if v == VariantSummary {
		return ProxyDot{}
	}
	return ProxyCell{}
}
