package layout

// Strategy selects how a list is rendered.
type Strategy int

const (
	// StrategyFlat renders every item with no windowing.
	StrategyFlat Strategy = iota
	// StrategyWindowed renders only the slots inside the viewport.
	StrategyWindowed
)

func (s Strategy) String() string {
	switch s {
	case StrategyFlat:
		return "flat"
	case StrategyWindowed:
		return "windowed"
	default:
		return "unknown"
	}
}

// RenderPlan is the per-render choice between Windowed(Plan) and Flat.
// Plan is filled in for both strategies so callers can report geometry, but
// only windowed rendering consumes it.
type RenderPlan struct {
	Strategy Strategy `json:"strategy"`
	Plan     Plan     `json:"plan"`
	Width    int      `json:"width"`
}

// Windowed reports whether the windowed renderer was selected.
func (r RenderPlan) Windowed() bool {
	return r.Strategy == StrategyWindowed
}

// Decide computes the Plan and picks the renderer. Windowing requires both a
// list above the threshold and a measured width; a width of 0 always falls
// back to flat rendering.
func Decide(itemCount, containerWidth int, s Sizing) RenderPlan {
	plan := Compute(itemCount, containerWidth, s)
	rp := RenderPlan{Strategy: StrategyFlat, Plan: plan, Width: max(containerWidth, 0)}
	if plan.Virtualize && containerWidth > 0 {
		rp.Strategy = StrategyWindowed
	}
	return rp
}
