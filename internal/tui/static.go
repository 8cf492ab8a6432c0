package tui

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/proxygrid/internal/grid"
	"github.com/rshade/proxygrid/internal/layout"
)

// RenderStatic draws props once for a region of the given width. It makes
// the same flat or windowed decision as ProxyListModel. A windowed render
// shows the viewport scrolled to the active proxy and a footer with the
// visible row range.
func RenderStatic(variant Variant, sizing layout.Sizing, props grid.Props, width int, title string) string {
	sizing = sizing.Clamped()
	rp := layout.Decide(len(props.Items), width, sizing)
	p := message.NewPrinter(language.English)

	if title == "" {
		title = "proxies"
	}
	header := []string{HeaderStyle.Render(title), LabelStyle.Render(p.Sprintf("%d proxies", len(props.Items)))}
	if props.Now != "" {
		header = append(header, LabelStyle.Render("now")+" "+ValueStyle.Render(props.Now))
	}

	var b strings.Builder
	b.WriteString(strings.Join(header, "  "))
	b.WriteString("\n")

	if !rp.Windowed() {
		b.WriteString(grid.NewFlat(width, sizing).View(props, variant.Cells(), grid.NoFocus))
		return b.String()
	}

	w := grid.NewWindow(rp.Plan, sizing, rp.Width)
	for i, item := range props.Items {
		if props.IsCurrent(item) {
			row, _ := rp.Plan.Position(i)
			w.ScrollToRow(row)
			break
		}
	}
	b.WriteString(w.View(props, variant.Cells(), grid.NoFocus))
	from, to := w.VisibleRows()
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(p.Sprintf("rows %d-%d of %d", from+1, to, rp.Plan.RowCount)))
	return b.String()
}
