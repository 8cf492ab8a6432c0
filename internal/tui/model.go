package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/proxygrid/internal/container"
	"github.com/rshade/proxygrid/internal/grid"
	"github.com/rshade/proxygrid/internal/layout"
	"github.com/rshade/proxygrid/internal/logging"
)

// headerHeight is the number of lines drawn above the grid.
const headerHeight = 1

// SetItemsMsg replaces the proxy list.
type SetItemsMsg struct {
	Items []string
}

// SetNowMsg changes the active proxy.
type SetNowMsg struct {
	Now string
}

// ActivatedMsg is emitted when the user selects a proxy.
type ActivatedMsg struct {
	Item string
}

// Option configures a ProxyListModel.
type Option func(*ProxyListModel)

// WithOverscan sets the overscan rows of the windowed renderer.
func WithOverscan(rows int) Option {
	return func(m *ProxyListModel) {
		m.overscan = max(rows, 0)
	}
}

// WithTitle sets the header title. It defaults to "proxies".
func WithTitle(title string) Option {
	return func(m *ProxyListModel) {
		m.title = title
	}
}

// WithPicker makes the model quit after the first activation. The selected
// proxy is available from Activated.
func WithPicker() Option {
	return func(m *ProxyListModel) {
		m.quitOnActivate = true
	}
}

// WithHelp toggles the key help footer.
func WithHelp(show bool) Option {
	return func(m *ProxyListModel) {
		m.showHelp = show
	}
}

// WithCellRenderer overrides the renderer chosen by the variant.
func WithCellRenderer(r grid.CellRenderer) Option {
	return func(m *ProxyListModel) {
		if r != nil {
			m.cells = r
		}
	}
}

// WithKeyMap overrides the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *ProxyListModel) {
		m.keys = k
	}
}

// ProxyListModel is the Bubble Tea model of a proxy group grid. Its width
// comes from a container.Container fed by tea.WindowSizeMsg; the layout is
// recomputed on every render and switches between the windowed and the flat
// renderer. With a known terminal height the grid body is capped to the
// lines left between the header and the help footer, and both strategies
// scroll inside it.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type ProxyListModel struct {
	logger zerolog.Logger

	variant Variant
	sizing  layout.Sizing
	props   grid.Props
	cells   grid.CellRenderer

	feed *container.Feed
	box  *container.Container

	height    int // terminal rows, 0 when unknown
	overscan  int
	scrollTop int
	cursor    int

	keys     KeyMap
	help     help.Model
	showHelp bool
	fullHelp bool

	quitOnActivate bool
	activated      string
	title          string
	quitting       bool
}

// NewProxyListModel creates a model for props and mounts its container.
// The width stays 0, and rendering flat, until the first WindowSizeMsg.
func NewProxyListModel(
	ctx context.Context,
	variant Variant,
	sizing layout.Sizing,
	props grid.Props,
	opts ...Option,
) ProxyListModel {
	logger := logging.ComponentLogger(*logging.FromContext(ctx), "tui")
	m := ProxyListModel{
		logger:   logger,
		variant:  variant,
		sizing:   sizing.Clamped(),
		props:    props,
		cells:    variant.Cells(),
		feed:     container.NewFeed(),
		overscan: grid.DefaultOverscan,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		showHelp: true,
		title:    "proxies",
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.box = container.New(container.WithLogger(logger))
	m.box.Mount(m.feed)
	if i := m.indexOf(props.Now); i >= 0 {
		m.cursor = i
	}
	return m
}

// Init implements tea.Model.
func (m ProxyListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ProxyListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.quitting {
			return m, nil
		}
		m.feed.Publish(msg.Width)
		m.height = max(msg.Height, 0)
		m.help.Width = msg.Width
		m = m.followCursor()
		return m, nil

	case SetItemsMsg:
		m.props.Items = msg.Items
		m.cursor = min(m.cursor, max(len(msg.Items)-1, 0))
		m = m.followCursor()
		m.logger.Debug().Int("items", len(msg.Items)).Msg("items replaced")
		return m, nil

	case SetNowMsg:
		m.props.Now = msg.Now
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m ProxyListModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	per := m.perRow()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.fullHelp = !m.fullHelp
		return m.followCursor(), nil
	case key.Matches(msg, m.keys.Activate):
		return m.activate(m.cursor)
	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-per), nil
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(per), nil
	case key.Matches(msg, m.keys.Left):
		return m.moveCursor(-1), nil
	case key.Matches(msg, m.keys.Right):
		return m.moveCursor(1), nil
	case key.Matches(msg, m.keys.PageUp):
		return m.moveCursor(-per * m.pageRows()), nil
	case key.Matches(msg, m.keys.PageDown):
		return m.moveCursor(per * m.pageRows()), nil
	case key.Matches(msg, m.keys.Home):
		return m.moveCursor(-m.cursor), nil
	case key.Matches(msg, m.keys.End):
		return m.moveCursor(len(m.props.Items)), nil
	}
	return m, nil
}

func (m ProxyListModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.scroll(-m.sizing.RowHeight), nil
	case tea.MouseButtonWheelDown:
		return m.scroll(m.sizing.RowHeight), nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		cell, ok := m.hitTest(msg.X, msg.Y-headerHeight)
		if !ok || !cell.Present {
			return m, nil
		}
		m.cursor = cell.Index
		return m.activate(cell.Index)
	}
	return m, nil
}

func (m ProxyListModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.box.Unmount()
	m.logger.Debug().Msg("proxy list closed")
	return m, tea.Quit
}

// activate selects the item at index. Non-selectable lists ignore it.
func (m ProxyListModel) activate(index int) (tea.Model, tea.Cmd) {
	if !m.props.Selectable || index < 0 || index >= len(m.props.Items) {
		return m, nil
	}
	item := m.props.Items[index]
	m.activated = item
	if m.props.OnActivate != nil {
		m.props.OnActivate(item)
	}
	m.logger.Info().Str("proxy", item).Msg("proxy selected")
	if m.quitOnActivate {
		return m.quit()
	}
	return m, func() tea.Msg { return ActivatedMsg{Item: item} }
}

func (m ProxyListModel) moveCursor(delta int) ProxyListModel {
	if len(m.props.Items) == 0 {
		return m
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.props.Items)-1)
	return m.followCursor()
}

// followCursor scrolls the body the least amount that shows the cursor row.
func (m ProxyListModel) followCursor() ProxyListModel {
	if w, ok := m.window(); ok {
		row, _ := w.Plan().Position(m.cursor)
		m.scrollTop = w.ScrollToRow(row)
		return m
	}
	h := m.bodyHeight()
	if h < 0 {
		m.scrollTop = 0
		return m
	}
	rh := m.sizing.RowHeight
	row := m.cursor / m.perRow()
	top, bottom := row*rh, (row+1)*rh
	switch {
	case top < m.scrollTop:
		m.scrollTop = top
	case bottom > m.scrollTop+h:
		m.scrollTop = bottom - h
	}
	m.scrollTop = min(max(m.scrollTop, 0), m.flatMaxScroll())
	return m
}

func (m ProxyListModel) scroll(delta int) ProxyListModel {
	if w, ok := m.window(); ok {
		m.scrollTop = w.ScrollBy(delta)
		return m
	}
	m.scrollTop = min(max(m.scrollTop+delta, 0), m.flatMaxScroll())
	return m
}

// bodyHeight is the number of screen lines available to the grid, or -1
// when the terminal height is unknown.
func (m ProxyListModel) bodyHeight() int {
	if m.height <= 0 {
		return -1
	}
	return max(1, m.height-headerHeight-m.footerHeight())
}

func (m ProxyListModel) footerHeight() int {
	if !m.showHelp {
		return 0
	}
	return lipgloss.Height(m.helpView())
}

func (m ProxyListModel) helpView() string {
	if m.fullHelp {
		return m.help.FullHelpView(m.keys.FullHelp())
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

// flatMaxScroll is the largest flat offset that still fills the body.
func (m ProxyListModel) flatMaxScroll() int {
	h := m.bodyHeight()
	if h < 0 {
		return 0
	}
	return max(0, m.flat().Rows(len(m.props.Items))*m.sizing.RowHeight-h)
}

// RenderPlan is the layout decision for the current items and width.
func (m ProxyListModel) RenderPlan() layout.RenderPlan {
	return layout.Decide(len(m.props.Items), m.box.Width(), m.sizing)
}

func (m ProxyListModel) window() (*grid.Window, bool) {
	rp := m.RenderPlan()
	if !rp.Windowed() {
		return nil, false
	}
	plan := rp.Plan
	if h := m.bodyHeight(); h >= 0 {
		plan.ViewportHeight = min(plan.ViewportHeight, h)
	}
	return grid.NewWindow(plan, m.sizing, rp.Width,
		grid.WithOverscan(m.overscan),
		grid.WithScrollTop(m.scrollTop),
	), true
}

func (m ProxyListModel) flat() grid.Flat {
	return grid.NewFlat(m.box.Width(), m.sizing)
}

func (m ProxyListModel) perRow() int {
	return m.flat().PerRow()
}

func (m ProxyListModel) pageRows() int {
	vh := m.RenderPlan().Plan.ViewportHeight
	if w, ok := m.window(); ok {
		_, vh = w.Size()
	} else if h := m.bodyHeight(); h >= 0 {
		vh = h
	}
	return max(1, vh/m.sizing.RowHeight)
}

// hitTest maps body coordinates to a cell. y is relative to the first body
// line on screen.
func (m ProxyListModel) hitTest(x, y int) (layout.Cell, bool) {
	if w, ok := m.window(); ok {
		return w.HitTest(x, y, m.props.Items)
	}
	if h := m.bodyHeight(); y < 0 || (h >= 0 && y >= h) {
		return layout.Cell{}, false
	}
	return m.flat().HitTest(x, y+m.scrollTop, m.props.Items)
}

func (m ProxyListModel) indexOf(item string) int {
	if item == "" {
		return -1
	}
	for i, p := range m.props.Items {
		if p == item {
			return i
		}
	}
	return -1
}

// View implements tea.Model.
func (m ProxyListModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")

	focus := grid.NoFocus
	if len(m.props.Items) > 0 {
		focus = m.cursor
	}
	if w, ok := m.window(); ok {
		b.WriteString(w.View(m.props, m.cells, focus))
	} else {
		b.WriteString(m.flatView(focus))
	}

	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.helpView())
	}
	return b.String()
}

// flatView draws the flat layout, cropped to the body when the terminal
// size is known.
func (m ProxyListModel) flatView(focus int) string {
	body := m.flat().View(m.props, m.cells, focus)
	h := m.bodyHeight()
	if h < 0 {
		return body
	}
	lines := strings.Split(body, "\n")
	start := min(m.scrollTop, len(lines))
	end := min(start+h, len(lines))
	body = strings.Join(lines[start:end], "\n")
	if w := m.box.Width(); w > 0 {
		body = lipgloss.NewStyle().MaxWidth(w).Render(body)
	}
	return body
}

func (m ProxyListModel) header() string {
	p := message.NewPrinter(language.English)
	parts := []string{HeaderStyle.Render(m.title), LabelStyle.Render(p.Sprintf("%d proxies", len(m.props.Items)))}
	if m.props.Now != "" {
		parts = append(parts, LabelStyle.Render("now")+" "+ValueStyle.Render(m.props.Now))
	}
	if m.RenderPlan().Windowed() {
		parts = append(parts, InfoStyle.Render("windowed"))
	}
	if !m.props.Selectable {
		parts = append(parts, InfoStyle.Render("read-only"))
	}
	return strings.Join(parts, "  ")
}

// Activated returns the last selected proxy, or "".
func (m ProxyListModel) Activated() string {
	return m.activated
}

// Cursor returns the index of the focused item.
func (m ProxyListModel) Cursor() int {
	return m.cursor
}

// ScrollTop returns the vertical offset of the grid body in lines.
func (m ProxyListModel) ScrollTop() int {
	return m.scrollTop
}

// Width returns the measured container width.
func (m ProxyListModel) Width() int {
	return m.box.Width()
}

// Mounted reports whether the model still observes size updates.
func (m ProxyListModel) Mounted() bool {
	return m.box.Mounted()
}

// Variant returns the display variant.
func (m ProxyListModel) Variant() Variant {
	return m.variant
}
