package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tesselkit/listflow/pkg/listlayout"
	"github.com/tesselkit/listflow/pkg/scene"
)

// demoCommand creates the demo command: an interactive playground where
// every keystroke mutates the scene and the engine relayouts reactively.
func (c *CLI) demoCommand() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Explore the layout engine interactively",
		Long: `Demo opens a terminal playground bound to a live layout engine.
Add, remove, resize, and hide children and watch the engine reposition
them through its change subscriptions; cycle direction, sort order, and
alignment to see every configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newDemoModel(debug)
			if err != nil {
				return err
			}
			p := tea.NewProgram(m, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "show layout markers")
	return cmd
}

// childPresets are the sizes new demo children cycle through.
var childPresets = []scene.Vec2{
	{X: 12, Y: 4},
	{X: 16, Y: 3},
	{X: 10, Y: 5},
	{X: 8, Y: 3},
}

// =============================================================================
// DemoModel - interactive layout playground
// =============================================================================

// demoModel is the bubbletea model for the demo command.
type demoModel struct {
	root   *scene.Node
	engine *listlayout.Engine
	cfg    listlayout.Config
	debug  bool

	cursor    int // index into non-marker children
	nextOrder int
	width     int
	height    int
}

func newDemoModel(debug bool) (*demoModel, error) {
	root := scene.New("canvas")
	root.SetSize(scene.FixedSize(80, 20))

	cfg := listlayout.Config{Direction: listlayout.Horizontal, Padding: scene.Fixed(1)}
	engine, err := listlayout.New(root, cfg, listlayout.WithDebug(debug))
	if err != nil {
		return nil, err
	}

	m := &demoModel{
		root:   root,
		engine: engine,
		cfg:    cfg,
		debug:  debug,
	}
	for i := 0; i < 3; i++ {
		m.addChild()
	}
	return m, nil
}

// children returns the root's non-marker children in insertion order.
func (m *demoModel) children() []*scene.Node {
	var out []*scene.Node
	for _, c := range m.root.Children() {
		if !m.engine.IsMarker(c) {
			out = append(out, c)
		}
	}
	return out
}

// addChild parents a preset-sized child under the canvas; the engine
// places it via its ChildAdded subscription.
func (m *demoModel) addChild() {
	size := childPresets[m.nextOrder%len(childPresets)]
	n := scene.New(fmt.Sprintf("box-%d", m.nextOrder))
	n.SetSize(scene.FixedSize(size.X, size.Y))
	n.SetOrderIndex(m.nextOrder)
	if err := n.SetParent(m.root); err != nil {
		// Only possible once the canvas is gone; drop the orphan.
		n.Destroy()
		return
	}
	m.nextOrder++
}

// rebuildEngine swaps the engine for one with the current configuration.
// The old engine must be destroyed first so the driver slot is free.
func (m *demoModel) rebuildEngine() {
	m.engine.Destroy()
	engine, err := listlayout.New(m.root, m.cfg, listlayout.WithDebug(m.debug))
	if err != nil {
		// The slot was just freed; a failure here means the scene is
		// gone, so keep the destroyed engine and let View show nothing.
		return
	}
	m.engine = engine
}

func (m *demoModel) clampCursor() {
	if n := len(m.children()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *demoModel) Init() tea.Cmd {
	return nil
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.engine.Destroy()
			return m, tea.Quit
		case "a":
			m.addChild()
		case "d":
			kids := m.children()
			if len(kids) > 0 {
				kids[m.cursor].Destroy()
				m.clampCursor()
			}
		case "v":
			kids := m.children()
			if len(kids) > 0 {
				sel := kids[m.cursor]
				sel.SetVisible(!sel.Visible())
			}
		case "+":
			kids := m.children()
			if len(kids) > 0 {
				sel := kids[m.cursor]
				ext := sel.AbsoluteExtent()
				sel.SetSize(scene.FixedSize(ext.X+2, ext.Y))
			}
		case "-":
			kids := m.children()
			if len(kids) > 0 {
				sel := kids[m.cursor]
				if ext := sel.AbsoluteExtent(); ext.X > 4 {
					sel.SetSize(scene.FixedSize(ext.X-2, ext.Y))
				}
			}
		case "tab", "right":
			if n := len(m.children()); n > 0 {
				m.cursor = (m.cursor + 1) % n
			}
		case "left":
			if n := len(m.children()); n > 0 {
				m.cursor = (m.cursor + n - 1) % n
			}
		case "f":
			if m.cfg.Direction == listlayout.Horizontal {
				m.cfg.Direction = listlayout.Vertical
			} else {
				m.cfg.Direction = listlayout.Horizontal
			}
			m.rebuildEngine()
		case "s":
			if m.cfg.SortOrder == listlayout.ByOrderIndex {
				m.cfg.SortOrder = listlayout.ByName
			} else {
				m.cfg.SortOrder = listlayout.ByOrderIndex
			}
			m.rebuildEngine()
		case "h":
			m.cfg.HorizontalAlign = (m.cfg.HorizontalAlign + 1) % 3
			m.rebuildEngine()
		case "b":
			m.cfg.VerticalAlign = (m.cfg.VerticalAlign + 1) % 3
			m.rebuildEngine()
		case "p":
			m.cfg.Padding.Offset = float64((int(m.cfg.Padding.Offset) + 1) % 5)
			m.rebuildEngine()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := float64(msg.Width - 4)
		h := float64(msg.Height - 8)
		if w < 20 {
			w = 20
		}
		if h < 6 {
			h = 6
		}
		m.root.SetSize(scene.FixedSize(w, h))
		// Container resizes are not a subscribed event; ask for a pass.
		m.engine.Recompute()
	}
	return m, nil
}

func (m *demoModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("listflow demo"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf(
		"direction=%s sort=%s h-align=%s v-align=%s padding=%.0f content=%.0f",
		m.cfg.Direction, m.cfg.SortOrder, m.cfg.HorizontalAlign,
		m.cfg.VerticalAlign, m.cfg.Padding.Offset, m.engine.ContentSize(),
	)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("a add  d delete  v visibility  +/- resize  tab select  f flip  s sort  h/b align  p padding  q quit"))
	b.WriteString("\n\n")
	b.WriteString(m.renderCanvas())
	return b.String()
}

// renderCanvas paints the container and its children into a cell grid.
func (m *demoModel) renderCanvas() string {
	ext := m.root.AbsoluteExtent()
	w, h := int(ext.X), int(ext.Y)
	if w <= 0 || h <= 0 {
		return ""
	}

	grid := make([][]string, h)
	for y := range grid {
		grid[y] = make([]string, w)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	if m.debug {
		for _, mk := range m.engine.Markers() {
			pos := mk.AbsolutePosition()
			paintMarker(grid, m.cfg.Direction, pos)
		}
	}

	for i, c := range m.children() {
		if !c.Visible() {
			continue
		}
		style := lipgloss.NewStyle().
			Foreground(childColors[c.OrderIndex()%len(childColors)])
		if i == m.cursor {
			style = style.Bold(true).Reverse(true)
		}
		paintBox(grid, c, style)
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorDim)

	rows := make([]string, h)
	for y := range grid {
		rows[y] = strings.Join(grid[y], "")
	}
	return border.Render(strings.Join(rows, "\n"))
}

// paintBox draws a child's rectangle with its name in the top-left cell.
func paintBox(grid [][]string, c *scene.Node, style lipgloss.Style) {
	pos := c.AbsolutePosition()
	ext := c.AbsoluteExtent()
	x0, y0 := int(pos.X), int(pos.Y)
	x1, y1 := x0+int(ext.X), y0+int(ext.Y)

	label := []rune(c.Name())
	for y := y0; y < y1; y++ {
		if y < 0 || y >= len(grid) {
			continue
		}
		for x := x0; x < x1; x++ {
			if x < 0 || x >= len(grid[y]) {
				continue
			}
			cell := "█"
			if y == y0 && x-x0 < len(label) {
				cell = string(label[x-x0])
			}
			grid[y][x] = style.Render(cell)
		}
	}
}

// paintMarker draws a marker as a thin line across the cross axis.
func paintMarker(grid [][]string, dir listlayout.Direction, pos scene.Vec2) {
	style := lipgloss.NewStyle().Foreground(colorGray)
	if dir == listlayout.Horizontal {
		x := int(pos.X)
		for y := range grid {
			if x >= 0 && x < len(grid[y]) {
				grid[y][x] = style.Render("┊")
			}
		}
		return
	}
	y := int(pos.Y)
	if y < 0 || y >= len(grid) {
		return
	}
	for x := range grid[y] {
		grid[y][x] = style.Render("┈")
	}
}
