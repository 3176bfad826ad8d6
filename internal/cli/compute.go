package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tesselkit/listflow/pkg/listlayout"
	"github.com/tesselkit/listflow/pkg/scene"
)

// computeCommand creates the compute command: load a TOML scene file, run
// one layout pass, and print the resolved child positions.
func (c *CLI) computeCommand() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "compute <scene.toml>",
		Short: "Lay out a scene file and print child positions",
		Long: `Compute loads a TOML scene file, binds a layout engine to its
container, and prints the resolved position of every child.

With --debug the engine also emits its layout markers (axis bounds,
midpoint, content region) and they are included in the output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			root, cfg, err := loadSceneFile(args[0])
			if err != nil {
				return err
			}

			engine, err := listlayout.New(root, cfg,
				listlayout.WithDebug(debug),
				listlayout.WithLogger(logger),
			)
			if err != nil {
				return err
			}
			defer engine.Destroy()

			logger.Debug("scene loaded",
				"container", root.Name(),
				"children", len(root.Children()),
				"direction", cfg.Direction.String(),
			)

			fmt.Fprintln(cmd.OutOrStdout(), renderLayoutTable(engine, root))
			fmt.Fprintf(cmd.OutOrStdout(), "content size along %s axis: %s\n",
				cfg.Direction, StyleValue.Render(fmt.Sprintf("%.2f", engine.ContentSize())))
			return nil
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "emit and print layout markers")
	return cmd
}

// renderLayoutTable formats the laid-out scene as a lipgloss table.
// Children come first in fill-axis order, then markers.
func renderLayoutTable(engine *listlayout.Engine, root *scene.Node) string {
	kids := root.Children()
	sort.SliceStable(kids, func(i, j int) bool {
		mi, mj := engine.IsMarker(kids[i]), engine.IsMarker(kids[j])
		if mi != mj {
			return !mi
		}
		pi, pj := kids[i].AbsolutePosition(), kids[j].AbsolutePosition()
		if engine.Config().Direction == listlayout.Horizontal {
			return pi.X < pj.X
		}
		return pi.Y < pj.Y
	})

	rows := [][]string{}
	for _, k := range kids {
		kind := "child"
		if engine.IsMarker(k) {
			kind = "marker"
		}
		if !k.Visible() {
			kind = "hidden"
		}
		pos := k.AbsolutePosition()
		ext := k.AbsoluteExtent()
		rows = append(rows, []string{
			k.Name(),
			kind,
			fmt.Sprintf("%d", k.OrderIndex()),
			fmt.Sprintf("%.2f", pos.X),
			fmt.Sprintf("%.2f", pos.Y),
			fmt.Sprintf("%.2f", ext.X),
			fmt.Sprintf("%.2f", ext.Y),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Kind", "Order", "X", "Y", "W", "H").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
		})
	return t.Render()
}
