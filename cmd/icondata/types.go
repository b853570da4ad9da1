// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/luoxiaozero/icondata/pkg/icon"
	"github.com/luoxiaozero/icondata/pkg/iconpkg"
)

func newTypesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported icon package families",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			renderTypes(app.stdout)
			return nil
		},
	}
}

// renderTypes prints every family with its default short name and the
// directories that become categories.
func renderTypes(w io.Writer) {
	rows := [][]string{{"TYPE", "SHORT NAME", "CATEGORY DIRECTORIES"}}
	for _, pt := range iconpkg.AllPackageTypes() {
		rows = append(rows, []string{pt.String(), pt.DefaultShortName(), categoryColumn(pt)})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	for i, row := range rows {
		style := lipgloss.NewStyle()
		if i == 0 {
			style = tableHeaderStyle
		}
		cells := make([]string, len(row))
		for j, cell := range row {
			cellStyle := style
			if j < len(row)-1 {
				cellStyle = style.Width(widths[j] + 2)
			}
			cells[j] = cellStyle.Render(cell)
		}
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	sizes := make([]string, 0, len(icon.AllIconSizes()))
	for _, s := range icon.AllIconSizes() {
		sizes = append(sizes, s.Numeral()+"="+s.String())
	}
	fmt.Fprintf(w, "\n%s %s\n", SubtitleStyle.Render("Sizes:"), strings.Join(sizes, " "))
}

func categoryColumn(pt iconpkg.PackageType) string {
	if pt == iconpkg.FluentUISystemIcons {
		return "(every directory)"
	}
	dirs := pt.CategoryDirs()
	if len(dirs) == 0 {
		return "-"
	}
	return strings.Join(dirs, ", ")
}
