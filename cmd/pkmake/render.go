// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pkmake/pkmake/internal/issue"
	"github.com/pkmake/pkmake/internal/recipe"
)

// renderRequestTable renders a finalized request as a two-column
// field/value table.
func renderRequestTable(rec recipe.Recipe) string {
	rows := make([][]string, 0, len(rec.Describe()))
	for _, f := range rec.Describe() {
		rows = append(rows, []string{f.Name, f.Value})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers(rec.Target().String(), "Value").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})

	return t.String()
}

// printPlan writes one compiled command per line.
func printPlan(w io.Writer, plan recipe.Plan, styled bool) {
	for _, c := range plan {
		if styled {
			c = CmdStyle.Render(c)
		}
		fmt.Fprintln(w, c)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
