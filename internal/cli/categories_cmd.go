package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dojoscore/internal/cli/formatter"
)

// newCategoriesCmd creates the "categories" command, which lists the
// assessment areas and their checklist sizes.
func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the assessed business areas",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(app.Categories))
			for i, c := range app.Categories {
				rows = append(rows, []string{
					formatter.Dim(fmt.Sprintf("%2d", i+1)),
					formatter.Bold(c.Title),
					fmt.Sprintf("%d items", len(c.ChecklistItems)),
					c.Description,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"#", "Category", "Checklist", "Description"}, rows))
			return nil
		},
	}
}
