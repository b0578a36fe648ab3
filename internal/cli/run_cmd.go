package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"dojoscore/internal/domain"
	"dojoscore/internal/report/pdfwriter"
)

// newRunCmd creates the "run" command, the interactive assessment wizard.
func newRunCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the assessment wizard needs an interactive terminal; try 'dojoscore preview' for a non-interactive sample")
			}

			reports := app.Reports
			if reports == nil {
				reports = &pdfwriter.Writer{OutDir: app.OutDir}
			}

			assessment := domain.NewAssessment(app.Categories)
			m := newWizardModel(app, assessment, reports)

			p := tea.NewProgram(m, tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("running wizard: %w", err)
			}

			// Report where the PDF went after the alt screen is torn down.
			if w, ok := final.(wizardModel); ok && w.reportPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Report saved to %s\n", w.reportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&app.OutDir, "out", app.OutDir, "directory for generated PDF reports")

	return cmd
}
