package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dojoscore/internal/catalog"
	"dojoscore/internal/cli/formatter"
	"dojoscore/internal/report"
	"dojoscore/internal/report/pdfwriter"
)

// newPreviewCmd creates the "preview" command, which prints the results
// screen for the bundled sample assessment without running the wizard.
func newPreviewCmd(app *App) *cobra.Command {
	var writePDF bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show sample results without taking the assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			sample := catalog.SampleAssessment()
			sample.SetUserInfo(catalog.SampleUserInfo)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Sample results for %s", catalog.SampleUserInfo.Name)))
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderResults(sample, app.Recommendations, true))

			if !writePDF {
				return nil
			}

			reports := app.Reports
			if reports == nil {
				reports = &pdfwriter.Writer{OutDir: app.OutDir}
			}
			now := time.Now()
			doc := report.Build(sample, now)
			path, err := reports.Write(doc, report.Filename(catalog.SampleUserInfo.Name, now))
			if err != nil {
				return fmt.Errorf("writing sample report: %w", err)
			}
			fmt.Fprintf(out, "Report saved to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&writePDF, "pdf", false, "also write the sample report as a PDF")
	cmd.Flags().StringVar(&app.OutDir, "out", app.OutDir, "directory for generated PDF reports")

	return cmd
}
