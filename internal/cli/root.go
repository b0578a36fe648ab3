package cli

import (
	"github.com/spf13/cobra"

	"dojoscore/internal/domain"
	"dojoscore/internal/report"
)

// ReportWriter renders a laid-out report document to disk and returns
// the path it was written to.
type ReportWriter interface {
	Write(doc *report.Document, filename string) (string, error)
}

// App holds the catalogs and wiring used by CLI commands.
type App struct {
	Categories      []domain.Category
	Recommendations []domain.Recommendation

	// OutDir is where generated reports land. The run command's --out
	// flag overrides it.
	OutDir string

	// Reports overrides the default PDF writer. Left nil in production;
	// tests inject a fake here.
	Reports ReportWriter

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "dojoscore" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dojoscore",
		Short: "Martial arts school business self-assessment",
	}

	root.AddCommand(
		newRunCmd(app),
		newPreviewCmd(app),
		newCategoriesCmd(app),
		newVersionCmd(),
	)

	return root
}
