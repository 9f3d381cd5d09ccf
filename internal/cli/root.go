// Package cli implements labctl, the operator tool for site content and
// hero field snapshots.
package cli

import (
	"github.com/louisbranch/datalab/internal/cli/formatter"
	"github.com/louisbranch/datalab/internal/content"
	"github.com/spf13/cobra"
)

// App holds the state shared by labctl commands.
type App struct {
	// Location is where content commands read from. Root flags override it.
	Location content.Location
	Styler   formatter.Styler
}

// NewRootCmd creates the top-level "labctl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "labctl",
		Short:         "Research group site operator tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&app.Location.Dir, "content-dir", app.Location.Dir, "directory with projects.yaml, members.yaml and department.yaml")
	root.PersistentFlags().StringVar(&app.Location.DSN, "content-dsn", app.Location.DSN, "sqlite DSN to read content from")

	root.AddCommand(
		newContentCmd(app),
		newFieldCmd(app),
		newCatalogCmd(app),
	)

	return root
}
