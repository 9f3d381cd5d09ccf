package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/datalab/internal/platform/i18n/catalog"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the site copy catalogs",
	}

	cmd.AddCommand(newCatalogCheckCmd(app))

	return cmd
}

func newCatalogCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report locales missing base locale keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			coverage := catalog.Default().Coverage()
			rows := make([][]string, 0, len(coverage))
			var incomplete []string
			for _, c := range coverage {
				rows = append(rows, []string{c.Locale, strconv.Itoa(c.Messages), strconv.Itoa(len(c.Missing))})
				if len(c.Missing) > 0 {
					incomplete = append(incomplete, fmt.Sprintf("%s: %s", c.Locale, strings.Join(c.Missing, ", ")))
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, app.Styler.Header("catalogs"))
			fmt.Fprint(out, app.Styler.Table([]string{"LOCALE", "MESSAGES", "MISSING"}, rows))
			if len(incomplete) > 0 {
				for _, line := range incomplete {
					fmt.Fprintln(out, app.Styler.Error(line))
				}
				return fmt.Errorf("%d locale(s) missing keys from %s", len(incomplete), catalog.BaseLocale)
			}
			fmt.Fprintln(out, app.Styler.OK("all locales complete"))
			return nil
		},
	}
}
