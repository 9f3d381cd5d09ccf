package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/louisbranch/datalab/internal/content"
	"github.com/spf13/cobra"
)

func newContentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect and import site content",
	}

	cmd.AddCommand(
		newContentValidateCmd(app),
		newContentListCmd(app),
		newContentShowCmd(app),
		newContentImportCmd(app),
	)

	return cmd
}

func newContentValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load content and report whether it is valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Location.Open(cmd.Context())
			if err != nil {
				return err
			}
			counts := store.Counts()
			fmt.Fprintln(cmd.OutOrStdout(), app.Styler.OK("content ok"))
			fmt.Fprintln(cmd.OutOrStdout(), app.Styler.Dim(fmt.Sprintf(
				"source=%s projects=%d ongoing=%d completed=%d planned=%d members=%d professors=%d",
				app.Location,
				counts[content.FilterAll],
				counts[content.FilterOngoing],
				counts[content.FilterCompleted],
				counts[content.FilterPlanned],
				len(store.Members()),
				len(store.Department().Professors),
			)))
			return nil
		},
	}
}

func newContentListCmd(app *App) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects in gallery order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Location.Open(cmd.Context())
			if err != nil {
				return err
			}
			selected := content.ParseFilter(filter)
			projects := store.FilteredProjects(selected)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, app.Styler.Header("projects: "+string(selected)))
			if len(projects) == 0 {
				fmt.Fprintln(out, app.Styler.Dim("no projects"))
				return nil
			}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []string{p.ID, p.Title, app.Styler.Status(p.Status), p.Date, strings.Join(p.Tags, ", ")})
			}
			fmt.Fprint(out, app.Styler.Table([]string{"ID", "TITLE", "STATUS", "DATE", "TAGS"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", string(content.FilterAll), "status filter: all, ongoing, completed or planned")

	return cmd
}

func newContentShowCmd(app *App) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Render one project's detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Location.Open(cmd.Context())
			if err != nil {
				return err
			}
			project, ok := store.Project(args[0])
			if !ok {
				return fmt.Errorf("project %q not found", args[0])
			}

			style := glamour.WithStandardStyle("notty")
			if app.Styler.Color {
				style = glamour.WithAutoStyle()
			}
			renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
			if err != nil {
				return fmt.Errorf("create renderer: %w", err)
			}
			rendered, err := renderer.Render(projectMarkdown(project))
			if err != nil {
				return fmt.Errorf("render project %s: %w", project.ID, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "wrap width")

	return cmd
}

func projectMarkdown(p content.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	facts := []string{"**Status:** " + string(p.Status)}
	if p.Date != "" {
		facts = append(facts, "**Date:** "+p.Date)
	}
	if p.Category != "" {
		facts = append(facts, "**Category:** "+p.Category)
	}
	b.WriteString(strings.Join(facts, " | ") + "\n\n")
	if p.Summary != "" {
		fmt.Fprintf(&b, "> %s\n\n", p.Summary)
	}
	for _, line := range strings.Split(p.Description, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			b.WriteString(line + "\n\n")
		}
	}
	if len(p.Tags) > 0 {
		tags := make([]string, 0, len(p.Tags))
		for _, tag := range p.Tags {
			tags = append(tags, "`"+tag+"`")
		}
		b.WriteString("Tags: " + strings.Join(tags, " ") + "\n")
	}
	return b.String()
}

func newContentImportCmd(app *App) *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy YAML content into a sqlite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn = strings.TrimSpace(dsn)
			if dsn == "" {
				return errors.New("--dsn is required")
			}
			source := content.EmbeddedSource()
			if dir := strings.TrimSpace(app.Location.Dir); dir != "" {
				source = content.DirSource(dir)
			}
			snapshot, err := source.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := snapshot.Validate(); err != nil {
				return fmt.Errorf("validate content: %w", err)
			}

			db, err := content.OpenSQLite(cmd.Context(), dsn)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := content.Import(cmd.Context(), db, snapshot); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), app.Styler.OK(fmt.Sprintf(
				"imported %d projects and %d members into %s",
				len(snapshot.Projects), len(snapshot.Members), dsn,
			)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "target sqlite DSN")

	return cmd
}
