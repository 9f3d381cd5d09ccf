package view

import (
	"strings"

	"github.com/louisbranch/datalab/internal/content"
	"github.com/louisbranch/datalab/internal/services/site/routepath"
)

// DetailView is the project detail overlay.
type DetailView struct {
	ID        string
	Title     string
	Lines     []string
	Date      string
	Tags      []string
	Badge     Badge
	Thumbnail string
	// CloseURL is the page URL the close control falls back to without
	// scripts.
	CloseURL string
}

// Detail builds the overlay record for project. Description line breaks are
// kept as separate lines.
func Detail(project content.Project, copy Copy) DetailView {
	var lines []string
	if project.Description != "" {
		lines = strings.Split(strings.ReplaceAll(project.Description, "\r\n", "\n"), "\n")
	}
	return DetailView{
		ID:        project.ID,
		Title:     project.Title,
		Lines:     lines,
		Date:      project.Date,
		Tags:      append([]string(nil), project.Tags...),
		Badge:     StatusBadge(project.Status, copy),
		Thumbnail: Image(project.Thumbnail),
		CloseURL:  CloseURL(content.FilterAll),
	}
}

// CloseURL returns the page URL showing the gallery under filter with no
// overlay open.
func CloseURL(filter content.Filter) string {
	return routepath.PageState(string(filter), "") + routepath.AnchorProjects
}
