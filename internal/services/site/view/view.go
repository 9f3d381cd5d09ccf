// Package view builds presentation records from content. Nothing here
// touches HTML; the templates package materializes these records.
package view

import (
	"fmt"
	"strings"

	"github.com/louisbranch/datalab/internal/content"
	"github.com/louisbranch/datalab/internal/services/site/routepath"
)

// PlaceholderImage replaces missing image references.
const PlaceholderImage = "/static/placeholder.svg"

// StaggerBuckets is the number of cyclic entrance-delay groups.
const StaggerBuckets = 4

// Status badge colors.
const (
	ColorOngoing   = "#3b82f6"
	ColorCompleted = "#10b981"
	ColorPlanned   = "#8b5cf6"
)

// Copy supplies the localized labels the builders need.
type Copy interface {
	StatusLabel(content.Status) string
	FilterLabel(content.Filter) string
	Research(area string) string
}

// Badge is a colored status pill.
type Badge struct {
	Label string
	Color string
}

// StatusBadge returns the badge for status. Statuses other than ongoing and
// completed use the planned color.
func StatusBadge(status content.Status, copy Copy) Badge {
	label := string(status)
	if copy != nil {
		label = copy.StatusLabel(status)
	}
	return Badge{Label: label, Color: StatusColor(status)}
}

// StatusColor maps status to its badge color.
func StatusColor(status content.Status) string {
	switch status {
	case content.StatusOngoing:
		return ColorOngoing
	case content.StatusCompleted:
		return ColorCompleted
	default:
		return ColorPlanned
	}
}

// Stagger returns the entrance-delay class for the item at index.
func Stagger(index int) string {
	if index < 0 {
		index = -index
	}
	return fmt.Sprintf("stagger-%d", index%StaggerBuckets+1)
}

// Image returns src, or the placeholder when src is blank.
func Image(src string) string {
	if src = strings.TrimSpace(src); src != "" {
		return src
	}
	return PlaceholderImage
}

// ProjectCard is one gallery card.
type ProjectCard struct {
	ID        string
	Title     string
	Category  string
	Summary   string
	Thumbnail string
	Tags      []string
	Badge     Badge
	Stagger   string
	RevealID  string
	DetailURL string
	PageURL   string
}

// ProjectRevealID is the reveal target id for a project card.
func ProjectRevealID(id string) string {
	return "project-card-" + id
}

// Projects builds gallery cards for the projects matching filter, keeping
// their relative order. Stagger buckets follow the filtered position.
func Projects(projects []content.Project, filter content.Filter, copy Copy) []ProjectCard {
	filtered := content.FilterProjects(projects, filter)
	cards := make([]ProjectCard, 0, len(filtered))
	for i, p := range filtered {
		cards = append(cards, ProjectCard{
			ID:        p.ID,
			Title:     p.Title,
			Category:  p.Category,
			Summary:   p.Summary,
			Thumbnail: Image(p.Thumbnail),
			Tags:      append([]string(nil), p.Tags...),
			Badge:     StatusBadge(p.Status, copy),
			Stagger:   Stagger(i),
			RevealID:  ProjectRevealID(p.ID),
			DetailURL: routepath.ProjectInFilter(p.ID, string(filter)),
			PageURL:   routepath.PageState(string(filter), p.ID),
		})
	}
	return cards
}

// RevealIDs lists the reveal targets of cards in order.
func RevealIDs(cards []ProjectCard) []string {
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.RevealID)
	}
	return ids
}

// FilterControl is one filter button.
type FilterControl struct {
	Filter  content.Filter
	Label   string
	Count   int
	Active  bool
	URL     string
	PageURL string
}

// Filters builds the filter bar with exactly one active control.
func Filters(active content.Filter, counts map[content.Filter]int, copy Copy) []FilterControl {
	active = content.ParseFilter(string(active))
	controls := make([]FilterControl, 0, len(content.Filters()))
	for _, f := range content.Filters() {
		label := string(f)
		if copy != nil {
			label = copy.FilterLabel(f)
		}
		controls = append(controls, FilterControl{
			Filter:  f,
			Label:   label,
			Count:   counts[f],
			Active:  f == active,
			URL:     routepath.ProjectsFiltered(string(f)),
			PageURL: routepath.PageState(string(f), ""),
		})
	}
	return controls
}
