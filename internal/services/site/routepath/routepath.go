// Package routepath centralizes site route constants and builders.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root         = "/"
	Health       = "/healthz"
	Static       = "/static/"
	OverlayClose = "/overlay/close"

	ProjectsPrefix = "/projects/"
	Projects       = "/projects"

	FormsPrefix = "/forms/"
	Contact     = "/forms/contact"
	Apply       = "/forms/apply"

	HeroPrefix = "/hero/"
	HeroSVG    = "/hero/field.svg"
	HeroPNG    = "/hero/field.png"
	HeroTyping = "/hero/typing"
	HeroStream = "/hero/stream"
)

// Section anchors on the single page.
const (
	AnchorHome       = "#home"
	AnchorProjects   = "#projects"
	AnchorMembers    = "#members"
	AnchorDepartment = "#department"
	AnchorContact    = "#contact"
	AnchorApply      = "#apply"
)

// ProjectsFiltered returns the grid fragment URL for filter.
func ProjectsFiltered(filter string) string {
	return withQuery(Projects, url.Values{"filter": {strings.TrimSpace(filter)}})
}

// Project returns the detail overlay fragment URL for id.
func Project(id string) string {
	return ProjectsPrefix + url.PathEscape(strings.TrimSpace(id))
}

// ProjectInFilter returns the detail overlay fragment URL for id, carrying
// the gallery filter the overlay was opened from.
func ProjectInFilter(id, filter string) string {
	query := url.Values{}
	if filter = strings.TrimSpace(filter); filter != "all" {
		query.Set("filter", filter)
	}
	return withQuery(Project(id), query)
}

// PageState returns the full-page URL carrying filter and open project.
func PageState(filter, projectID string) string {
	query := url.Values{}
	if filter = strings.TrimSpace(filter); filter != "" && filter != "all" {
		query.Set("filter", filter)
	}
	if projectID = strings.TrimSpace(projectID); projectID != "" {
		query.Set("project", projectID)
	}
	return withQuery(Root, query)
}

func withQuery(path string, query url.Values) string {
	for key, values := range query {
		if len(values) == 0 || values[0] == "" {
			query.Del(key)
		}
	}
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
