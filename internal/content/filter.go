package content

import "strings"

// Filter selects which projects a gallery view shows.
type Filter string

const (
	// FilterAll is the identity filter.
	FilterAll       Filter = "all"
	FilterOngoing   Filter = Filter(StatusOngoing)
	FilterCompleted Filter = Filter(StatusCompleted)
	FilterPlanned   Filter = Filter(StatusPlanned)
)

// Filters lists the filter controls in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterOngoing, FilterCompleted, FilterPlanned}
}

// ParseFilter maps a raw filter value to a Filter. Unknown or empty values
// fall back to FilterAll.
func ParseFilter(value string) Filter {
	filter := Filter(strings.ToLower(strings.TrimSpace(value)))
	switch filter {
	case FilterOngoing, FilterCompleted, FilterPlanned:
		return filter
	default:
		return FilterAll
	}
}

// Matches reports whether a project with status passes the filter.
func (f Filter) Matches(status Status) bool {
	if f == FilterAll {
		return true
	}
	return Status(f) == status
}

// FilterProjects returns the projects whose status matches filter, keeping
// their relative order. The input slice is never modified.
func FilterProjects(projects []Project, filter Filter) []Project {
	filter = ParseFilter(string(filter))
	out := make([]Project, 0, len(projects))
	for _, project := range projects {
		if filter.Matches(project.Status) {
			out = append(out, project.clone())
		}
	}
	return out
}
