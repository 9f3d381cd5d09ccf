// Package content holds the read-only project, member and department records
// shown on the site.
//
// Records are loaded once at startup from a Source and handed out as copies;
// nothing in the site mutates them after load.
package content

import (
	"fmt"
	"strings"
)

// Status is the lifecycle stage of a research project.
type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusPlanned   Status = "planned"
)

// Statuses lists every known project status in display order.
func Statuses() []Status {
	return []Status{StatusOngoing, StatusCompleted, StatusPlanned}
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusOngoing, StatusCompleted, StatusPlanned:
		return true
	default:
		return false
	}
}

// ParseStatus parses a status value, trimming whitespace and case.
func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if !status.Valid() {
		return "", fmt.Errorf("unknown project status %q", value)
	}
	return status, nil
}

// Project is one research project card.
type Project struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Summary     string   `yaml:"summary"`
	Description string   `yaml:"description"`
	Thumbnail   string   `yaml:"thumbnail"`
	Tags        []string `yaml:"tags"`
	Status      Status   `yaml:"status"`
	Date        string   `yaml:"date"`
}

// Member is one research group member.
type Member struct {
	Name        string `yaml:"name"`
	Role        string `yaml:"role"`
	Major       string `yaml:"major"`
	Image       string `yaml:"image"`
	Description string `yaml:"description"`
}

// Professor is one faculty advisor listed with the department.
type Professor struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Research    string `yaml:"research"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

// Department describes the hosting academic department.
type Department struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	URL         string      `yaml:"url"`
	Professors  []Professor `yaml:"professors"`
}

// Snapshot is the full content set produced by a Source.
type Snapshot struct {
	Projects   []Project
	Members    []Member
	Department Department
}

func (p Project) clone() Project {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}

func (d Department) clone() Department {
	d.Professors = append([]Professor(nil), d.Professors...)
	return d
}

// Validate checks the snapshot for records the site cannot render.
func (s Snapshot) Validate() error {
	seen := make(map[string]int, len(s.Projects))
	for idx, project := range s.Projects {
		if strings.TrimSpace(project.Title) == "" {
			return fmt.Errorf("project %d: title is required", idx)
		}
		if !project.Status.Valid() {
			return fmt.Errorf("project %q: unknown status %q", project.Title, project.Status)
		}
		id := strings.TrimSpace(project.ID)
		if id == "" {
			return fmt.Errorf("project %q: id is required", project.Title)
		}
		if previous, ok := seen[id]; ok {
			return fmt.Errorf("project %q: id %q duplicates project %d", project.Title, id, previous)
		}
		seen[id] = idx
	}
	for idx, member := range s.Members {
		if strings.TrimSpace(member.Name) == "" {
			return fmt.Errorf("member %d: name is required", idx)
		}
	}
	return nil
}

// normalize fills derived fields (project ids) without touching the caller's
// slices.
func (s Snapshot) normalize() Snapshot {
	out := Snapshot{
		Projects:   make([]Project, 0, len(s.Projects)),
		Members:    append([]Member(nil), s.Members...),
		Department: s.Department.clone(),
	}
	for idx, project := range s.Projects {
		project = project.clone()
		project.ID = strings.TrimSpace(project.ID)
		if project.ID == "" {
			project.ID = fmt.Sprintf("project-%d", idx+1)
		}
		project.Status = Status(strings.ToLower(strings.TrimSpace(string(project.Status))))
		out.Projects = append(out.Projects, project)
	}
	return out
}
