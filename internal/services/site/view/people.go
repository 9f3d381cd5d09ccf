package view

import (
	"fmt"
	"strings"

	"github.com/louisbranch/datalab/internal/content"
)

// MemberCard is a flippable roster card. The flip is presentational; both
// faces are always rendered.
type MemberCard struct {
	Name        string
	Role        string
	Major       string
	Image       string
	Description string
	Stagger     string
	RevealID    string
}

// Members builds roster cards in input order.
func Members(members []content.Member) []MemberCard {
	cards := make([]MemberCard, 0, len(members))
	for i, m := range members {
		cards = append(cards, MemberCard{
			Name:        m.Name,
			Role:        m.Role,
			Major:       m.Major,
			Image:       Image(m.Image),
			Description: m.Description,
			Stagger:     Stagger(i),
			RevealID:    fmt.Sprintf("member-%d", i+1),
		})
	}
	return cards
}

// ProfessorCard is one faculty card in the department section.
type ProfessorCard struct {
	Name        string
	Title       string
	Research    string
	Description string
	Image       string
	Stagger     string
	RevealID    string
}

// DepartmentView is the department section.
type DepartmentView struct {
	Title       string
	Description string
	URL         string
	RevealID    string
	Professors  []ProfessorCard
}

// HasURL reports whether the homepage link should be shown.
func (d DepartmentView) HasURL() bool {
	return strings.TrimSpace(d.URL) != ""
}

// Department builds the department section.
func Department(info content.Department, copy Copy) DepartmentView {
	view := DepartmentView{
		Title:       info.Title,
		Description: info.Description,
		URL:         strings.TrimSpace(info.URL),
		RevealID:    "department-intro",
		Professors:  make([]ProfessorCard, 0, len(info.Professors)),
	}
	for i, p := range info.Professors {
		research := p.Research
		if copy != nil && research != "" {
			research = copy.Research(p.Research)
		}
		view.Professors = append(view.Professors, ProfessorCard{
			Name:        p.Name,
			Title:       p.Title,
			Research:    research,
			Description: p.Description,
			Image:       Image(p.Image),
			Stagger:     Stagger(i),
			RevealID:    fmt.Sprintf("professor-%d", i+1),
		})
	}
	return view
}
