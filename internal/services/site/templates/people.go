package templates

import (
	"context"

	"github.com/a-h/templ"
	siteI18n "github.com/louisbranch/datalab/internal/services/site/platform/i18n"
	"github.com/louisbranch/datalab/internal/services/site/view"
)

// MembersSection renders the flippable roster. Both faces are always in the
// markup; the flip is CSS on hover, focus, or the flipped class set by tap.
func MembersSection(sc siteI18n.SiteCopy, members []view.MemberCard) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.open("section", "id", "members", "class", "section")
		m.open("div", "class", "section-header reveal-up", "data-reveal", "members-header")
		m.el("h2", sc.MembersTitle, "class", "section-title")
		m.el("p", sc.MembersSubtitle, "class", "section-subtitle")
		m.close("div")
		m.open("div", "id", "members-grid", "class", "members-grid")
		if len(members) == 0 {
			m.el("p", sc.MembersEmpty, "class", "empty-state")
		}
		for _, member := range members {
			m.open("div",
				"id", member.RevealID,
				"class", classes("flip-card", "reveal-up", member.Stagger),
				"data-reveal", member.RevealID,
				"tabindex", "0",
			)
			m.open("div", "class", "flip-card-inner")

			m.open("div", "class", "flip-card-front glass-card")
			m.open("div", "class", "member-photo")
			m.open("img", "src", safeURL(member.Image), "alt", member.Name, "loading", "lazy")
			m.close("div")
			m.open("div", "class", "member-info")
			m.el("div", member.Role, "class", "member-role")
			m.el("h3", member.Name, "class", "member-name")
			m.el("div", member.Major, "class", "member-major")
			m.close("div")
			m.close("div")

			m.open("div", "class", "flip-card-back")
			m.el("h3", member.Name, "class", "member-name")
			m.raw(`<div class="divider"></div>`)
			if member.Description != "" {
				m.el("p", "“"+member.Description+"”", "class", "member-quote")
			}
			m.close("div")

			m.close("div")
			m.close("div")
		}
		m.close("div")
		m.close("section")
	})
}

// DepartmentSection renders the department introduction and professor cards.
func DepartmentSection(sc siteI18n.SiteCopy, dept view.DepartmentView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.open("section", "id", "department", "class", "section")
		m.open("div", "id", "department-container", "class", "department")

		m.open("div", "id", dept.RevealID, "class", "department-intro reveal-fade", "data-reveal", dept.RevealID)
		m.el("h2", dept.Title, "class", "section-title")
		m.raw(`<div class="divider divider-wide"></div>`)
		m.el("p", dept.Description, "class", "department-description")
		if dept.HasURL() {
			m.el("a", sc.DepartmentVisit,
				"href", safeURL(dept.URL),
				"class", "btn btn-outline",
				"target", "_blank",
				"rel", "noopener noreferrer",
			)
		}
		m.close("div")

		m.open("div", "class", "professors")
		for _, prof := range dept.Professors {
			m.open("div",
				"id", prof.RevealID,
				"class", classes("glass-card", "professor-card", "reveal-up", prof.Stagger),
				"data-reveal", prof.RevealID,
			)
			m.open("img", "class", "professor-photo", "src", safeURL(prof.Image), "alt", prof.Name, "loading", "lazy")
			m.open("div")
			m.el("h4", prof.Name, "class", "professor-name")
			m.el("div", prof.Title, "class", "professor-title")
			if prof.Research != "" {
				m.el("div", prof.Research, "class", "professor-research")
			}
			m.el("p", prof.Description, "class", "professor-description")
			m.close("div")
			m.close("div")
		}
		m.close("div")

		m.close("div")
		m.close("section")
	})
}
