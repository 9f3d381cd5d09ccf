package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	siteI18n "github.com/louisbranch/datalab/internal/services/site/platform/i18n"
	"github.com/louisbranch/datalab/internal/services/site/routepath"
	"github.com/louisbranch/datalab/internal/services/site/view"
)

// ProjectsSection renders the projects heading and the filterable panel.
func ProjectsSection(sc siteI18n.SiteCopy, filters []view.FilterControl, cards []view.ProjectCard) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.open("section", "id", "projects", "class", "section")
		m.open("div", "class", "section-header reveal-up", "data-reveal", "projects-header")
		m.el("h2", sc.ProjectsTitle, "class", "section-title")
		m.el("p", sc.ProjectsSubtitle, "class", "section-subtitle")
		m.close("div")
		m.render(ctx, ProjectsPanel(sc, filters, cards))
		m.close("section")
	})
}

// ProjectsPanel renders the filter bar and the grid. Filter changes swap the
// whole panel, so the active control and the grid never disagree.
func ProjectsPanel(sc siteI18n.SiteCopy, filters []view.FilterControl, cards []view.ProjectCard) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.open("div", "id", "projects-panel", "class", "projects-panel")
		m.open("div", "id", "project-filters", "class", "filters", "role", "toolbar")
		for _, f := range filters {
			m.open("a",
				"href", f.PageURL+routepath.AnchorProjects,
				"class", classes("filter-btn", activeFilterClass(f.Active)),
				"data-filter", string(f.Filter),
				"aria-pressed", boolString(f.Active),
				"hx-get", f.URL,
				"hx-target", "#projects-panel",
				"hx-swap", "outerHTML swap:300ms",
				"hx-push-url", f.PageURL,
			)
			m.text(f.Label)
			m.el("span", strconv.Itoa(f.Count), "class", "filter-count")
			m.close("a")
		}
		m.close("div")

		m.open("div", "id", "projects-grid", "class", "projects-grid")
		if len(cards) == 0 {
			m.el("p", sc.ProjectsEmpty, "class", "empty-state")
		}
		for _, card := range cards {
			m.render(ctx, projectCard(card))
		}
		m.close("div")
		m.close("div")
	})
}

func activeFilterClass(on bool) string {
	if on {
		return "active-filter"
	}
	return ""
}

func projectCard(card view.ProjectCard) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.open("a",
			"id", card.RevealID,
			"class", classes("glass-card", "project-card", "reveal-up", card.Stagger),
			"data-reveal", card.RevealID,
			"data-project", card.ID,
			"href", card.PageURL,
			"hx-get", card.DetailURL,
			"hx-target", "#project-modal",
			"hx-swap", "outerHTML",
		)
		m.open("div", "class", "card-media")
		m.open("img", "class", "card-img", "src", safeURL(card.Thumbnail), "alt", card.Title, "loading", "lazy")
		m.el("span", card.Badge.Label, "class", "status-badge", "style", "background: "+card.Badge.Color)
		m.close("div")
		m.open("div", "class", "card-body")
		m.el("div", card.Category, "class", "card-category")
		m.el("h3", card.Title, "class", "card-title")
		m.el("p", card.Summary, "class", "card-summary")
		tagList(m, card.Tags, "tag")
		m.close("div")
		m.close("a")
	})
}

func tagList(m *markup, tags []string, class string) {
	if len(tags) == 0 {
		return
	}
	m.open("ul", "class", "tags")
	for _, tag := range tags {
		m.el("li", "#"+tag, "class", class)
	}
	m.close("ul")
}

// DetailOverlay renders the open project overlay. The close control and the
// scrim both request the closed overlay.
func DetailOverlay(sc siteI18n.SiteCopy, detail view.DetailView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.open("div",
			"id", "project-modal",
			"class", "modal open",
			"role", "dialog",
			"aria-modal", "true",
			"aria-labelledby", "modal-title",
			"data-scroll-lock", "true",
			"data-project", detail.ID,
			"hx-get", routepath.OverlayClose,
			"hx-trigger", "click[target.id=='project-modal'], keyup[key=='Escape'] from:body",
			"hx-swap", "outerHTML",
		)
		m.open("div", "id", "modal-content-area", "class", "modal-content")
		m.open("a",
			"id", "close-modal",
			"class", "modal-close",
			"href", detail.CloseURL,
			"aria-label", sc.DetailClose,
			"hx-get", routepath.OverlayClose,
			"hx-target", "#project-modal",
			"hx-swap", "outerHTML",
		)
		m.raw("&times;")
		m.close("a")

		m.open("div", "id", "modal-body", "class", "modal-body")
		m.open("div", "class", "modal-media")
		m.open("img", "src", safeURL(detail.Thumbnail), "alt", detail.Title)
		m.close("div")
		m.open("div", "class", "modal-meta")
		m.el("span", detail.Badge.Label, "class", "status-badge", "style", "background: "+detail.Badge.Color)
		m.el("span", detail.Date, "class", "modal-date")
		m.close("div")
		m.el("h2", detail.Title, "id", "modal-title")
		m.open("div", "class", "modal-description")
		for i, line := range detail.Lines {
			if i > 0 {
				m.raw("<br>")
			}
			m.text(line)
		}
		m.close("div")
		tagList(m, detail.Tags, "tag tag-accent")
		m.close("div")
		m.close("div")
		m.close("div")
	})
}

// OverlayClosed renders the empty overlay container.
func OverlayClosed() templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.open("div", "id", "project-modal", "class", "modal", "aria-hidden", "true")
		m.close("div")
	})
}

func overlayShell(overlay templ.Component) templ.Component {
	if overlay == nil {
		return OverlayClosed()
	}
	return overlay
}
