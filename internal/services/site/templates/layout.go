package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/datalab/internal/reveal"
	siteI18n "github.com/louisbranch/datalab/internal/services/site/platform/i18n"
	"github.com/louisbranch/datalab/internal/services/site/routepath"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// Toast is a one-time notice shown at the top of a full page.
type Toast struct {
	Kind    string
	Message string
}

// LayoutOptions carries shared chrome for a full page.
type LayoutOptions struct {
	Title     string
	Copy      siteI18n.SiteCopy
	Languages []siteI18n.LanguageOption
	Toast     *Toast
	MenuOpen  bool
	Reveal    reveal.Options
	// Overlay is rendered into the shared overlay container. Nil renders
	// the closed overlay.
	Overlay templ.Component
}

// Layout renders the document shell around the children in ctx.
func Layout(opts LayoutOptions) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		sc := opts.Copy
		title := opts.Title
		if title == "" {
			title = sc.MetaTitle
		}
		lang := sc.Lang
		if lang == "" {
			lang = "ko-KR"
		}
		threshold, margin := revealConfig(opts.Reveal)

		m.raw("<!doctype html>")
		m.open("html", "lang", lang)
		m.open("head")
		m.raw(`<meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.open("meta", "name", "description", "content", sc.MetaDescription)
		m.el("title", title)
		m.open("link", "rel", "stylesheet", "href", routepath.Static+"site.css")
		m.open("link", "rel", "icon", "href", routepath.Static+"placeholder.svg")
		m.open("script", "src", htmxScript, "defer?", "true")
		m.close("script")
		m.open("script", "src", routepath.Static+"site.js", "defer?", "true")
		m.close("script")
		m.close("head")

		m.open("body",
			"data-reveal-threshold", threshold,
			"data-reveal-margin", margin,
		)
		m.render(ctx, navigation(opts))
		if opts.Toast != nil && opts.Toast.Message != "" {
			m.open("div", "id", "toast", "class", classes("toast", "toast-"+opts.Toast.Kind), "role", "status")
			m.text(opts.Toast.Message)
			m.close("div")
		}
		m.open("main", "id", "main")
		m.children(ctx)
		m.close("main")
		m.open("footer", "class", "footer")
		m.el("p", sc.Footer)
		m.close("footer")
		m.render(ctx, overlayShell(opts.Overlay))
		m.close("body")
		m.close("html")
	})
}

func revealConfig(opts reveal.Options) (string, string) {
	if opts == (reveal.Options{}) {
		opts = reveal.DefaultOptions()
	}
	threshold := strconv.FormatFloat(opts.Threshold, 'f', -1, 64)
	margin := "0px 0px -" + strconv.FormatFloat(opts.BottomMargin, 'f', -1, 64) + "px 0px"
	return threshold, margin
}

func navigation(opts LayoutOptions) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		sc := opts.Copy
		m.open("nav", "id", "navbar", "class", "navbar")
		m.open("a", "class", "brand", "href", routepath.AnchorHome)
		m.text(sc.Brand)
		m.close("a")

		m.open("button",
			"id", "mobile-menu-btn",
			"type", "button",
			"class", classes("menu-toggle", activeClass(opts.MenuOpen)),
			"aria-label", sc.Nav.Menu,
			"aria-controls", "nav-links",
			"aria-expanded", boolString(opts.MenuOpen),
		)
		m.raw(`<span></span><span></span><span></span>`)
		m.close("button")

		m.open("ul", "id", "nav-links", "class", classes("nav-links", activeClass(opts.MenuOpen)))
		for _, link := range []struct{ href, label string }{
			{routepath.AnchorHome, sc.Nav.Home},
			{routepath.AnchorProjects, sc.Nav.Projects},
			{routepath.AnchorMembers, sc.Nav.Members},
			{routepath.AnchorDepartment, sc.Nav.Department},
			{routepath.AnchorContact, sc.Nav.Contact},
			{routepath.AnchorApply, sc.Nav.Apply},
		} {
			m.open("li")
			m.el("a", link.label, "href", link.href)
			m.close("li")
		}
		if len(opts.Languages) > 0 {
			m.open("li", "class", "language-switch", "aria-label", sc.Nav.Language)
			for _, option := range opts.Languages {
				m.el("a", option.Label,
					"href", option.URL,
					"hreflang", option.Tag,
					"class", activeClass(option.Active),
					"aria-current", ariaCurrent(option.Active),
				)
			}
			m.close("li")
		}
		m.close("ul")
		m.close("nav")
	})
}

func activeClass(on bool) string {
	if on {
		return "active"
	}
	return ""
}

func ariaCurrent(on bool) string {
	if on {
		return "true"
	}
	return ""
}
