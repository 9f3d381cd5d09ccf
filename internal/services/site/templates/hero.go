package templates

import (
	"context"

	"github.com/a-h/templ"
	siteI18n "github.com/louisbranch/datalab/internal/services/site/platform/i18n"
	"github.com/louisbranch/datalab/internal/services/site/routepath"
)

// Hero renders the banner with the particle field and the typed text.
func Hero(sc siteI18n.SiteCopy, typing string) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.open("section", "id", "home", "class", "hero")
		m.open("div", "id", "hero-field", "class", "hero-field", "aria-hidden", "true",
			"data-stream", routepath.HeroStream)
		m.open("img", "src", routepath.HeroSVG, "alt", "", "width", "1200", "height", "800")
		m.close("div")

		m.open("div", "class", "hero-content reveal-fade", "data-reveal", "hero-content")
		m.el("p", sc.HeroEyebrow, "class", "hero-eyebrow")
		m.el("h1", sc.HeroTitle, "class", "hero-title")
		m.open("p", "class", "hero-typing")
		m.render(ctx, TypingText(typing))
		m.el("span", "|", "class", "cursor", "aria-hidden", "true")
		m.close("p")
		m.open("div", "class", "hero-actions")
		m.el("a", sc.HeroCTAProjects, "class", "btn btn-primary", "href", routepath.AnchorProjects)
		m.el("a", sc.HeroCTAApply, "class", "btn btn-outline", "href", routepath.AnchorApply)
		m.close("div")
		m.close("div")
		m.close("section")
	})
}

// TypingText renders the typed-text span. It polls the typing endpoint when
// the event stream is unavailable.
func TypingText(text string) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.el("span", text,
			"id", "typing-text",
			"hx-get", routepath.HeroTyping,
			"hx-trigger", "every 2s [!window.datalabStream]",
			"hx-swap", "outerHTML",
		)
	})
}
