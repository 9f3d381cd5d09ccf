package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/datalab/internal/forms"
	siteI18n "github.com/louisbranch/datalab/internal/services/site/platform/i18n"
	"github.com/louisbranch/datalab/internal/services/site/routepath"
)

// FormView is one form panel.
type FormView struct {
	Kind    forms.Kind
	Action  string
	Copy    siteI18n.FormCopy
	Values  map[string]string
	Ack     string
	Receipt string
}

// PanelID is the swap target id of the form panel.
func (f FormView) PanelID() string {
	return string(f.Kind) + "-panel"
}

// FormSection renders the section wrapping a form panel.
func FormSection(f FormView) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.open("section", "id", string(f.Kind), "class", "section form-section")
		m.open("div", "class", "section-header reveal-up", "data-reveal", string(f.Kind)+"-header")
		m.el("h2", f.Copy.Title, "class", "section-title")
		m.el("p", f.Copy.Subtitle, "class", "section-subtitle")
		m.close("div")
		m.render(ctx, FormPanel(f))
		m.close("section")
	})
}

// FormPanel renders the form and, after a submission, its acknowledgment.
// The panel is replaced as a whole on submit.
func FormPanel(f FormView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.open("div", "id", f.PanelID(), "class", "glass-card form-panel")
		if f.Ack != "" {
			m.open("div", "class", "form-ack", "role", "status")
			m.el("p", f.Ack)
			if f.Receipt != "" {
				m.el("p", f.Receipt, "class", "form-receipt")
			}
			m.close("div")
		}
		m.open("form",
			"id", string(f.Kind)+"-form",
			"method", "post",
			"action", f.Action,
			"hx-post", f.Action,
			"hx-target", "#"+f.PanelID(),
			"hx-swap", "outerHTML",
		)
		for _, name := range f.Kind.Fields() {
			inputID := string(f.Kind) + "-" + name
			m.open("div", "class", "form-field")
			m.el("label", f.Copy.Label(name), "for", inputID)
			switch name {
			case "message", "motivation":
				m.open("textarea", "id", inputID, "name", name, "rows", "5")
				m.text(f.Values[name])
				m.close("textarea")
			case "email":
				m.open("input", "id", inputID, "name", name, "type", "email", "value", f.Values[name], "autocomplete", "email")
			default:
				m.open("input", "id", inputID, "name", name, "type", "text", "value", f.Values[name])
			}
			m.close("div")
		}
		m.el("button", f.Copy.Submit, "type", "submit", "class", "btn btn-primary")
		m.close("form")
		m.close("div")
	})
}

// NewFormView builds the panel record for kind. acked adds the
// acknowledgment with its receipt line.
func NewFormView(sc siteI18n.SiteCopy, kind forms.Kind, values map[string]string, acked bool, receipt string) FormView {
	f := FormView{
		Kind:   kind,
		Action: routepath.Contact,
		Copy:   sc.Contact,
		Values: values,
	}
	if kind == forms.KindApply {
		f.Action = routepath.Apply
		f.Copy = sc.Apply
	}
	if acked {
		f.Ack = f.Copy.Ack
		if receipt != "" {
			f.Receipt = sc.Receipt(receipt)
		}
	}
	return f
}
