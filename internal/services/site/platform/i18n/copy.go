package i18n

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/datalab/internal/content"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NavCopy holds navigation labels.
type NavCopy struct {
	Home       string
	Projects   string
	Members    string
	Department string
	Contact    string
	Apply      string
	Menu       string
	Language   string
}

// FormCopy holds labels for one submission form.
type FormCopy struct {
	Title    string
	Subtitle string
	Fields   map[string]string
	Submit   string
	Ack      string
}

// Label returns the label for a form field, falling back to its name.
func (f FormCopy) Label(field string) string {
	if label := strings.TrimSpace(f.Fields[field]); label != "" {
		return label
	}
	return field
}

// SiteCopy holds translatable copy for the site page and fragments.
type SiteCopy struct {
	Lang             string
	MetaTitle        string
	MetaDescription  string
	Brand            string
	Nav              NavCopy
	HeroEyebrow      string
	HeroTitle        string
	HeroCTAProjects  string
	HeroCTAApply     string
	ProjectsTitle    string
	ProjectsSubtitle string
	ProjectsEmpty    string
	Filters          map[content.Filter]string
	Statuses         map[content.Status]string
	DetailClose      string
	MembersTitle     string
	MembersSubtitle  string
	MembersEmpty     string
	DepartmentVisit  string
	Contact          FormCopy
	Apply            FormCopy
	Footer           string

	loc *message.Printer
}

// Site returns localized copy for the provided language tag.
func Site(tag language.Tag) SiteCopy {
	loc := message.NewPrinter(tag)
	return SiteCopy{
		Lang:            tag.String(),
		MetaTitle:       localizeWithFallback(loc, "site.meta.title", "DataLab"),
		MetaDescription: localizeWithFallback(loc, "site.meta.description", "Data science research lab"),
		Brand:           localizeWithFallback(loc, "site.brand", "DataLab"),
		Nav: NavCopy{
			Home:       localizeWithFallback(loc, "site.nav.home", "Home"),
			Projects:   localizeWithFallback(loc, "site.nav.projects", "Projects"),
			Members:    localizeWithFallback(loc, "site.nav.members", "Members"),
			Department: localizeWithFallback(loc, "site.nav.department", "Department"),
			Contact:    localizeWithFallback(loc, "site.nav.contact", "Propose"),
			Apply:      localizeWithFallback(loc, "site.nav.apply", "Apply"),
			Menu:       localizeWithFallback(loc, "site.nav.menu", "Open menu"),
			Language:   localizeWithFallback(loc, "site.nav.language", "Language"),
		},
		HeroEyebrow:      localizeWithFallback(loc, "site.hero.eyebrow", "Data Science Research Lab"),
		HeroTitle:        localizeWithFallback(loc, "site.hero.title", "We read the world through data"),
		HeroCTAProjects:  localizeWithFallback(loc, "site.hero.cta_projects", "Browse projects"),
		HeroCTAApply:     localizeWithFallback(loc, "site.hero.cta_apply", "Join us"),
		ProjectsTitle:    localizeWithFallback(loc, "site.projects.title", "Research projects"),
		ProjectsSubtitle: localizeWithFallback(loc, "site.projects.subtitle", ""),
		ProjectsEmpty:    localizeWithFallback(loc, "site.projects.empty", "No projects to show."),
		Filters: map[content.Filter]string{
			content.FilterAll:       localizeWithFallback(loc, "site.filter.all", "All"),
			content.FilterOngoing:   localizeWithFallback(loc, "site.filter.ongoing", "Ongoing"),
			content.FilterCompleted: localizeWithFallback(loc, "site.filter.completed", "Completed"),
			content.FilterPlanned:   localizeWithFallback(loc, "site.filter.planned", "Planned"),
		},
		Statuses: map[content.Status]string{
			content.StatusOngoing:   localizeWithFallback(loc, "site.status.ongoing", "Ongoing"),
			content.StatusCompleted: localizeWithFallback(loc, "site.status.completed", "Completed"),
			content.StatusPlanned:   localizeWithFallback(loc, "site.status.planned", "Planned"),
		},
		DetailClose:     localizeWithFallback(loc, "site.detail.close", "Close"),
		MembersTitle:    localizeWithFallback(loc, "site.members.title", "Members"),
		MembersSubtitle: localizeWithFallback(loc, "site.members.subtitle", ""),
		MembersEmpty:    localizeWithFallback(loc, "site.members.empty", "No members yet."),
		DepartmentVisit: localizeWithFallback(loc, "site.department.visit", "Visit the department site"),
		Contact: FormCopy{
			Title:    localizeWithFallback(loc, "site.contact.title", "Propose a project"),
			Subtitle: localizeWithFallback(loc, "site.contact.subtitle", ""),
			Fields: map[string]string{
				"name":    localizeWithFallback(loc, "site.contact.name", "Name"),
				"email":   localizeWithFallback(loc, "site.contact.email", "Email"),
				"topic":   localizeWithFallback(loc, "site.contact.topic", "Topic"),
				"message": localizeWithFallback(loc, "site.contact.message", "Message"),
			},
			Submit: localizeWithFallback(loc, "site.contact.submit", "Send"),
			Ack:    localizeWithFallback(loc, "site.contact.ack", "Your proposal was sent."),
		},
		Apply: FormCopy{
			Title:    localizeWithFallback(loc, "site.apply.title", "Join the lab"),
			Subtitle: localizeWithFallback(loc, "site.apply.subtitle", ""),
			Fields: map[string]string{
				"name":       localizeWithFallback(loc, "site.apply.name", "Name"),
				"email":      localizeWithFallback(loc, "site.apply.email", "Email"),
				"major":      localizeWithFallback(loc, "site.apply.major", "Major"),
				"motivation": localizeWithFallback(loc, "site.apply.motivation", "Motivation"),
			},
			Submit: localizeWithFallback(loc, "site.apply.submit", "Apply"),
			Ack:    localizeWithFallback(loc, "site.apply.ack", "Application received!"),
		},
		Footer: localizeWithFallback(loc, "site.footer.copyright", "© %d DataLab.", time.Now().Year()),
		loc:    loc,
	}
}

// StatusLabel returns the localized label for status. Unknown statuses fall
// back to the planned label.
func (c SiteCopy) StatusLabel(status content.Status) string {
	if label, ok := c.Statuses[status]; ok {
		return label
	}
	return c.Statuses[content.StatusPlanned]
}

// FilterLabel returns the localized label for filter.
func (c SiteCopy) FilterLabel(filter content.Filter) string {
	if label, ok := c.Filters[filter]; ok {
		return label
	}
	return string(filter)
}

// Research formats the professor research line.
func (c SiteCopy) Research(area string) string {
	return localizeWithFallback(c, "site.department.research", "Research: %s", area)
}

// Receipt formats a form acknowledgment receipt line.
func (c SiteCopy) Receipt(id string) string {
	return localizeWithFallback(c, "site.forms.receipt", "Receipt %s", id)
}

// Sprintf exposes the underlying printer so SiteCopy satisfies Localizer.
// A zero SiteCopy echoes string keys unformatted.
func (c SiteCopy) Sprintf(key message.Reference, args ...any) string {
	if c.loc == nil {
		s, _ := key.(string)
		return s
	}
	return c.loc.Sprintf(key, args...)
}

func localizeWithFallback(loc Localizer, key string, fallback string, args ...any) string {
	if loc != nil {
		value := strings.TrimSpace(loc.Sprintf(key, args...))
		if value != "" && value != key {
			return value
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(fallback, args...)
	}
	return fallback
}

// Locale is the resolved language and copy of one request.
type Locale struct {
	Tag  language.Tag
	Copy SiteCopy
}

// Resolved reports whether the locale was filled in.
func (l Locale) Resolved() bool {
	return l.Copy.Lang != ""
}

// ResolveLocale resolves the request language and builds its copy.
func ResolveLocale(w http.ResponseWriter, r *http.Request) Locale {
	_, tag := ResolveLocalizer(w, r)
	return Locale{Tag: tag, Copy: Site(tag)}
}
