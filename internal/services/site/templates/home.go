package templates

import (
	"context"

	"github.com/a-h/templ"
	siteI18n "github.com/louisbranch/datalab/internal/services/site/platform/i18n"
	"github.com/louisbranch/datalab/internal/services/site/view"
)

// HomeView is everything the single page shows.
type HomeView struct {
	Copy       siteI18n.SiteCopy
	Typing     string
	Filters    []view.FilterControl
	Projects   []view.ProjectCard
	Members    []view.MemberCard
	Department view.DepartmentView
	Contact    FormView
	Apply      FormView
}

// Home renders every page section in order.
func Home(v HomeView) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.render(ctx, Hero(v.Copy, v.Typing))
		m.render(ctx, ProjectsSection(v.Copy, v.Filters, v.Projects))
		m.render(ctx, MembersSection(v.Copy, v.Members))
		m.render(ctx, DepartmentSection(v.Copy, v.Department))
		m.render(ctx, FormSection(v.Contact))
		m.render(ctx, FormSection(v.Apply))
	})
}
