package modules

import (
	"github.com/louisbranch/datalab/internal/services/site/modules/forms"
	"github.com/louisbranch/datalab/internal/services/site/modules/hero"
	"github.com/louisbranch/datalab/internal/services/site/modules/home"
	"github.com/louisbranch/datalab/internal/services/site/modules/projects"
)

// DefaultModules returns every module the site page depends on.
func DefaultModules() []Module {
	return []Module{
		home.New(),
		projects.New(),
		forms.New(),
		hero.New(),
	}
}
