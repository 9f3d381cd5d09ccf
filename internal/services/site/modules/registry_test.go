package modules

import (
	"strings"
	"testing"
)

func TestDefaultModulesHaveUniqueIDsAndPrefixes(t *testing.T) {
	t.Parallel()

	ids := map[string]bool{}
	prefixes := map[string]string{}
	for _, m := range DefaultModules() {
		if m == nil {
			t.Fatal("nil module in registry")
		}
		if ids[m.ID()] {
			t.Fatalf("duplicate module id %q", m.ID())
		}
		ids[m.ID()] = true

		mount, err := m.Mount(Dependencies{})
		if err != nil {
			t.Fatalf("Mount(%q) error = %v", m.ID(), err)
		}
		if mount.Handler == nil {
			t.Fatalf("module %q has nil handler", m.ID())
		}
		if !strings.HasPrefix(mount.Prefix, "/") || !strings.HasSuffix(mount.Prefix, "/") {
			t.Fatalf("module %q prefix = %q, want slash-delimited", m.ID(), mount.Prefix)
		}
		if owner, ok := prefixes[mount.Prefix]; ok {
			t.Fatalf("prefix %q shared by %q and %q", mount.Prefix, owner, m.ID())
		}
		prefixes[mount.Prefix] = m.ID()
	}
	for _, want := range []string{"home", "projects", "forms", "hero"} {
		if !ids[want] {
			t.Fatalf("registry missing %q", want)
		}
	}
}
