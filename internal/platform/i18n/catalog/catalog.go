// Package catalog loads the site copy catalogs and registers them with
// golang.org/x/text/message.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other catalog is checked against.
const BaseLocale = "ko-KR"

const catalogGlob = "locales/*/*.yaml"

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustRegister(LoadEmbedded())

// file is one locales/<locale>/<namespace>.yaml document.
type file struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds every message keyed by locale then message key.
type Bundle struct {
	messages map[string]map[string]string
}

// Coverage summarizes one locale against BaseLocale.
type Coverage struct {
	Locale   string
	Messages int
	Missing  []string
}

// Default returns the embedded bundle registered at init.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads every catalog under locales/ in fsys. Locale and namespace
// must match the file path and keys must carry the namespace prefix.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, catalogGlob)
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no catalog files found")
	}
	slices.Sort(paths)

	b := &Bundle{messages: map[string]map[string]string{}}
	for _, p := range paths {
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var doc file
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.merge(p, doc); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
	}
	if !b.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s has no catalog", BaseLocale)
	}
	return b, nil
}

func (b *Bundle) merge(p string, doc file) error {
	locale := strings.TrimSpace(doc.Locale)
	namespace := strings.TrimSpace(doc.Namespace)
	if want := path.Base(path.Dir(p)); locale != want {
		return fmt.Errorf("locale %q does not match directory %q", locale, want)
	}
	if want := strings.TrimSuffix(path.Base(p), path.Ext(p)); namespace != want {
		return fmt.Errorf("namespace %q does not match file name %q", namespace, want)
	}
	if len(doc.Messages) == 0 {
		return errors.New("no messages")
	}

	messages := b.messages[locale]
	if messages == nil {
		messages = map[string]string{}
		b.messages[locale] = messages
	}
	prefix := namespace + "."
	for key, value := range doc.Messages {
		key = strings.TrimSpace(key)
		if !strings.HasPrefix(key, prefix) || key == prefix {
			return fmt.Errorf("key %q outside namespace %q", key, namespace)
		}
		if _, dup := messages[key]; dup {
			return fmt.Errorf("duplicate key %q", key)
		}
		messages[key] = value
	}
	return nil
}

// Register installs every message with x/text/message. A regional locale is
// also installed under its bare language, so "en" prints like "en-US".
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, conf := tag.Base(); conf != language.No {
			if bare := language.Make(base.String()); bare.String() != tag.String() {
				tags = append(tags, bare)
			}
		}
		messages := b.messages[locale]
		for _, key := range slices.Sorted(maps.Keys(messages)) {
			for _, t := range tags {
				if err := message.SetString(t, key, messages[key]); err != nil {
					return fmt.Errorf("register %s %q: %w", locale, key, err)
				}
			}
		}
	}
	return nil
}

// HasLocale reports whether locale has any catalog.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.messages[strings.TrimSpace(locale)]
	return ok
}

// Locales lists the loaded locales in sorted order.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(b.messages))
}

// LocaleMessages returns a copy of every message for locale.
func (b *Bundle) LocaleMessages(locale string) map[string]string {
	if b == nil {
		return map[string]string{}
	}
	return maps.Clone(b.messages[strings.TrimSpace(locale)])
}

// Message looks key up in locale, then in BaseLocale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	for _, l := range []string{strings.TrimSpace(locale), BaseLocale} {
		if value, ok := b.messages[l][key]; ok {
			return value, true
		}
	}
	return "", false
}

// MissingKeys lists BaseLocale keys that locale does not define.
func (b *Bundle) MissingKeys(locale string) []string {
	if b == nil {
		return nil
	}
	other := b.messages[strings.TrimSpace(locale)]
	var missing []string
	for key := range b.messages[BaseLocale] {
		if _, ok := other[key]; !ok {
			missing = append(missing, key)
		}
	}
	slices.Sort(missing)
	return missing
}

// Coverage reports every locale's message count and missing keys.
func (b *Bundle) Coverage() []Coverage {
	locales := b.Locales()
	out := make([]Coverage, 0, len(locales))
	for _, locale := range locales {
		out = append(out, Coverage{
			Locale:   locale,
			Messages: len(b.messages[locale]),
			Missing:  b.MissingKeys(locale),
		})
	}
	return out
}

func mustRegister(b *Bundle, err error) *Bundle {
	if err != nil {
		panic(err)
	}
	if err := b.Register(); err != nil {
		panic(err)
	}
	return b
}
