package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale must define every message key
const BaseLocale = "en"

// Message keys
const (
	// KeyDamage takes victim name, damage, remaining health, hit location
	KeyDamage = "DamageHTML"

	// KeyGrenadeDamage takes the cumulative grenade damage
	KeyGrenadeDamage = "GrenadeDamageHTML"

	// KeyEnabled acknowledges a toggle that turned notifications on
	KeyEnabled = "EnabledMessage"

	// KeyDisabled acknowledges a toggle that turned notifications off
	KeyDisabled = "DisableMessage"
)

var requiredKeys = []string{KeyDamage, KeyGrenadeDamage, KeyEnabled, KeyDisabled}

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog formats localized messages
type Catalog struct {
	builder *catalog.Builder
	tags    []language.Tag
	matcher language.Matcher
}

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// LoadEmbedded loads the locale files shipped with the binary
func LoadEmbedded() (*Catalog, error) {
	return LoadFromFS(embeddedLocales)
}

// LoadFromFS loads locales/*.yaml from the provided filesystem
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	base := language.MustParse(BaseLocale)
	builder := catalog.NewBuilder(catalog.Fallback(base))
	var others []language.Tag
	hasBase := false

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", p, err)
		}

		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", p, err)
		}

		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if file.Locale != name {
			return nil, fmt.Errorf("locale %s: locale %q must match file name %q", p, file.Locale, name)
		}

		tag, err := language.Parse(file.Locale)
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", p, err)
		}

		for key, msg := range file.Messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("locale %s: key %s: %w", p, key, err)
			}
		}

		if tag == base {
			hasBase = true
			for _, key := range requiredKeys {
				if _, ok := file.Messages[key]; !ok {
					return nil, fmt.Errorf("base locale is missing key %s", key)
				}
			}
			continue
		}
		others = append(others, tag)
	}

	if !hasBase {
		return nil, fmt.Errorf("base locale %s is not defined", BaseLocale)
	}

	// the matcher's default is its first tag
	tags := append([]language.Tag{base}, others...)

	return &Catalog{
		builder: builder,
		tags:    tags,
		matcher: language.NewMatcher(tags),
	}, nil
}

// Printer returns a printer for the closest supported locale
func (c *Catalog) Printer(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		return message.NewPrinter(c.tags[0], message.Catalog(c.builder))
	}

	_, index, _ := c.matcher.Match(tag)
	return message.NewPrinter(c.tags[index], message.Catalog(c.builder))
}

// Sprintf formats key in locale
func (c *Catalog) Sprintf(locale, key string, args ...any) string {
	return c.Printer(locale).Sprintf(key, args...)
}

// Locales returns the supported locales, base first
func (c *Catalog) Locales() []string {
	locales := make([]string, len(c.tags))
	for i, tag := range c.tags {
		locales[i] = tag.String()
	}
	return locales
}
