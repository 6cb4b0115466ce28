// Package locale holds the launcher's user-facing strings.
//
// Message files are TOML, embedded at build time, one file per language.
// Japanese is the shipped default; English is the fallback for any other tag.
package locale

import (
	"embed"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	BreakSuggestion  = "BreakSuggestion"
	BreakDismissHint = "BreakDismissHint"
	CatalogMissing   = "CatalogMissing"
	CatalogInvalid   = "CatalogInvalid"
	CatalogEmpty     = "CatalogEmpty"
	LaunchFailed     = "LaunchFailed"
	AlreadyRunning   = "AlreadyRunning"
	ErrorTitle       = "ErrorTitle"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		for _, name := range []string{"locales/active.en.toml", "locales/active.ja.toml"} {
			if _, err := b.LoadMessageFileFS(localeFS, name); err != nil {
				bundleErr = fmt.Errorf("locale: load %s: %w", name, err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Supported returns the languages with a message file.
func Supported() []language.Tag {
	b, err := loadBundle()
	if err != nil {
		return nil
	}
	return b.LanguageTags()
}

// Messages localizes strings for one language.
type Messages struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// New returns messages for tag, falling back to English for missing languages.
func New(tag language.Tag) (*Messages, error) {
	b, err := loadBundle()
	if err != nil {
		return nil, err
	}

	return &Messages{
		tag:       tag,
		localizer: i18n.NewLocalizer(b, tag.String(), language.English.String()),
	}, nil
}

// Tag returns the requested language.
func (m *Messages) Tag() language.Tag {
	return m.tag
}

// Text returns the localized message. Unknown IDs come back unchanged.
func (m *Messages) Text(id string, data map[string]any) string {
	s, err := m.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return s
}
