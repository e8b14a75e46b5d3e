package main

import (
	"embed"
	"log"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Messages localizes the user interface text.
type Messages struct {
	localizer *i18n.Localizer
	Tag       language.Tag
}

// NewMessages loads every bundled locale and picks the best match for the
// requested one, falling back to English.
func NewMessages(requested string) *Messages {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	entries, err := locales.ReadDir("locales")
	if err != nil {
		log.Printf("reading locales: %v", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(locales, "locales/"+e.Name()); err != nil {
			log.Printf("loading %s: %v", e.Name(), err)
		}
	}
	tag, err := language.Parse(requested)
	if err != nil {
		log.Printf("unknown locale %q, using English: %v", requested, err)
		tag = language.English
	}
	matcher := language.NewMatcher(bundle.LanguageTags())
	_, index, _ := matcher.Match(tag)
	best := bundle.LanguageTags()[index]
	return &Messages{
		localizer: i18n.NewLocalizer(bundle, best.String()),
		Tag:       best,
	}
}

func (m *Messages) get(id string, count int) string {
	cfg := &i18n.LocalizeConfig{MessageID: id}
	if count >= 0 {
		cfg.PluralCount = count
		cfg.TemplateData = map[string]int{"Count": count}
	}
	s, err := m.localizer.Localize(cfg)
	if err != nil {
		return id
	}
	return s
}

// Title of the list.
func (m *Messages) Title() string { return m.get("Title", -1) }

// JustNow labels a freshly created to-do.
func (m *Messages) JustNow() string { return m.get("JustNow", -1) }

// Share is the text action of each row.
func (m *Messages) Share() string { return m.get("Share", -1) }

// Delete action label.
func (m *Messages) Delete() string { return m.get("Delete", -1) }

// Archive action label.
func (m *Messages) Archive() string { return m.get("Archive", -1) }

// Remaining counts the to-dos left.
func (m *Messages) Remaining(n int) string { return m.get("Remaining", n) }

// Empty is shown once every to-do is gone.
func (m *Messages) Empty() string { return m.get("Empty", -1) }
