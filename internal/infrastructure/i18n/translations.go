package i18n

import (
	"embed"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"arbfix/internal/logger"
	"arbfix/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.Translator port.
var _ output.Translator = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	log             logger.Logger
}

// NewTranslator builds a Translator backed by go-i18n using the given default
// locale (e.g. "en"). Unparseable locales fall back to English.
//
// Messages are loaded from the embedded active.*.toml files.
func NewTranslator(defaultLocale string, log logger.Logger) *Translator {
	if log == nil {
		log = logger.Discard()
	}
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.fr.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Error("i18n: failed to load message file", "file", file, "err", err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		log:             log,
	}
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then English, then finally to the key itself. A "Count" entry in data
// selects the plural form.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
		PluralCount:  data["Count"],
	})
	if err != nil {
		t.log.Debug("i18n: localize failed", "key", key, "locales", languages, "err", err)
		return key
	}
	return msg
}
