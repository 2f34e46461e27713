package tui

import (
	"embed"
	"path"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	msgNavigationBack = &i18n.Message{ID: "NavigationBack", Other: "‹ back (esc)"}
	msgTabSwitchHint  = &i18n.Message{ID: "TabSwitchHint", Other: "tab: switch"}
	msgUntitledTab    = &i18n.Message{ID: "UntitledTab", Other: "Tab {{.Index}}"}
	msgEmptyScreen    = &i18n.Message{ID: "EmptyScreen", Other: "(nothing to show)"}
)

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		internal.GetInternalLogger().Error("Failed to read embedded locales", "error", err)
		return bundle
	}

	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		data, err := localeFS.ReadFile(name)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to read locale file", "file", name, "error", err)
			continue
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			internal.GetInternalLogger().Error("Failed to parse locale file", "file", name, "error", err)
		}
	}

	return bundle
}

// translator renders chrome strings for one locale.
type translator struct {
	localizer *i18n.Localizer
}

func newTranslator(locale string) translator {
	return translator{localizer: i18n.NewLocalizer(newBundle(), locale, language.English.String())}
}

func (t translator) text(msg *i18n.Message, data map[string]any) string {
	s, err := t.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   data,
	})
	if err != nil {
		return msg.Other
	}
	return s
}
