package screen

import (
	"fmt"
	"strings"
)

// Style selects how an overlay is presented.
type Style int

const (
	StyleAutomatic          Style = iota // Backend default, a sheet
	StyleFullScreen                      // Covers and hides the presenter
	StyleOverFullScreen                  // Covers the presenter, which stays rendered underneath
	StylePageSheet                       // Large inset card
	StyleFormSheet                       // Small centered card
	StyleOverCurrentContext              // Covers only the presenting controller's area
)

var styleNames = map[Style]string{
	StyleAutomatic:          "automatic",
	StyleFullScreen:         "full_screen",
	StyleOverFullScreen:     "over_full_screen",
	StylePageSheet:          "page_sheet",
	StyleFormSheet:          "form_sheet",
	StyleOverCurrentContext: "over_current_context",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// IsSheet reports whether the style draws the overlay as an inset card.
func (s Style) IsSheet() bool {
	switch s {
	case StyleAutomatic, StylePageSheet, StyleFormSheet:
		return true
	}
	return false
}

// ParseStyle converts a style name (as produced by String) back into a Style.
// Dashes and case are ignored.
func ParseStyle(raw string) (Style, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_")
	for s, name := range styleNames {
		if name == key {
			return s, nil
		}
	}
	return StyleAutomatic, fmt.Errorf("screen: unknown presentation style %q", raw)
}

// UnmarshalText lets styles be decoded from TOML configuration.
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
