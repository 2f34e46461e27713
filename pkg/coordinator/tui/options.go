package tui

import (
	"time"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/constants"
)

// Options configures the terminal host.
type Options struct {
	Locale             string        `toml:"locale"`              // BCP 47 tag for chrome strings (en, ko)
	TransitionDuration time.Duration `toml:"transition_duration"` // Delay before animated transitions complete; 0 completes immediately
	AccentColor        string        `toml:"accent_color"`        // Title and selected tab color
	MutedColor         string        `toml:"muted_color"`         // Hints and inactive tabs
	BorderColor        string        `toml:"border_color"`        // Sheet border
	AltScreen          bool          `toml:"alt_screen"`          // Run in the terminal's alternate screen
}

// DefaultOptions returns the options used when a field is left empty.
func DefaultOptions() Options {
	return Options{
		Locale:             constants.DefaultLocale,
		TransitionDuration: constants.DefaultTransitionDuration,
		AccentColor:        "#7D56F4",
		MutedColor:         "#626262",
		BorderColor:        "#874BFD",
		AltScreen:          true,
	}
}

// withDefaults fills empty fields from DefaultOptions. A zero
// TransitionDuration is kept because it is meaningful.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Locale == "" {
		o.Locale = d.Locale
	}
	if o.AccentColor == "" {
		o.AccentColor = d.AccentColor
	}
	if o.MutedColor == "" {
		o.MutedColor = d.MutedColor
	}
	if o.BorderColor == "" {
		o.BorderColor = d.BorderColor
	}
	if o.TransitionDuration < 0 {
		o.TransitionDuration = 0
	}
	return o
}
