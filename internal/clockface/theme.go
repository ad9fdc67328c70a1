package clockface

import "desktop-clock/internal/settings"

// Palette is the CSS styling of the clock body for one theme.
type Palette struct {
	Page       string `json:"page"`
	Background string `json:"background"`
	Border     string `json:"border"`
	Text       string `json:"text"`
	TextShadow string `json:"text_shadow"`
}

var (
	darkPalette = Palette{
		Page:       "transparent",
		Background: "rgba(255, 255, 255, 0.05)",
		Border:     "1px solid rgba(255, 255, 255, 0.2)",
		Text:       "#fff",
		TextShadow: "0 0 20px rgba(255, 255, 255, 0.3)",
	}
	lightPalette = Palette{
		Page:       "rgba(255, 255, 255, 0.05)",
		Background: "rgba(0, 0, 0, 0.05)",
		Border:     "1px solid rgba(0, 0, 0, 0.1)",
		Text:       "#000",
		TextShadow: "0 0 20px rgba(0, 0, 0, 0.2)",
	}
)

// PaletteFor returns the palette for theme; anything but light is dark.
func PaletteFor(theme settings.Theme) Palette {
	if theme == settings.Light {
		return lightPalette
	}
	return darkPalette
}
