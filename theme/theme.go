package theme

import "github.com/esc4n0rx/fomi-api/models"

// Fallbacks for stores that never customized their branding.
const (
	DefaultPrimaryColor    = "#e11d48"
	DefaultSecondaryColor  = "#f5f5f5"
	DefaultTextColor       = "#000000"
	DefaultBackgroundColor = "#ffffff"
	DefaultTitleFont       = "Poppins"
	DefaultBodyFont        = "Inter"
)

// Theme is the render-time style context every storefront display
// component reads.
type Theme struct {
	PrimaryColor    string `json:"primary_color"`
	SecondaryColor  string `json:"secondary_color"`
	TextColor       string `json:"text_color"`
	BackgroundColor string `json:"background_color"`
	TitleFont       string `json:"title_font"`
	BodyFont        string `json:"body_font"`
}

// Resolve maps a store's branding onto a Theme, defaulting any
// attribute the store record omits. The branding value is read only.
func Resolve(b models.StoreBranding) Theme {
	return Theme{
		PrimaryColor:    orDefault(b.PrimaryColor, DefaultPrimaryColor),
		SecondaryColor:  orDefault(b.SecondaryColor, DefaultSecondaryColor),
		TextColor:       orDefault(b.TextColor, DefaultTextColor),
		BackgroundColor: orDefault(b.BackgroundColor, DefaultBackgroundColor),
		TitleFont:       orDefault(b.TitleFont, DefaultTitleFont),
		BodyFont:        orDefault(b.BodyFont, DefaultBodyFont),
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
