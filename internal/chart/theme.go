package chart

import (
	"fmt"
	"image/color"

	"github.com/ohiodata/birthstats/internal/config"
)

// Theme holds the resolved chart colors
type Theme struct {
	Low       color.Color
	Normal    color.Color
	LowScale  []color.Color // Choropleth bins, light to dark
	RaceScale []color.Color // One color per race category
}

// NewTheme resolves the configured hex colors into a Theme
func NewTheme(cfg *config.Config) (Theme, error) {
	low, err := ParseHexColor(cfg.GetLowColor())
	if err != nil {
		return Theme{}, fmt.Errorf("low_color: %w", err)
	}
	normal, err := ParseHexColor(cfg.GetNormalColor())
	if err != nil {
		return Theme{}, fmt.Errorf("normal_color: %w", err)
	}

	theme := Theme{Low: low, Normal: normal}

	for _, hex := range cfg.GetLowScale() {
		c, err := ParseHexColor(hex)
		if err != nil {
			return Theme{}, fmt.Errorf("low_scale: %w", err)
		}
		theme.LowScale = append(theme.LowScale, c)
	}
	for _, hex := range cfg.GetRaceScale() {
		c, err := ParseHexColor(hex)
		if err != nil {
			return Theme{}, fmt.Errorf("race_scale: %w", err)
		}
		theme.RaceScale = append(theme.RaceScale, c)
	}

	return theme, nil
}

// ParseHexColor parses a "#RRGGBB" color string
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
