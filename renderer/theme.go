package renderer

import "time"

// Theme holds the colors of the dashboard.
type Theme struct {
	Night          bool
	Background     string
	Text           string
	PlotBackground string // empty keeps the charting default
	Header         string
}

// Day and Night themes.
var (
	DayTheme   = Theme{Background: "#fdfcfa", Text: "#000000", Header: "#2fa4e7"}
	NightTheme = Theme{Night: true, Background: "#111111", Text: "#ffffe5", PlotBackground: "#111111", Header: "#2fa4e7"}
)

// ThemeAt returns the theme for the local hour of now.
//
// Hours from morning to night, both included, are day hours.
func ThemeAt(now time.Time, morning, night int) Theme {
	if h := now.Hour(); h < morning || h > night {
		return NightTheme
	}
	return DayTheme
}
