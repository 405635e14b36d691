package tui

import (
	"os"
	"strings"

	"jobfinder/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds, so
// colors are lipgloss.AdaptiveColor pairs.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorSurfaceFg  lipgloss.TerminalColor = ac("235", "252")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorAccent     lipgloss.TerminalColor = ac("27", "62")
	colorContacted  lipgloss.TerminalColor = ac("28", "35")
	colorBorder     lipgloss.TerminalColor = ac("250", "238")
	colorCounterBg  lipgloss.TerminalColor = ac("27", "25")
	colorCounterFg  lipgloss.TerminalColor = ac("255", "255")
	colorContactBg  lipgloss.TerminalColor = ac("28", "28")
	colorClearFg    lipgloss.TerminalColor = ac("160", "203")
)

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
	styleSubtitle  = lipgloss.NewStyle().Foreground(colorMuted)
	styleMuted     = lipgloss.NewStyle().Foreground(colorMuted)
	styleContacted = lipgloss.NewStyle().Foreground(colorContacted).Bold(true)
	styleSelected  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleClear     = lipgloss.NewStyle().Foreground(colorClearFg)
	stylePaneTitle = lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
	styleMarker    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleGrid      = lipgloss.NewStyle().Foreground(colorBorder)

	styleCounter = lipgloss.NewStyle().
			Foreground(colorCounterFg).
			Background(colorCounterBg).
			Padding(0, 1)
	styleContactCounter = styleCounter.Background(colorContactBg)
)

// Badge colors per region and industry, as on the job cards.
var regionBadgeColors = map[model.Region]lipgloss.AdaptiveColor{
	model.RegionNSW: ac("124", "203"),
	model.RegionVIC: ac("91", "177"),
	model.RegionQLD: ac("136", "221"),
	model.RegionWA:  ac("28", "114"),
	model.RegionSA:  ac("166", "215"),
}

var industryBadgeColors = map[model.Industry]lipgloss.AdaptiveColor{
	model.IndustryTechnology:   ac("91", "177"),
	model.IndustryHospitality:  ac("162", "212"),
	model.IndustryAgriculture:  ac("28", "114"),
	model.IndustryHealthcare:   ac("124", "203"),
	model.IndustryConstruction: ac("166", "215"),
}

func regionBadge(r model.Region) string {
	c, ok := regionBadgeColors[r]
	if !ok {
		c = ac("240", "250")
	}
	label := string(r)
	if r == model.RegionUnspecified {
		label = "-"
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true).Render(label)
}

func industryBadge(in model.Industry) string {
	c, ok := industryBadgeColors[in]
	if !ok {
		c = ac("25", "75")
	}
	label := string(in)
	if in == model.IndustryUnspecified {
		label = "Unspecified"
	}
	return lipgloss.NewStyle().Foreground(c).Render(label)
}

// applyColorPreference disables colors when requested via flag or NO_COLOR.
func applyColorPreference(noColor bool) {
	if noColor || strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func colorsDisabled() bool {
	return lipgloss.ColorProfile() == termenv.Ascii
}
