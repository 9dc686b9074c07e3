package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/helpie/internal/notify"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorMaroon   lipgloss.Color = "#eba0ac"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorLavender
	colorBrand   = colorMaroon
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
	colorMuted   = colorOverlay0
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	brandStyle   = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)
	suspectRowStyle = lipgloss.NewStyle().Foreground(colorRed)
	cursorRowStyle  = lipgloss.NewStyle().Background(colorSurface0)
	activeStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	inactiveStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	ratingStyle     = lipgloss.NewStyle().Foreground(colorYellow)
	serviceStyle    = lipgloss.NewStyle().Foreground(colorBlue)
	modalStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(0, 1)
	findStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMauve).
			Padding(0, 1)
	footerStyle   = lipgloss.NewStyle().Background(colorMantle).Foreground(colorSubtext0)
	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	backdropStyle = lipgloss.NewStyle().Foreground(colorSurface1)
)

func toastColor(kind notify.Kind) lipgloss.Color {
	switch kind {
	case notify.KindSuccess:
		return colorSuccess
	case notify.KindWarn:
		return colorWarning
	case notify.KindError:
		return colorError
	default:
		return colorInfo
	}
}

func toastStyle(kind notify.Kind) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(toastColor(kind)).
		Foreground(colorText).
		Padding(0, 1)
}

// toastGlyph maps icon hints and kinds to a single terminal glyph.
func toastGlyph(t notify.Toast) string {
	switch t.Icon {
	case "shield-off":
		return lipgloss.NewStyle().Foreground(colorRed).Render("⛨")
	case "activity":
		return lipgloss.NewStyle().Foreground(colorLavender).Render("∿")
	}
	style := lipgloss.NewStyle().Foreground(toastColor(t.Kind))
	switch t.Kind {
	case notify.KindSuccess:
		return style.Render("✓")
	case notify.KindWarn:
		return style.Render("!")
	case notify.KindError:
		return style.Render("✗")
	default:
		return style.Render("i")
	}
}
