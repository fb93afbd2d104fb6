package refresh

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/refresh/pkg/graphics"
)

// Theme holds the header colors used by the bundled content views.
type Theme struct {
	Status     graphics.Color
	Detail     graphics.Color
	Accent     graphics.Color
	Background graphics.Color
}

// LightTheme is dark text on white.
func LightTheme() Theme {
	return Theme{
		Status:     graphics.ColorBlack,
		Detail:     graphics.RGB(0xAA, 0xAA, 0xAA),
		Accent:     graphics.RGB(0x7D, 0x56, 0xF4),
		Background: graphics.ColorWhite,
	}
}

// DarkTheme is light text for dark terminals.
func DarkTheme() Theme {
	return Theme{
		Status:     graphics.RGB(0xEE, 0xEE, 0xEE),
		Detail:     graphics.RGB(0x80, 0x80, 0x80),
		Accent:     graphics.RGB(0xAD, 0x8C, 0xFF),
		Background: graphics.RGB(0x1C, 0x1C, 0x1C),
	}
}

// ThemeByName returns "light" or "dark". The empty name is "dark".
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// fade blends c toward the background by t.
func (t Theme) fade(c graphics.Color, amount float64) lipgloss.Color {
	return lipgloss.Color(c.Lerp(t.Background, amount).Hex())
}

func (t Theme) statusStyle(width int, fade float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.fade(t.Status, fade)).
		Width(width).
		Align(lipgloss.Center)
}

func (t Theme) detailStyle(width int, fade float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.fade(t.Detail, fade)).
		Width(width).
		Align(lipgloss.Center)
}

func (t Theme) accentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent.Hex()))
}
