// Package themes defines the console's color schemes.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Label         lipgloss.Style
	Focused       lipgloss.Style
	Selected      lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	StatusBar     lipgloss.Style
	RoundedBox    lipgloss.Style
	FraudBanner   lipgloss.Style
	LegitBanner   lipgloss.Style
	StatusPending lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusInfo    lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
}

type palette struct {
	primary    string
	secondary  string
	success    string
	errorColor string
	info       string
	background string
	foreground string
	subtle     string
	border     string
	muted      string
}

func newTheme(p palette) Theme {
	fg := lipgloss.Color(p.foreground)

	return Theme{
		Primary:    lipgloss.Color(p.primary),
		Muted:      lipgloss.Color(p.muted),
		Border:     lipgloss.Color(p.border),
		Foreground: fg,
		Error:      lipgloss.Color(p.errorColor),
		Success:    lipgloss.Color(p.success),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.primary)).
			MarginBottom(1),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)),
		Focused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.secondary)).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.primary)).
			Foreground(lipgloss.Color(p.background)).
			Bold(true),

		TabActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(lipgloss.Color(p.primary)).
			Foreground(lipgloss.Color(p.primary)).
			Bold(true).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(lipgloss.Color(p.border)).
			Foreground(lipgloss.Color(p.muted)).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)).
			Background(lipgloss.Color(p.border)).
			Padding(0, 1),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(1, 2),

		FraudBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.background)).
			Background(lipgloss.Color(p.errorColor)).
			Bold(true).
			Padding(0, 1),
		LegitBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.background)).
			Background(lipgloss.Color(p.success)).
			Bold(true).
			Padding(0, 1),

		StatusPending: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			Italic(true),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.errorColor)).
			Bold(true),
		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.info)),
	}
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:    "#3b82f6",
	secondary:  "#93c5fd",
	success:    "#10b981",
	errorColor: "#ef4444",
	info:       "#38bdf8",
	background: "#1a1a1a",
	foreground: "#fafafa",
	subtle:     "#a3a3a3",
	border:     "#404040",
	muted:      "#737373",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    "#89b4fa",
	secondary:  "#cba6f7",
	success:    "#a6e3a1",
	errorColor: "#f38ba8",
	info:       "#89dceb",
	background: "#1e1e2e",
	foreground: "#cdd6f4",
	subtle:     "#a6adc8",
	border:     "#45475a",
	muted:      "#6c7086",
})

// GetTheme returns a theme by its configured name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin", "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
