package ui

import "github.com/charmbracelet/lipgloss"

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Key      lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Input    lipgloss.Style
	Panel    lipgloss.Style
	Sidebar  lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() *Styles {
	var (
		blue   = lipgloss.AdaptiveColor{Light: "#00008B", Dark: "#89B4FA"}
		green  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#A6E3A1"}
		muted  = lipgloss.Color("#6C7086")
		border = lipgloss.Color("#45475A")
	)
	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(blue),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(green),
		Label:    lipgloss.NewStyle().Bold(true),
		Normal:   lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Key:      lipgloss.NewStyle().Bold(true).Foreground(blue),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		Success:  lipgloss.NewStyle().Foreground(green),
		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Sidebar: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderTop(false).
			BorderRight(false).
			BorderBottom(false).
			BorderForeground(border).
			PaddingLeft(2),
	}
}
