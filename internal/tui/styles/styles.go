package styles

import (
	"formkeep/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles defines the core UI styles
type Styles struct {
	App       lipgloss.Style
	Tab       lipgloss.Style
	Row       lipgloss.Style
	Cursor    lipgloss.Style
	Checked   lipgloss.Style
	Empty     lipgloss.Style
	Notice    lipgloss.Style
	Dialog    lipgloss.Style
	Button    lipgloss.Style
	ActiveBtn lipgloss.Style
	Help      lipgloss.Style
}

// FromConfig builds the styles from the configured theme colors.
func FromConfig(cfg *config.Config) Styles {
	t := cfg.Theme
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Tab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Primary)).
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
		Row: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC")),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(t.Primary)),
		Checked: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true),
		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Warning)).
			Padding(1, 2),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595")).
			Padding(0, 2),
		ActiveBtn: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(t.Emphasis)).
			Padding(0, 2),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5A9")),
	}
}

// Default uses the default theme.
func Default() Styles {
	return FromConfig(config.New())
}
