package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/spaarbot/spaarctl/internal/appearance"
)

// Color roles of the active theme, refreshed on every projection.
var (
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Panel      lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
)

// Style set derived from the color roles.
var (
	Bold lipgloss.Style

	Title        lipgloss.Style
	Tagline      lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	HintStyle    lipgloss.Style

	InfoBox    lipgloss.Style
	SuccessBox lipgloss.Style
	ErrorBox   lipgloss.Style
	PanelBox   lipgloss.Style

	HeaderStyle lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles regenerates every exported style from the projected
// variable set. Cheap enough to run on each projector write.
func rebuildStyles() {
	Primary = lipgloss.Color(surface.color(appearance.VarPrimary))
	Secondary = lipgloss.Color(surface.color(appearance.VarSecondary))
	Accent = lipgloss.Color(surface.color(appearance.VarAccent))
	Background = lipgloss.Color(surface.color(appearance.VarBackground))
	Panel = lipgloss.Color(surface.color(appearance.VarSurface))
	Foreground = lipgloss.Color(surface.color(appearance.VarText))
	Muted = lipgloss.Color(surface.color(appearance.VarMuted))
	Border = lipgloss.Color(surface.color(appearance.VarBorder))
	Success = lipgloss.Color(surface.color(appearance.VarSuccess))
	Warning = lipgloss.Color(surface.color(appearance.VarWarning))
	Error = lipgloss.Color(surface.color(appearance.VarError))

	Bold = lipgloss.NewStyle().Bold(true)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Tagline = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	WarningStyle = lipgloss.NewStyle().
		Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	HintStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	InfoBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Secondary).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	SuccessBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Success).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	ErrorBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Error).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	PanelBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2).
		MarginTop(1).
		MarginBottom(1)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(Foreground).
		Background(Primary).
		Padding(0, 1).
		Bold(true)
}

// PrimaryStyle returns a bold primary-colored style.
func PrimaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Primary).Bold(true)
}

// Header renders a screen header bar.
func Header(title string) string {
	return HeaderStyle.Render(" " + title + " ")
}

// GradientPreview renders the decorative three-stop preview of a theme.
func GradientPreview(g appearance.Gradient) string {
	block := func(hex string) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
	}
	return block(g.From) + block(g.Via) + block(g.To)
}
