package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette - true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorCrust    lipgloss.Color = "#11111b"
)

// ---------------------------------------------------------------------------
// Board square backgrounds
// ---------------------------------------------------------------------------

const (
	colorLightSquare = colorSurface2
	colorDarkSquare  = colorSurface0
	colorCursorSq    = colorLavender
	colorSelectedSq  = colorBlue
	colorTargetSq    = colorTeal
	colorLastMoveSq  = colorYellow
	colorCheckSq     = colorRed
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Underline(true)
	statusStyle     = lipgloss.NewStyle().Foreground(colorSubtext0)
	errorStyle      = lipgloss.NewStyle().Foreground(colorRed)
	helpStyle       = lipgloss.NewStyle().Foreground(colorOverlay0)
	coordStyle      = lipgloss.NewStyle().Foreground(colorOverlay1)
	historyStyle    = lipgloss.NewStyle().Foreground(colorText)
	turnStyle       = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	modalStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMauve).Padding(0, 1)
	whitePieceStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	blackPieceStyle = lipgloss.NewStyle().Foreground(colorCrust).Bold(true)
)
