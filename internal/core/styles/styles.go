// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import "github.com/charmbracelet/lipgloss"

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style

	// Text styles.
	TextPrimaryBoldStyle    lipgloss.Style
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextSurfaceStyle        lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextErrorStyle          lipgloss.Style

	// Gallery grid.
	TileStyle         lipgloss.Style
	TileFocusedStyle  lipgloss.Style
	TileIndexStyle    lipgloss.Style
	TileOverflowStyle lipgloss.Style
	GalleryEmptyStyle lipgloss.Style

	// Lightbox.
	LightboxStyle         lipgloss.Style
	LightboxImageStyle    lipgloss.Style
	LightboxPositionStyle lipgloss.Style
	LightboxControlStyle  lipgloss.Style
	LightboxHelpStyle     lipgloss.Style

	// Modals and dialogs.
	ModalStyle             lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalHelpStyle         lipgloss.Style
	HelpDialogModalStyle   lipgloss.Style
	HelpDialogSectionStyle lipgloss.Style
	HelpDialogHelpStyle    lipgloss.Style

	// Detail view.
	DetailTitleStyle    lipgloss.Style
	DetailSubtitleStyle lipgloss.Style
	DetailMapStyle      lipgloss.Style
	StatusBarStyle      lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	TextForegroundStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	TextForegroundBoldStyle = lipgloss.NewStyle().Foreground(p.Foreground).Bold(true)
	TextSurfaceStyle = lipgloss.NewStyle().Foreground(p.Surface)
	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	TextWarningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(p.Error)

	TileStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Foreground(p.Foreground)
	TileFocusedStyle = TileStyle.
		BorderForeground(p.Primary)
	TileIndexStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	TileOverflowStyle = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Warning).
		Bold(true).
		Padding(0, 1)
	GalleryEmptyStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	LightboxStyle = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)
	LightboxImageStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true)
	LightboxPositionStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)
	LightboxControlStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Surface).
		Foreground(p.Foreground)
	LightboxHelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)
	HelpDialogModalStyle = ModalStyle
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)
	HelpDialogHelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	DetailTitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	DetailSubtitleStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	DetailMapStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Underline(true)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		PaddingLeft(1)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
