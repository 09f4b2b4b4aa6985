package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme and styles for the TUI
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor

	// UI element colors
	Border     lipgloss.AdaptiveColor // Separator lines, borders
	Dimmed     lipgloss.AdaptiveColor // Very subtle text (shortcuts)
	Subtle     lipgloss.AdaptiveColor // Subtle UI elements
	Background lipgloss.AdaptiveColor // Background for overlays
	Selection  lipgloss.AdaptiveColor // Highlighted menu row

	// Component styles
	Menu     MenuStyles
	Blocks   BlockStyles
	AppTitle lipgloss.Style
	Header   lipgloss.Style
}

// MenuStyles defines styles for the floating block menu
type MenuStyles struct {
	Box         lipgloss.Style
	Section     lipgloss.Style
	Item        lipgloss.Style
	SelectedRow lipgloss.Style
	Description lipgloss.Style
	Shortcut    lipgloss.Style
	Badge       lipgloss.Style
	Match       lipgloss.Style
	Empty       lipgloss.Style
	Footer      lipgloss.Style
	Input       lipgloss.Style
}

// BlockStyles defines how document blocks are drawn in the editor
type BlockStyles struct {
	Heading   [3]lipgloss.Style
	Paragraph lipgloss.Style
	Code      lipgloss.Style
	Quote     lipgloss.Style
	Marker    lipgloss.Style
	Divider   lipgloss.Style
	TableCell lipgloss.Style
	TableHead lipgloss.Style
	Gutter    lipgloss.Style
	GutterHot lipgloss.Style
	Caret     lipgloss.Style
}

type palette struct {
	primary, secondary, accent, foreground, muted lipgloss.AdaptiveColor
	errorC, success, warning                      lipgloss.AdaptiveColor
	border, dimmed, subtle, background            lipgloss.AdaptiveColor
	selection                                     lipgloss.AdaptiveColor
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var palettes = map[string]palette{
	"charm": {
		primary:    adaptive("#5A56E0", "#7571F9"),
		secondary:  adaptive("#02BA84", "#02BF87"),
		accent:     adaptive("#F780E2", "#F780E2"),
		foreground: adaptive("235", "252"),
		muted:      adaptive("243", "243"),
		errorC:     adaptive("#FF4672", "#ED567A"),
		success:    adaptive("#02BA84", "#02BF87"),
		warning:    adaptive("#FFAA00", "#FFAA00"),
		border:     adaptive("240", "240"),
		dimmed:     adaptive("243", "243"),
		subtle:     adaptive("241", "241"),
		background: adaptive("254", "235"),
		selection:  adaptive("57", "57"),
	},
	"dracula": {
		primary:    adaptive("#bd93f9", "#bd93f9"),
		secondary:  adaptive("#8be9fd", "#8be9fd"),
		accent:     adaptive("#ff79c6", "#ff79c6"),
		foreground: adaptive("#282a36", "#f8f8f2"),
		muted:      adaptive("#6272a4", "#6272a4"),
		errorC:     adaptive("#ff5555", "#ff5555"),
		success:    adaptive("#50fa7b", "#50fa7b"),
		warning:    adaptive("#f1fa8c", "#f1fa8c"),
		border:     adaptive("61", "61"),
		dimmed:     adaptive("#6272a4", "#6272a4"),
		subtle:     adaptive("#44475a", "#44475a"),
		background: adaptive("#f8f8f2", "#282a36"),
		selection:  adaptive("#bd93f9", "#44475a"),
	},
	"catppuccin": {
		primary:    adaptive("#8839ef", "#cba6f7"), // Mauve
		secondary:  adaptive("#179299", "#89dceb"), // Sky
		accent:     adaptive("#ea76cb", "#f5c2e7"), // Pink
		foreground: adaptive("#4c4f69", "#cdd6f4"),
		muted:      adaptive("#9ca0b0", "#7f849c"),
		errorC:     adaptive("#d20f39", "#f38ba8"),
		success:    adaptive("#40a02b", "#a6e3a1"),
		warning:    adaptive("#df8e1d", "#f9e2af"),
		border:     adaptive("#9ca0b0", "#45475a"),
		dimmed:     adaptive("#9ca0b0", "#7f849c"),
		subtle:     adaptive("#7c7f93", "#585b70"),
		background: adaptive("#eff1f5", "#1e1e2e"),
		selection:  adaptive("#ccd0da", "#313244"),
	},
	"nord": {
		primary:    adaptive("#5e81ac", "#88c0d0"),
		secondary:  adaptive("#81a1c1", "#81a1c1"),
		accent:     adaptive("#b48ead", "#b48ead"),
		foreground: adaptive("#2e3440", "#eceff4"),
		muted:      adaptive("#4c566a", "#4c566a"),
		errorC:     adaptive("#bf616a", "#bf616a"),
		success:    adaptive("#a3be8c", "#a3be8c"),
		warning:    adaptive("#ebcb8b", "#ebcb8b"),
		border:     adaptive("#d8dee9", "#3b4252"),
		dimmed:     adaptive("#4c566a", "#4c566a"),
		subtle:     adaptive("#434c5e", "#434c5e"),
		background: adaptive("#eceff4", "#2e3440"),
		selection:  adaptive("#d8dee9", "#3b4252"),
	},
	"gruvbox": {
		primary:    adaptive("#af3a03", "#fe8019"),
		secondary:  adaptive("#79740e", "#b8bb26"),
		accent:     adaptive("#b16286", "#d3869b"),
		foreground: adaptive("#3c3836", "#ebdbb2"),
		muted:      adaptive("#7c6f64", "#928374"),
		errorC:     adaptive("#9d0006", "#fb4934"),
		success:    adaptive("#79740e", "#b8bb26"),
		warning:    adaptive("#b57614", "#fabd2f"),
		border:     adaptive("#d5c4a1", "#504945"),
		dimmed:     adaptive("#7c6f64", "#928374"),
		subtle:     adaptive("#665c54", "#665c54"),
		background: adaptive("#fbf1c7", "#282828"),
		selection:  adaptive("#ebdbb2", "#3c3836"),
	},
	"tokyo-night": {
		primary:    adaptive("#7aa2f7", "#7aa2f7"),
		secondary:  adaptive("#2ac3de", "#2ac3de"),
		accent:     adaptive("#bb9af7", "#bb9af7"),
		foreground: adaptive("#1a1b26", "#c0caf5"),
		muted:      adaptive("#565f89", "#565f89"),
		errorC:     adaptive("#f7768e", "#f7768e"),
		success:    adaptive("#9ece6a", "#9ece6a"),
		warning:    adaptive("#e0af68", "#e0af68"),
		border:     adaptive("#a9b1d6", "#292e42"),
		dimmed:     adaptive("#565f89", "#565f89"),
		subtle:     adaptive("#414868", "#414868"),
		background: adaptive("#d5d6db", "#1a1b26"),
		selection:  adaptive("#c4c8da", "#24283b"),
	},
	"solarized": {
		primary:    adaptive("#268bd2", "#268bd2"),
		secondary:  adaptive("#2aa198", "#2aa198"),
		accent:     adaptive("#6c71c4", "#6c71c4"),
		foreground: adaptive("#002b36", "#839496"),
		muted:      adaptive("#586e75", "#586e75"),
		errorC:     adaptive("#dc322f", "#dc322f"),
		success:    adaptive("#859900", "#859900"),
		warning:    adaptive("#cb4b16", "#cb4b16"),
		border:     adaptive("#93a1a1", "#073642"),
		dimmed:     adaptive("#586e75", "#586e75"),
		subtle:     adaptive("#657b83", "#657b83"),
		background: adaptive("#fdf6e3", "#002b36"),
		selection:  adaptive("#eee8d5", "#073642"),
	},
	"monokai": {
		primary:    adaptive("#66d9ef", "#66d9ef"),
		secondary:  adaptive("#a6e22e", "#a6e22e"),
		accent:     adaptive("#ae81ff", "#ae81ff"),
		foreground: adaptive("#272822", "#f8f8f2"),
		muted:      adaptive("#75715e", "#75715e"),
		errorC:     adaptive("#f92672", "#f92672"),
		success:    adaptive("#a6e22e", "#a6e22e"),
		warning:    adaptive("#e6db74", "#e6db74"),
		border:     adaptive("#464741", "#464741"),
		dimmed:     adaptive("#75715e", "#75715e"),
		subtle:     adaptive("#49483e", "#49483e"),
		background: adaptive("#f8f8f2", "#272822"),
		selection:  adaptive("#e6e6df", "#3e3d32"),
	},
}

func newTheme(name string, p palette) *Theme {
	t := &Theme{
		Name:       name,
		Primary:    p.primary,
		Secondary:  p.secondary,
		Accent:     p.accent,
		Foreground: p.foreground,
		Muted:      p.muted,
		Error:      p.errorC,
		Success:    p.success,
		Warning:    p.warning,
		Border:     p.border,
		Dimmed:     p.dimmed,
		Subtle:     p.subtle,
		Background: p.background,
		Selection:  p.selection,
	}

	t.Menu.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.Background).
		Padding(0, 1)
	t.Menu.Section = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)
	t.Menu.Item = lipgloss.NewStyle().
		Foreground(t.Foreground)
	t.Menu.SelectedRow = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Background(t.Selection).
		Bold(true)
	t.Menu.Description = lipgloss.NewStyle().
		Foreground(t.Muted)
	t.Menu.Shortcut = lipgloss.NewStyle().
		Foreground(t.Dimmed)
	t.Menu.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)
	t.Menu.Match = lipgloss.NewStyle().
		Foreground(t.Primary).
		Underline(true)
	t.Menu.Empty = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)
	t.Menu.Footer = lipgloss.NewStyle().
		Foreground(t.Dimmed)
	t.Menu.Input = lipgloss.NewStyle().
		Foreground(t.Primary)

	t.Blocks.Heading[0] = lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Underline(true)
	t.Blocks.Heading[1] = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	t.Blocks.Heading[2] = lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	t.Blocks.Paragraph = lipgloss.NewStyle().Foreground(t.Foreground)
	t.Blocks.Code = lipgloss.NewStyle().
		Foreground(t.Warning).
		Background(t.Background)
	t.Blocks.Quote = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)
	t.Blocks.Marker = lipgloss.NewStyle().Foreground(t.Accent)
	t.Blocks.Divider = lipgloss.NewStyle().Foreground(t.Border)
	t.Blocks.TableCell = lipgloss.NewStyle().Foreground(t.Foreground)
	t.Blocks.TableHead = lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	t.Blocks.Gutter = lipgloss.NewStyle().Foreground(t.Subtle)
	t.Blocks.GutterHot = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	t.Blocks.Caret = lipgloss.NewStyle().Reverse(true)

	t.AppTitle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Background(t.Background).
		Bold(true)
	t.Header = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	return t
}

// HeadingStyle returns the style for a heading level, deeper levels sharing
// the level 3 style.
func (t *Theme) HeadingStyle(level int) lipgloss.Style {
	i := min(max(level, 1), 3) - 1
	return t.Blocks.Heading[i]
}

// ThemeCharm returns the default Charm theme
func ThemeCharm() *Theme {
	return newTheme("charm", palettes["charm"])
}

// GetTheme returns a theme by name, defaulting to Charm
func GetTheme(name string) *Theme {
	p, ok := palettes[name]
	if !ok {
		return ThemeCharm()
	}
	return newTheme(name, p)
}

// HasTheme reports whether name is a known theme.
func HasTheme(name string) bool {
	_, ok := palettes[name]
	return ok
}

// AvailableThemes returns a list of available theme names
func AvailableThemes() []string {
	return []string{"charm", "dracula", "catppuccin", "nord", "gruvbox", "tokyo-night", "solarized", "monokai"}
}
