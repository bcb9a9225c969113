package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortvis/internal/steps"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color

	// element states
	Default   lipgloss.Color
	Comparing lipgloss.Color
	Swapping  lipgloss.Color
	Sorted    lipgloss.Color
	Pivot     lipgloss.Color
	Partition lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Default:   lipgloss.Color("#3b82f6"),
		Comparing: lipgloss.Color("#facc15"),
		Swapping:  lipgloss.Color("#ef4444"),
		Sorted:    lipgloss.Color("#22c55e"),
		Pivot:     lipgloss.Color("#a855f7"),
		Partition: lipgloss.Color("#f97316"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Default:   lipgloss.Color("#007700"),
		Comparing: lipgloss.Color("#ccff00"),
		Swapping:  lipgloss.Color("#ffff00"),
		Sorted:    lipgloss.Color("#88ff88"),
		Pivot:     lipgloss.Color("#00ffaa"),
		Partition: lipgloss.Color("#33aa33"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Default:   lipgloss.Color("#aaaaaa"),
		Comparing: lipgloss.Color("#0088ff"),
		Swapping:  lipgloss.Color("#ff0000"),
		Sorted:    lipgloss.Color("#ffffff"),
		Pivot:     lipgloss.Color("#ffaa00"),
		Partition: lipgloss.Color("#666666"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"), // Ocean blue
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Default:   lipgloss.Color("#0077be"),
		Comparing: lipgloss.Color("#ffd700"),
		Swapping:  lipgloss.Color("#ff4444"),
		Sorted:    lipgloss.Color("#00ff88"),
		Pivot:     lipgloss.Color("#cc88ff"),
		Partition: lipgloss.Color("#00a8cc"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"), // Coral
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Default:   lipgloss.Color("#8b6b8c"),
		Comparing: lipgloss.Color("#feca57"),
		Swapping:  lipgloss.Color("#ff4757"),
		Sorted:    lipgloss.Color("#5fd068"),
		Pivot:     lipgloss.Color("#ff9ff3"),
		Partition: lipgloss.Color("#ffc048"),
	}

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, candidate := range Themes {
		if candidate.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// StateColor maps an element state to its bar color. The directional swap
// states share the swap color.
func (t Theme) StateColor(s steps.ElementState) lipgloss.Color {
	switch {
	case s == steps.StateComparing:
		return t.Comparing
	case s.IsSwapping():
		return t.Swapping
	case s == steps.StateSorted:
		return t.Sorted
	case s == steps.StatePivot:
		return t.Pivot
	case s == steps.StatePartition:
		return t.Partition
	default:
		return t.Default
	}
}
