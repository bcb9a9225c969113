package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/catalog"
)

const (
	stateMenu = iota
	stateViz
)

var (
	menuTitle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	menuSub      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	menuCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	menuSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	menuDesc     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	menuItem     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	menuItemDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	menuCategory = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Italic(true)
)

// App is the algorithm menu. Selecting an entry opens a visualizer Model;
// esc in the visualizer comes back here.
type App struct {
	state, cursor int
	reg           *catalog.Registry
	infos         []algorithms.Info
	settings      Settings
	live          Model
	hasLive       bool
	width, height int
}

func NewApp(reg *catalog.Registry, s Settings) App {
	return App{
		state:    stateMenu,
		reg:      reg,
		infos:    reg.Infos(),
		settings: s,
		width:    width,
		height:   height,
	}
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.state == stateMenu {
			return a.menuKey(msg)
		}
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case backMsg:
		a.state = stateMenu
		return a, nil
	}
	if a.state != stateViz {
		return a, nil
	}
	next, cmd := a.live.Update(msg)
	a.live = next.(Model)
	return a, cmd
}

func (a App) menuKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.infos)-1 {
			a.cursor++
		}
	case "enter", " ":
		if len(a.infos) == 0 {
			return a, nil
		}
		return a.open(a.infos[a.cursor].ID)
	}
	return a, nil
}

// open starts a visualizer for id, keeping the theme picked in the previous
// one.
func (a App) open(id string) (App, tea.Cmd) {
	algo, err := a.reg.Get(id)
	if err != nil {
		a.settings.Logger.Error().Err(err).Msg("open algorithm")
		return a, nil
	}
	s := a.settings
	s.Input = algorithms.Input{}
	if a.hasLive {
		s.Theme = a.live.Theme().Name
	}
	a.live = NewModel(algo, s)
	a.live.width, a.live.height = a.width, a.height
	a.hasLive = true
	a.state = stateViz
	return a, a.live.Init()
}

func (a App) View() string {
	if a.state == stateViz {
		return a.live.View()
	}
	return a.viewMenu()
}

func (a App) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + menuTitle.Render("SORTVIS") + "\n    " + menuSub.Render("step-by-step algorithm visualizer") + "\n    " + Separator(33) + "\n\n")

	category := algorithms.Category("")
	for i, info := range a.infos {
		if info.Category != category {
			category = info.Category
			b.WriteString("    " + menuCategory.Render(string(category)) + "\n")
		}
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", menuCursor.Render("▸"), menuSelected.Render(fmt.Sprintf("%-16s", info.Name)), menuDesc.Render(info.Summary)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", menuItem.Render(fmt.Sprintf("  %-16s", info.Name)), menuItemDesc.Render(info.Summary)))
		}
	}
	b.WriteString("\n    " + KeyHelp("j/k", "navigate", "enter", "select", "q", "quit") + "\n")
	return b.String()
}

// RunInteractive starts the menu-driven TUI.
func RunInteractive(reg *catalog.Registry, s Settings) error {
	_, err := tea.NewProgram(NewApp(reg, s), tea.WithAltScreen()).Run()
	return err
}
