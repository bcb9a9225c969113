package viz

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/metrics"
	"github.com/san-kum/sortvis/internal/playback"
	"github.com/san-kum/sortvis/internal/steps"
)

const (
	width         = 80
	height        = 24
	minBarRows    = 4
	maxBarRows    = 16
	progressWidth = 40
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(1, 0)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = MetricLabel.Width(12)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// backMsg asks the enclosing App to return to the menu.
type backMsg struct{}

// Sounder is told about every step the cursor lands on.
type Sounder interface {
	Play(step steps.Step)
}

// Settings are the inputs a visualizer needs besides the algorithm.
type Settings struct {
	Input    algorithms.Input
	Size     int
	Min, Max int
	Speed    playback.Speed
	Theme    string
	Rand     *rand.Rand
	Logger   zerolog.Logger
	Sound    Sounder
}

func DefaultSettings() Settings {
	return Settings{
		Size:   steps.DefaultSize,
		Min:    steps.DefaultMin,
		Max:    steps.DefaultMax,
		Speed:  playback.DefaultSpeed,
		Theme:  ThemeCyberpunk.Name,
		Rand:   rand.New(rand.NewSource(1)),
		Logger: zerolog.Nop(),
	}
}

// Model renders one algorithm's step sequence and drives playback.
type Model struct {
	algo          algorithms.Algorithm
	settings      Settings
	input         algorithms.Input
	ctrl          *playback.Controller
	sched         *tickScheduler
	theme         Theme
	inversions    []float64
	showHelp      bool
	width, height int
	log           zerolog.Logger
}

// NewModel generates the sequence for settings.Input, or for a random array
// when no values are given.
func NewModel(algo algorithms.Algorithm, s Settings) Model {
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(1))
	}
	log := s.Logger.With().Str("algorithm", algo.Info().ID).Logger()
	sched := &tickScheduler{}
	ctrl := playback.New(sched, playback.WithSpeed(s.Speed), playback.WithLogger(log))
	sched.owner = ctrl

	m := Model{
		algo:     algo,
		settings: s,
		ctrl:     ctrl,
		sched:    sched,
		theme:    GetTheme(s.Theme),
		width:    width,
		height:   height,
		log:      log,
	}
	if len(s.Input.Values) > 0 {
		m.load(s.Input)
	} else {
		m.regenerate()
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles keys and scheduled advances. Commands produced by the
// controller's scheduler are flushed after every message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	before := m.ctrl.Cursor()
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case advanceMsg:
		if msg.owner == m.ctrl {
			m.ctrl.Fire(msg.token)
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case backMsg:
		// no menu to return to when run on its own
		return m, tea.Quit
	}
	if m.ctrl.Cursor() != before {
		m.sound()
	}
	return m, tea.Batch(cmd, m.sched.flush())
}

func (m Model) sound() {
	if m.settings.Sound == nil {
		return
	}
	if step, ok := m.ctrl.Current(); ok {
		m.settings.Sound.Play(step)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case " ":
		m.ctrl.Toggle()
	case "left", "h":
		m.ctrl.StepBackward()
	case "right", "l":
		m.ctrl.StepForward()
	case "r":
		m.ctrl.Reset()
	case "n":
		m.regenerate()
	case "+", "=":
		m.setSpeed(m.ctrl.Speed().Faster())
	case "-", "_":
		m.setSpeed(m.ctrl.Speed().Slower())
	case "t":
		m.theme = NextTheme(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	case "esc":
		m.ctrl.Pause()
		return func() tea.Msg { return backMsg{} }
	}
	return nil
}

func (m *Model) setSpeed(s playback.Speed) {
	if err := m.ctrl.SetSpeed(s); err != nil {
		m.log.Warn().Err(err).Msg("speed change rejected")
	}
}

// regenerate draws a fresh random array, and a target among its values for
// the search algorithms.
func (m *Model) regenerate() {
	values, err := steps.RandomValues(m.settings.Rand, m.settings.Size, m.settings.Min, m.settings.Max)
	if err != nil {
		m.log.Error().Err(err).Msg("random array")
		values = nil
	}
	in := algorithms.Input{Values: values}
	if m.algo.Info().Category == algorithms.CategorySearch {
		in.Target = steps.PickTarget(m.settings.Rand, values, m.settings.Min)
	}
	m.load(in)
}

func (m *Model) load(in algorithms.Input) {
	m.input = in
	seq := m.algo.Generate(in)
	m.inversions = metrics.InversionSeries(seq)
	m.ctrl.Load(seq)
	m.log.Info().Ints("values", in.Values).Int("target", in.Target).Int("steps", len(seq)).Msg("sequence generated")
}

// Controller exposes the playback state for callers that embed the model.
func (m Model) Controller() *playback.Controller { return m.ctrl }

func (m Model) Input() algorithms.Input { return m.input }

func (m Model) Theme() Theme { return m.theme }

func (m Model) View() string {
	info := m.algo.Info()
	view := m.ctrl.Snapshot()

	var s strings.Builder
	s.WriteString(headerStyle.Render(GradientText(strings.ToUpper(info.Name), m.theme.Primary, m.theme.Secondary)) + "\n")
	if info.Category == algorithms.CategorySearch {
		s.WriteString(MetricLabel.Render("target ") + MetricValue.Render(fmt.Sprint(m.input.Target)) + "\n")
	}
	s.WriteString("\n")

	chart := RenderBars(view.Step.Array, m.theme, m.barRows())
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chart, statsStyle.Render(m.stats(view))))
	s.WriteString("\n")

	desc := view.Step.Description
	if view.Total == 0 {
		desc = "No steps to show."
	}
	s.WriteString(descStyle.Render(desc) + "\n")

	current := view.Cursor + 1
	if view.Total == 0 {
		current = 0
	}
	s.WriteString(fmt.Sprintf("Step %d of %d (%.0f%%)\n", current, view.Total, view.Percent))
	s.WriteString(ProgressBar(view.Percent/100, progressWidth) + "\n\n")
	s.WriteString(Legend(m.theme) + "\n")

	if m.showHelp {
		s.WriteString("\n" + GlassPanel.Render(helpText()) + "\n")
	} else {
		s.WriteString(helpStyle.Render(KeyHelp("space", "play/pause", "←/→", "step", "r", "reset", "n", "new", "+/-", "speed", "?", "help", "esc", "menu")))
	}
	return s.String()
}

func (m Model) stats(view playback.View) string {
	info := m.algo.Info()
	var status string
	switch view.Phase {
	case playback.PhasePlaying:
		status = StatusRunning.Render(AnimatedSpinner(view.Cursor) + " " + view.Phase.String())
	case playback.PhasePaused:
		status = StatusPaused.Render(view.Phase.String())
	default:
		status = StatusIdle.Render(view.Phase.String())
	}

	rows := []string{
		labelStyle.Render("status") + status,
		labelStyle.Render("speed") + MetricValue.Render(view.Speed.String()),
		labelStyle.Render("time") + MetricValue.Render(info.TimeComplexity),
		labelStyle.Render("space") + MetricValue.Render(info.SpaceComplexity),
		labelStyle.Render("theme") + MetricValue.Render(m.theme.Name),
	}
	if info.Category == algorithms.CategorySorting && view.Cursor < len(m.inversions) {
		rows = append(rows,
			labelStyle.Render("inversions")+MetricValue.Render(fmt.Sprintf("%.0f", m.inversions[view.Cursor])),
			SparklineChart(m.inversions[:view.Cursor+1], 24))
	}
	return strings.Join(rows, "\n")
}

func (m Model) barRows() int {
	rows := m.height - 14
	if rows < minBarRows {
		rows = minBarRows
	}
	if rows > maxBarRows {
		rows = maxBarRows
	}
	return rows
}

func helpText() string {
	lines := []string{
		KeyHelp("space", "play or pause auto-advance"),
		KeyHelp("←/h", "previous step"),
		KeyHelp("→/l", "next step"),
		KeyHelp("r", "back to the first step"),
		KeyHelp("n", "new random array"),
		KeyHelp("+/-", "speed through "+speedList()),
		KeyHelp("t", "cycle theme"),
		KeyHelp("esc", "algorithm menu"),
		KeyHelp("q", "quit"),
	}
	return strings.Join(lines, "\n")
}

func speedList() string {
	parts := make([]string, len(playback.Speeds))
	for i, s := range playback.Speeds {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// Run starts a standalone visualizer for one algorithm.
func Run(algo algorithms.Algorithm, s Settings) error {
	_, err := tea.NewProgram(NewModel(algo, s), tea.WithAltScreen()).Run()
	return err
}
