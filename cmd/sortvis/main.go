package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/audio"
	"github.com/san-kum/sortvis/internal/catalog"
	"github.com/san-kum/sortvis/internal/config"
	"github.com/san-kum/sortvis/internal/logging"
	"github.com/san-kum/sortvis/internal/playback"
	"github.com/san-kum/sortvis/internal/viz"
)

var (
	configFile string
	dataDir    string
	seed       int64
	values     string
	preset     string
	target     int
	size       int
	speed      float64
	logLevel   string
	theme      string
	sound      bool
	// export-svg
	stepIndex  int
	outFile    string
	inversions bool
	// play
	quiet bool
	// bench, sweep
	benchRuns int
	sweepRuns int
	sizes     string
	save      bool
)

var registry = catalog.NewRegistry()

// main registers the commands and flags and runs the root command. Without a
// subcommand it opens the interactive menu.
func main() {
	rootCmd := &cobra.Command{
		Use:          "sortvis",
		Short:        "step-by-step sorting and search visualizer",
		SilenceUsage: true,
		RunE:         runMenu,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.StringVar(&values, "values", "", "comma separated input array, e.g. 5,3,8,1")
	pf.StringVar(&preset, "preset", "", "named input array (see presets)")
	pf.IntVar(&target, "target", 0, "search target (0 picks one of the values)")
	pf.IntVar(&size, "size", 0, "random array size")
	pf.Float64Var(&speed, "speed", float64(playback.DefaultSpeed), "playback speed (0.5, 1, 1.5, 2, 3)")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.BoolVar(&sound, "sound", false, "play a tone for every step (needs an audio device)")
	pf.StringVar(&theme, "theme", "", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	runCmd := &cobra.Command{
		Use:   "run [algo]",
		Short: "open the visualizer for one algorithm",
		Args:  cobra.ExactArgs(1),
		RunE:  runVisualizer,
	}

	playCmd := &cobra.Command{
		Use:   "play [algo]",
		Short: "timed playback on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  playHeadless,
	}
	playCmd.Flags().BoolVar(&quiet, "quiet", false, "print descriptions only")

	traceCmd := &cobra.Command{
		Use:   "trace [algo]",
		Short: "print every step without timing",
		Args:  cobra.ExactArgs(1),
		RunE:  traceSteps,
	}

	algosCmd := &cobra.Command{
		Use:   "algos",
		Short: "list algorithms",
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list input presets",
		RunE:  listPresets,
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare step statistics of every algorithm on one array",
		RunE:  compareAlgorithms,
	}

	recordCmd := &cobra.Command{
		Use:   "record [algo]",
		Short: "generate and store a run",
		Args:  cobra.ExactArgs(1),
		RunE:  recordRun,
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot inversions per step",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run with all steps as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export one step of a run as an SVG bar chart",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&stepIndex, "step", -1, "step index (-1 for the last step)")
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (stdout when empty)")
	exportSVGCmd.Flags().BoolVar(&inversions, "inversions", false, "plot inversions per step instead of a step")

	benchCmd := &cobra.Command{
		Use:   "bench [algo]",
		Short: "average step statistics over many random arrays",
		Args:  cobra.ExactArgs(1),
		RunE:  benchAlgorithm,
	}
	benchCmd.Flags().IntVar(&benchRuns, "runs", 100, "number of random arrays")

	sweepCmd := &cobra.Command{
		Use:   "sweep [algo]",
		Short: "step statistics as the array grows",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepSizes,
	}
	sweepCmd.Flags().IntVar(&sweepRuns, "runs", 20, "random arrays per size")
	sweepCmd.Flags().StringVar(&sizes, "sizes", "4,8,16,32", "comma separated array sizes")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted list of runs from YAML",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().BoolVar(&save, "save", true, "store steps marked save")

	rootCmd.AddCommand(runCmd, playCmd, traceCmd, algosCmd, presetsCmd, compareCmd, recordCmd, runsCmd, showCmd, plotCmd, exportJSONCmd, exportSVGCmd, benchCmd, sweepCmd, scenarioCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// session is the resolved configuration of one command invocation.
type session struct {
	cfg  *config.Config
	seed int64
	rng  *rand.Rand
}

// resolve layers defaults, the config file, the preset and explicitly set
// flags, in that order, then validates the result.
func resolve(cmd *cobra.Command, algo string) (*session, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.ApplyPreset(p)
	}

	flags := cmd.Flags()
	if algo != "" {
		cfg.Algorithm = algo
	}
	if flags.Changed("values") {
		parsed, err := parseValues(values)
		if err != nil {
			return nil, err
		}
		cfg.Array.Values = parsed
	}
	if flags.Changed("target") {
		cfg.Array.Target = target
	}
	if flags.Changed("size") {
		cfg.Array.Size = size
		if !flags.Changed("values") && preset == "" {
			cfg.Array.Values = nil
		}
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(registry); err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, seed: cfg.Seed}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(s.seed))
	return s, nil
}

func (s *session) input() (algorithms.Input, error) {
	return s.cfg.Input(s.rng)
}

func (s *session) console() zerolog.Logger {
	log, err := logging.Console(s.cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return log
}

func (s *session) settings(log zerolog.Logger) viz.Settings {
	st := viz.DefaultSettings()
	st.Size = s.cfg.Array.Size
	st.Min, st.Max = s.cfg.Array.Min, s.cfg.Array.Max
	st.Speed = playback.Speed(s.cfg.Speed)
	st.Theme = s.cfg.Theme
	st.Rand = s.rng
	st.Logger = log
	return st
}

// startSound opens the audio device when --sound is set. Failure to open it is
// logged and playback continues silently.
func startSound(log zerolog.Logger) *audio.Sonifier {
	if !sound {
		return nil
	}
	snd := audio.New()
	if err := snd.Start(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable")
		return nil
	}
	return snd
}

func parseValues(v string) ([]int, error) {
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func runMenu(cmd *cobra.Command, args []string) error {
	s, err := resolve(cmd, "")
	if err != nil {
		return err
	}
	log, closer, err := logging.File(s.cfg.DataDir, s.cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	st := s.settings(log)
	if snd := startSound(log); snd != nil {
		defer snd.Stop()
		st.Sound = snd
	}
	if len(s.cfg.Array.Values) > 0 {
		log.Warn().Msg("the menu always starts from random arrays; use run to visualize given values")
	}
	log.Info().Int64("seed", s.seed).Msg("menu started")
	return viz.RunInteractive(registry, st)
}

func runVisualizer(cmd *cobra.Command, args []string) error {
	s, err := resolve(cmd, args[0])
	if err != nil {
		return err
	}
	algo, err := registry.Get(s.cfg.Algorithm)
	if err != nil {
		return err
	}
	in, err := s.input()
	if err != nil {
		return err
	}
	log, closer, err := logging.File(s.cfg.DataDir, s.cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	st := s.settings(log)
	st.Input = in
	if snd := startSound(log); snd != nil {
		defer snd.Stop()
		st.Sound = snd
	}
	log.Info().Int64("seed", s.seed).Msg("visualizer started")
	return viz.Run(algo, st)
}
