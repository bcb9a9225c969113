package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/config"
	"github.com/san-kum/sortvis/internal/export"
	"github.com/san-kum/sortvis/internal/metrics"
	"github.com/san-kum/sortvis/internal/playback"
	"github.com/san-kum/sortvis/internal/steps"
	"github.com/san-kum/sortvis/internal/storage"
	"github.com/san-kum/sortvis/internal/viz"
)

// playHeadless drives a controller with real timers and prints each step as
// the cursor reaches it.
func playHeadless(cmd *cobra.Command, args []string) error {
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
	log := s.console()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sched := playback.NewTimerScheduler()
	defer sched.Close()

	ctrl := playback.New(sched, playback.WithSpeed(playback.Speed(s.cfg.Speed)), playback.WithLogger(log))
	ctrl.Load(algo.Generate(in))
	log.Info().Str("algorithm", algo.Info().ID).Ints("values", in.Values).Int64("seed", s.seed).Stringer("speed", ctrl.Speed()).Msg("playing")

	show := printView
	if snd := startSound(log); snd != nil {
		defer snd.Stop()
		show = func(v playback.View) {
			snd.Play(v.Step)
			printView(v)
		}
	}

	show(ctrl.Snapshot())
	if !ctrl.Play() {
		return nil
	}
	return drive(ctx, ctrl, sched.C(), show)
}

// drive feeds scheduler tokens into the controller until playback stops or
// ctx is cancelled. show is called whenever the cursor moves.
func drive(ctx context.Context, ctrl *playback.Controller, tokens <-chan playback.Token, show func(playback.View)) error {
	for ctrl.Playing() {
		select {
		case <-ctx.Done():
			ctrl.Pause()
			return ctx.Err()
		case token := <-tokens:
			before := ctrl.Cursor()
			if ctrl.Fire(token) && ctrl.Cursor() != before {
				show(ctrl.Snapshot())
			}
		}
	}
	return nil
}

func printView(v playback.View) {
	if v.Total == 0 {
		return
	}
	if quiet {
		fmt.Println(v.Step.Description)
		return
	}
	fmt.Printf("[%3d/%d] %-22s %s\n", v.Cursor+1, v.Total, formatArray(v.Step.Array), v.Step.Description)
}

// formatArray marks non-default elements with a state suffix.
func formatArray(arr []steps.Element) string {
	parts := make([]string, len(arr))
	for i, e := range arr {
		parts[i] = fmt.Sprint(e.Value) + stateMark(e.State)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func stateMark(s steps.ElementState) string {
	switch {
	case s == steps.StateComparing:
		return "?"
	case s.IsSwapping():
		return "*"
	case s == steps.StateSorted:
		return "."
	case s == steps.StatePivot:
		return "^"
	case s == steps.StatePartition:
		return "~"
	default:
		return ""
	}
}

func traceSteps(cmd *cobra.Command, args []string) error {
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
	seq := algo.Generate(in)

	fmt.Printf("%s on %v", algo.Info().Name, in.Values)
	if algo.Info().Category == algorithms.CategorySearch {
		fmt.Printf(" (target %d)", in.Target)
	}
	fmt.Printf(", %d steps\n\n", len(seq))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tKIND\tARRAY\tDESCRIPTION")
	for i, step := range seq {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, step.Kind, formatArray(step.Array), step.Description)
	}
	return w.Flush()
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tTIME\tSPACE\tSUMMARY")
	for _, info := range registry.Infos() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", info.ID, info.Name, info.Category, info.TimeComplexity, info.SpaceComplexity, info.Summary)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVALUES\tTARGET\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		t := "-"
		if p.Target != 0 {
			t = fmt.Sprint(p.Target)
		}
		fmt.Fprintf(w, "%s\t%v\t%s\t%s\n", name, p.Values, t, p.Description)
	}
	return w.Flush()
}

// compareAlgorithms runs every algorithm on the same input and tabulates the
// default metrics.
func compareAlgorithms(cmd *cobra.Command, args []string) error {
	s, err := resolve(cmd, "")
	if err != nil {
		return err
	}
	in, err := s.input()
	if err != nil {
		return err
	}

	fmt.Printf("input %v, target %d\n\n", in.Values, in.Target)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCOMPARISONS\tSWAPS\tMOVES\tSORTEDNESS\t")
	for _, id := range registry.IDs() {
		algo, err := registry.Get(id)
		if err != nil {
			return err
		}
		m := metrics.Evaluate(algo.Generate(in), metrics.Default()...)
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0f\t%.0f\t%.2f\t\n", id, m["steps"], m["comparisons"], m["swaps"], m["moves"], m["sortedness"])
	}
	return w.Flush()
}

func recordRun(cmd *cobra.Command, args []string) error {
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
	log := s.console()

	st := storage.New(s.cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	seq := algo.Generate(in)
	m := metrics.Evaluate(seq, metrics.Default()...)
	runID, err := st.Save(algo.Info().ID, in, s.seed, seq, m)
	if err != nil {
		return err
	}
	log.Debug().Str("run", runID).Str("dir", st.Dir()).Msg("run stored")

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("input: %v\n", in.Values)
	fmt.Printf("steps: %d\n", len(seq))
	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.4f\n", name, m[name])
	}
	return nil
}

func openStore(cmd *cobra.Command) (*storage.Store, error) {
	s, err := resolve(cmd, "")
	if err != nil {
		return nil, err
	}
	return storage.New(s.cfg.DataDir), nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tSTEPS\tINPUT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%v\n",
			run.ID,
			run.Algorithm,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Input,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func plotRun(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	seq, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}
	if len(seq) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("algorithm: %s\n", meta.Algorithm)
	fmt.Printf("steps: %d\n\n", len(seq))

	graph := asciigraph.Plot(metrics.InversionSeries(seq),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("inversions per step"),
	)
	fmt.Println(graph)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	seq, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}
	algo, err := registry.Get(meta.Algorithm)
	if err != nil {
		return err
	}

	in := algorithms.Input{Values: meta.Input, Target: meta.Target}
	return storage.ExportJSONStdout(storage.NewExportData(algo.Info(), in, seq, meta.Metrics))
}

func exportSVG(cmd *cobra.Command, args []string) error {
	s, err := resolve(cmd, "")
	if err != nil {
		return err
	}
	st := storage.New(s.cfg.DataDir)
	seq, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}
	if len(seq) == 0 {
		return fmt.Errorf("run %s has no steps", args[0])
	}

	th := viz.GetTheme(s.cfg.Theme)
	var svg string
	if inversions {
		svg = export.SeriesToSVG(metrics.InversionSeries(seq), 800, 300, string(th.Secondary))
	} else {
		i := stepIndex
		if i < 0 {
			i = len(seq) - 1
		}
		if i >= len(seq) {
			return fmt.Errorf("step %d out of range (run has %d steps)", i, len(seq))
		}
		svg = export.StepToSVG(seq[i], th, 800, 400)
	}

	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(outFile, []byte(svg+"\n"), 0644)
}
