package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/sortvis/internal/automation"
	"github.com/san-kum/sortvis/internal/experiment"
	"github.com/san-kum/sortvis/internal/storage"
)

func benchAlgorithm(cmd *cobra.Command, args []string) error {
	s, err := resolve(cmd, args[0])
	if err != nil {
		return err
	}
	if benchRuns < 1 {
		return fmt.Errorf("runs must be positive, got %d", benchRuns)
	}

	base := experiment.Config{
		Algorithm: s.cfg.Algorithm,
		Size:      s.cfg.Array.Size,
		Min:       s.cfg.Array.Min,
		Max:       s.cfg.Array.Max,
	}
	results, err := experiment.NewEnsemble(base, benchRuns, s.seed).Run(cmd.Context(), registry)
	if err != nil {
		return err
	}

	summary := experiment.Summarize(results)
	fmt.Printf("%s: %d random arrays of %d values, seeds %d..%d\n\n", s.cfg.Algorithm, benchRuns, base.Size, s.seed, s.seed+int64(benchRuns)-1)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "METRIC\tMEAN\tSTDDEV\tMIN\tMAX\t")
	for _, name := range experiment.MetricNames(summary) {
		st := summary[name]
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t\n", name, st.Mean, st.StdDev, st.Min, st.Max)
	}
	return w.Flush()
}

func sweepSizes(cmd *cobra.Command, args []string) error {
	s, err := resolve(cmd, args[0])
	if err != nil {
		return err
	}
	sz, err := parseValues(sizes)
	if err != nil {
		return err
	}

	sweep := &automation.SizeSweep{
		Algorithm: s.cfg.Algorithm,
		Sizes:     sz,
		Trials:    sweepRuns,
		Min:       s.cfg.Array.Min,
		Max:       s.cfg.Array.Max,
		Seed:      s.seed,
	}
	results, err := automation.RunSweep(cmd.Context(), sweep, registry, s.console())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "SIZE\tSTEPS\tCOMPARISONS\tSWAPS\tMOVES\t")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%.1f\t%.1f\t%.1f\t%.1f\t\n", r.Size, r.Stats["steps"].Mean, r.Stats["comparisons"].Mean, r.Stats["swaps"].Mean, r.Stats["moves"].Mean)
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	s, err := resolve(cmd, "")
	if err != nil {
		return err
	}
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	var store *storage.Store
	if save {
		store = storage.New(s.cfg.DataDir)
		if err := store.Init(); err != nil {
			return err
		}
	}

	if sc.Name != "" {
		fmt.Printf("scenario: %s\n", sc.Name)
	}
	outcomes, err := automation.RunScenario(cmd.Context(), sc, registry, store, s.console())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tALGORITHM\tINPUT\tSTEPS\tSWAPS\tRUN")
	for i, o := range outcomes {
		run := o.RunID
		if run == "" {
			run = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%v\t%d\t%.0f\t%s\n", i+1, o.Result.Algorithm, o.Result.Input.Values, len(o.Result.Steps), o.Result.Metrics["swaps"], run)
	}
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}
