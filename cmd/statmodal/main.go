package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/emach-lab/statmodal/internal/config"
	"github.com/emach-lab/statmodal/internal/modal"
	"github.com/emach-lab/statmodal/internal/report"
	"github.com/emach-lab/statmodal/internal/storage"
	"github.com/emach-lab/statmodal/internal/sweep"
	"github.com/emach-lab/statmodal/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	orders     string
	tolerance  float64
	saveRun    bool
	label      string
	// sweep range
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "statmodal",
		Short: "stator and frame modal frequency estimator",
		Long: `statmodal estimates natural vibration frequencies of an electric
machine's stator core, its frame, and the assembled system from thin-shell
theory, one row per (radial, axial) mode pair.`,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".statmodal", "data directory")

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "compute the frequency table for a machine design",
		RunE:  runCompute,
	}
	addDesignFlags(computeCmd)
	computeCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run")
	computeCmd.Flags().StringVar(&label, "label", "run", "label for the saved run")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "interactively tune parameters and watch the table",
		RunE:  runTune,
	}
	addDesignFlags(tuneCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [param]",
		Short: "sweep one parameter and trace the fundamental frequency",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addDesignFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "start value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0, "end value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of samples")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot saved frequencies against row index",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "write to a file instead of stdout")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in machine presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.Presets[name].Machine
				fmt.Printf("%-10s %d slots, %.0fmm OD stator, %.0fmm frame\n",
					name, p.Slots, 2000*p.OuterRadius, 1000*p.FrameDiameter)
			}
			return nil
		},
	}

	rootCmd.AddCommand(computeCmd, tuneCmd, sweepCmd, listCmd, showCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addDesignFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "machine config file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a built-in machine preset")
	cmd.Flags().StringVar(&orders, "orders", "", "radial orders, e.g. 0-4 or 0,2,4")
	cmd.Flags().Float64Var(&tolerance, "tol", 0, "real-root tolerance for the frame solver")
}

// resolveConfig layers preset, config file and flags, later sources
// overriding earlier ones.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("orders") {
		parsed, err := parseOrders(orders)
		if err != nil {
			return nil, err
		}
		cfg.RadialOrders = parsed
	}
	if cmd.Flags().Changed("tol") {
		cfg.Tolerance = tolerance
	}

	return cfg, nil
}

// parseOrders accepts "0-4" ranges and comma lists like "0,2,4".
func parseOrders(spec string) ([]int, error) {
	if lo, hi, ok := strings.Cut(spec, "-"); ok {
		from, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("bad radial order range %q", spec)
		}
		to, err := strconv.Atoi(hi)
		if err != nil || to < from {
			return nil, fmt.Errorf("bad radial order range %q", spec)
		}
		result := make([]int, 0, to-from+1)
		for m := from; m <= to; m++ {
			result = append(result, m)
		}
		return result, nil
	}

	parts := strings.Split(spec, ",")
	result := make([]int, 0, len(parts))
	for _, part := range parts {
		m, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad radial order %q", part)
		}
		result = append(result, m)
	}
	return result, nil
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	est := &modal.Estimator{Params: cfg.Machine, Tolerance: cfg.Tolerance}
	table, err := est.Estimate(cfg.RadialOrders)
	if err != nil {
		return err
	}

	fmt.Println(table.Description)
	fmt.Println()
	printTable(table)

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(label, cfg.Machine, cfg.RadialOrders, cfg.Tolerance, table)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func printTable(table *modal.Table) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tCORE (Hz)\tFRAME (Hz)\tSYSTEM (Hz)")
	for _, row := range table.Rows {
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\n", row.Mode, row.Core, row.Frame, row.System)
	}
	w.Flush()
}

func runTune(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m := tui.NewModel(cfg.Machine, cfg.RadialOrders, cfg.Tolerance)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	param := args[0]
	if !cmd.Flags().Changed("from") || !cmd.Flags().Changed("to") {
		return fmt.Errorf("sweep needs --from and --to")
	}

	s := &sweep.Sweep{
		Base:      cfg.Machine,
		Param:     param,
		From:      sweepFrom,
		To:        sweepTo,
		Steps:     sweepSteps,
		Radial:    cfg.RadialOrders,
		Tolerance: cfg.Tolerance,
	}

	points, err := s.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("sweeping %s from %g to %g (%d samples)\n\n", param, sweepFrom, sweepTo, sweepSteps)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tFUNDAMENTAL (Hz)\n", strings.ToUpper(param))

	trend := make([]float64, len(points))
	for i, pt := range points {
		f := fundamental(pt.Table)
		trend[i] = f
		fmt.Fprintf(w, "%.5g\t%.1f\n", pt.Value, f)
	}
	w.Flush()

	fmt.Println()
	fmt.Println(asciigraph.Plot(trend,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("lowest system frequency vs %s", param)),
	))

	return nil
}

// fundamental is the lowest assembled-system frequency in the table.
func fundamental(table *modal.Table) float64 {
	low := math.Inf(1)
	for _, row := range table.Rows {
		if row.System < low {
			low = row.System
		}
	}
	return low
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tTIME\tORDERS\tROWS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			len(run.RadialOrders),
			run.Rows,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	table, err := st.LoadTable(args[0])
	if err != nil {
		return err
	}

	if len(table.Rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	series := []struct {
		caption string
		pick    func(modal.Row) float64
	}{
		{"stator core (Hz)", func(r modal.Row) float64 { return r.Core }},
		{"frame (Hz)", func(r modal.Row) float64 { return r.Frame }},
		{"assembled system (Hz)", func(r modal.Row) float64 { return r.System }},
	}

	for _, sr := range series {
		data := make([]float64, len(table.Rows))
		for i, row := range table.Rows {
			data[i] = sr.pick(row)
		}

		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(sr.caption),
		))
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	table, err := st.LoadTable(args[0])
	if err != nil {
		return err
	}
	return report.WriteCSV(os.Stdout, table)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	table, err := st.LoadTable(args[0])
	if err != nil {
		return err
	}

	if outFile != "" {
		return report.ExportJSON(outFile, meta.Machine, meta.RadialOrders, table)
	}
	return report.ExportJSONStdout(meta.Machine, meta.RadialOrders, table)
}
