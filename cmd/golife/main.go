package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/golife/internal/analysis"
	"github.com/san-kum/golife/internal/automation"
	"github.com/san-kum/golife/internal/config"
	"github.com/san-kum/golife/internal/desktop"
	"github.com/san-kum/golife/internal/ebitenui"
	"github.com/san-kum/golife/internal/export"
	"github.com/san-kum/golife/internal/gui"
	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/metrics"
	"github.com/san-kum/golife/internal/pattern"
	"github.com/san-kum/golife/internal/sim"
	"github.com/san-kum/golife/internal/storage"
	"github.com/san-kum/golife/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	toolkit    string
	theme      string
	// Board
	width      int
	height     int
	seed       int64
	density    float64
	rule       string
	patternArg string
	// Display
	tps      int
	cellSize int
	// Headless runs
	generations int
	workers     int
	noStop      bool
	runName     string
	// Exports
	format       string
	renderOutput string
	renderCell   int
	gifOutput    string
	gifCell      int
	frames       int
	delay        int
	// Analysis
	damageGens int
	// Sweep
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	sweepRuns  int
)

// main registers the golife commands. With no subcommand the graphical board
// is opened with the configured toolkit.
func main() {
	rootCmd := &cobra.Command{
		Use:   "golife",
		Short: "conway's game of life on a wrapping grid",
		RunE:  runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".golife", "data directory")
	addBoardFlags(rootCmd)
	addDisplayFlags(rootCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the interactive board in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	addBoardFlags(guiCmd)
	addDisplayFlags(guiCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "play in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	addBoardFlags(tuiCmd)
	addDisplayFlags(tuiCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a board headlessly and store the result",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addBoardFlags(runCmd)
	addRunFlags(runCmd)
	runCmd.Flags().StringVar(&runName, "name", "", "run name (defaults to preset or pattern)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot population over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "population spectrum and damage spreading",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&damageGens, "damage", 100, "generations of damage spreading from the center cell (0 skips)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "render the final board of a run as svg or png",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	renderCmd.Flags().StringVar(&format, "format", "svg", "output format (svg, png, rle, txt)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default stdout)")
	renderCmd.Flags().IntVar(&renderCell, "cell-size", config.DefaultCellSize, "cell size in pixels")

	gifCmd := &cobra.Command{
		Use:   "gif",
		Short: "record an animated gif of a board",
		Args:  cobra.NoArgs,
		RunE:  recordGIF,
	}
	addBoardFlags(gifCmd)
	gifCmd.Flags().IntVar(&frames, "frames", 100, "number of generations to record")
	gifCmd.Flags().IntVar(&delay, "delay", 5, "delay between frames in 1/100 s")
	gifCmd.Flags().IntVar(&gifCell, "cell-size", 6, "cell size in pixels")
	gifCmd.Flags().StringVarP(&gifOutput, "output", "o", "golife.gif", "output file")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark sequential and parallel stepping",
		Args:  cobra.NoArgs,
		RunE:  benchStep,
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list built-in patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("patterns:")
			for _, name := range pattern.Names() {
				p, err := pattern.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Printf("  %-14s %dx%d\n", name, p.Width, p.Height)
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s %dx%d %s\n", name, p.Board.Width, p.Board.Height, p.Board.Rule)
			}
			return nil
		},
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run every step of a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "measure survival over a range of soup densities",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addBoardFlags(sweepCmd)
	addRunFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.05, "lowest density")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0.95, "highest density")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of densities")
	sweepCmd.Flags().IntVar(&sweepRuns, "runs", 8, "runs per density")

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, listCmd, plotCmd, analyzeCmd, exportCmd, exportCSVCmd,
		renderCmd, gifCmd, benchCmd, patternsCmd, presetsCmd, scenarioCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "board width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "board height")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "initial live fraction")
	cmd.Flags().StringVar(&rule, "rule", config.DefaultRule, "rule in B/S notation")
	cmd.Flags().StringVar(&patternArg, "pattern", "", "built-in pattern placed in the center")
}

func addDisplayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&toolkit, "toolkit", config.ToolkitRaylib, "window toolkit (raylib, fyne, ebiten)")
	cmd.Flags().StringVar(&theme, "theme", "classic", "terminal theme")
	cmd.Flags().IntVar(&tps, "tps", config.DefaultTPS, "generations per second while running")
	cmd.Flags().IntVar(&cellSize, "cell-size", config.DefaultCellSize, "cell size in pixels")
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&generations, "generations", config.DefaultRunGens, "generations to simulate")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel step workers (0 or 1 steps sequentially)")
	cmd.Flags().BoolVar(&noStop, "no-stop", false, "keep running after the board repeats")
}

// resolveConfig starts from the defaults, then the preset, then the config
// file, and finally applies any flag the user actually set.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Board.Width = width
	}
	if flags.Changed("height") {
		cfg.Board.Height = height
	}
	if flags.Changed("seed") {
		cfg.Board.Seed = seed
	}
	if flags.Changed("rule") {
		cfg.Board.Rule = rule
	}
	if flags.Changed("pattern") {
		cfg.Board.Pattern = patternArg
		if !flags.Changed("density") {
			cfg.Board.Density = 0
		}
	}
	if flags.Changed("density") {
		cfg.Board.Density = density
	}
	if flags.Changed("toolkit") {
		cfg.Display.Toolkit = toolkit
	}
	if flags.Changed("theme") {
		cfg.Display.Theme = theme
	}
	if flags.Changed("tps") {
		cfg.Display.TPS = tps
	}
	if flags.Changed("cell-size") {
		cfg.Display.CellSize = cellSize
	}
	if flags.Changed("generations") {
		cfg.Run.Generations = generations
	}
	if flags.Changed("workers") {
		cfg.Run.Workers = workers
	}
	if flags.Changed("no-stop") {
		cfg.Run.StopWhenStable = !noStop
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newGame(cfg *config.Config) (*sim.Game, error) {
	b, err := cfg.BuildBoard()
	if err != nil {
		return nil, err
	}
	return sim.NewGame(b, cfg.Rule()), nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	game, err := newGame(cfg)
	if err != nil {
		return err
	}

	frontend := gui.Run
	switch cfg.Display.Toolkit {
	case config.ToolkitFyne:
		frontend = desktop.Run
	case config.ToolkitEbiten:
		if !ebitenui.Available {
			return fmt.Errorf("ebiten toolkit not compiled in; rebuild with -tags ebiten")
		}
		frontend = ebitenui.Run
	}
	return withInterrupt(func(ctx context.Context) error {
		return frontend(ctx, game, cfg)
	})
}

// withInterrupt runs an event loop with a context canceled by Ctrl+C. An
// interrupted loop is a normal exit.
func withInterrupt(loop func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := loop(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runTUI(cmd *cobra.Command, args []string) error {
	if preset == "" && configFile == "" && !cmd.Flags().Changed("pattern") {
		t := theme
		if !cmd.Flags().Changed("theme") {
			t = config.DefaultConfig().Display.Theme
		}
		return withInterrupt(func(ctx context.Context) error {
			return viz.RunInteractive(ctx, t)
		})
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	game, err := newGame(cfg)
	if err != nil {
		return err
	}
	return withInterrupt(func(ctx context.Context) error {
		return viz.Run(ctx, game, cfg)
	})
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	b, err := cfg.BuildBoard()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %dx%d board (%s)...\n", b.Width(), b.Height(), cfg.Board.Rule)
	start := time.Now()

	result, err := metrics.NewSimulator().Run(ctx, b, cfg.SimConfig())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	name := runName
	switch {
	case name != "":
	case preset != "":
		name = preset
	case cfg.Board.Pattern != "":
		name = cfg.Board.Pattern
	default:
		name = "soup"
	}

	runID, err := st.Save(storage.RunMetadata{
		Name:    name,
		Seed:    cfg.Board.Seed,
		Rule:    cfg.Board.Rule,
		Pattern: cfg.Board.Pattern,
		Density: cfg.Board.Density,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("generations: %d\n", result.Generations)
	fmt.Printf("final population: %d\n", result.Final.Population())
	switch {
	case result.Extinct:
		fmt.Printf("extinct at generation %d\n", result.StableAt)
	case result.Period > 0:
		fmt.Printf("period %d from generation %d\n", result.Period, result.StableAt)
	default:
		fmt.Println("no repetition found")
	}
	fmt.Println("\nmetrics:")
	for _, name := range metrics.Names() {
		if val, ok := result.Metrics[name]; ok {
			fmt.Printf("  %s: %.4f\n", name, val)
		}
	}

	return nil
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
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tRULE\tGENS\tPERIOD\tPEAK")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%s\t%d\t%d\t%.0f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width,
			run.Height,
			run.Rule,
			run.Generations,
			run.Period,
			run.Metrics["peak_population"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadPopulation(runID)
	if err != nil {
		return err
	}

	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("board: %dx%d %s\n", meta.Width, meta.Height, meta.Rule)
	fmt.Printf("samples: %d\n\n", len(samples))

	series := []struct {
		caption string
		value   func(s storage.Sample) int
	}{
		{"population", func(s storage.Sample) int { return s.Population }},
		{"births", func(s storage.Sample) int { return s.Births }},
		{"deaths", func(s storage.Sample) int { return s.Deaths }},
	}

	for _, s := range series {
		data := make([]float64, len(samples))
		for i, sample := range samples {
			data[i] = float64(s.value(sample))
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadPopulation(runID)
	if err != nil {
		return err
	}
	if len(samples) < 2 {
		return fmt.Errorf("no data")
	}

	population := make([]int, len(samples))
	for i, s := range samples {
		population[i] = s.Population
	}

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("board: %dx%d %s\n\n", meta.Width, meta.Height, meta.Rule)

	stats := analysis.Summarize(population)
	fmt.Printf("population: mean %.1f  stddev %.1f  min %d  max %d\n\n", stats.Mean, stats.StdDev, stats.Min, stats.Max)

	// Spectrum of the settled part only.
	tail := population
	if meta.Period > 0 && meta.StableAt < len(population)-1 {
		tail = population[meta.StableAt:]
	}
	series := make([]float64, len(tail))
	for i, p := range tail {
		series[i] = float64(p)
	}
	ps := analysis.PowerSpectrum(series)
	if len(ps) > 2 {
		fmt.Println(asciigraph.Plot(ps[1:],
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (population)"),
		))
		fmt.Println()
	}

	if period, _ := analysis.DominantPeriod(tail); period > 0 {
		fmt.Printf("dominant period: %.2f generations\n", period)
	} else {
		fmt.Println("dominant period: none (flat population)")
	}
	if meta.Period > 0 {
		fmt.Printf("exact period: %d from generation %d\n", meta.Period, meta.StableAt)
	}

	if damageGens > 0 {
		b, err := st.LoadBoard(runID)
		if err != nil {
			return err
		}
		r, err := life.ParseRule(meta.Rule)
		if err != nil {
			r = life.Conway
		}
		curve, err := analysis.Damage(b, r, b.Width()/2, b.Height()/2, damageGens)
		if err != nil {
			return err
		}
		fmt.Printf("damage after %d generations: %d cells (rate %.4f)\n",
			damageGens, curve[len(curve)-1], analysis.SpreadRate(curve))
	}

	return nil
}

// loadResult rebuilds enough of a sim.Result from a stored run to export it.
func loadResult(st *storage.Store, runID string) (*storage.RunMetadata, *sim.Result, error) {
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	samples, err := st.LoadPopulation(runID)
	if err != nil {
		return nil, nil, err
	}

	result := &sim.Result{
		Population:  make([]int, len(samples)),
		Births:      make([]int, len(samples)),
		Deaths:      make([]int, len(samples)),
		Generations: meta.Generations,
		Metrics:     meta.Metrics,
		Period:      meta.Period,
		StableAt:    meta.StableAt,
		Extinct:     meta.Extinct,
	}
	for i, s := range samples {
		result.Population[i] = s.Population
		result.Births[i] = s.Births
		result.Deaths[i] = s.Deaths
	}

	if b, err := st.LoadBoard(runID); err == nil {
		result.Final = b
	}
	return meta, result, nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, result, err := loadResult(st, args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, *meta, result)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	samples, err := st.LoadPopulation(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, samples)
}

func palette(cfg *config.Config) export.Palette {
	alive, dead, grid := cfg.Palette()
	return export.Palette{Alive: alive, Dead: dead, Grid: grid}
}

func openOutput(path string) (*os.File, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	b, err := st.LoadBoard(runID)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(renderOutput)
	if err != nil {
		return err
	}

	pal := palette(config.DefaultConfig())
	switch strings.ToLower(format) {
	case "svg":
		_, err = fmt.Fprintln(out, export.BoardToSVG(b, renderCell, pal))
	case "png":
		err = export.WritePNG(out, b, renderCell, pal)
	case "rle":
		p := pattern.FromBoard(meta.ID, b)
		p.Rule = meta.Rule
		_, err = fmt.Fprint(out, pattern.EncodeRLE(p))
	case "txt", "cells":
		_, err = fmt.Fprint(out, pattern.EncodePlaintext(pattern.FromBoard(meta.ID, b)))
	default:
		err = fmt.Errorf("unknown format: %s", format)
	}

	if cerr := closeOut(); err == nil {
		err = cerr
	}
	return err
}

func recordGIF(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	b, err := cfg.BuildBoard()
	if err != nil {
		return err
	}

	f, err := os.Create(gifOutput)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.WriteGIF(f, export.Frames(b, cfg.Rule(), frames), gifCell, delay, palette(cfg)); err != nil {
		return err
	}
	fmt.Printf("wrote %d frames to %s\n", frames+1, gifOutput)
	return f.Close()
}

func benchStep(cmd *cobra.Command, args []string) error {
	sizes := []int{50, 200, 500}
	workerCounts := []int{1, 2, 4, 0}
	const gens = 50

	fmt.Println("benchmarking step")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tWORKERS\tGENS\tTIME\tGENS/SEC\tCELLS/SEC")

	for _, size := range sizes {
		b, err := life.RandomBoard(size, size, 42, config.DefaultDensity)
		if err != nil {
			return err
		}
		for _, n := range workerCounts {
			cur, next := b.Clone(), b.Clone()
			start := time.Now()
			for i := 0; i < gens; i++ {
				if n == 1 {
					err = life.StepInto(next, cur, life.Conway)
				} else {
					err = life.StepParallel(next, cur, life.Conway, n)
				}
				if err != nil {
					return err
				}
				cur, next = next, cur
			}
			elapsed := time.Since(start)

			label := fmt.Sprint(n)
			if n == 0 {
				label = "auto"
			}
			genRate := float64(gens) / elapsed.Seconds()
			fmt.Fprintf(w, "%dx%d\t%s\t%d\t%v\t%.0f\t%.0f\n",
				size, size, label, gens, elapsed, genRate, genRate*float64(size*size))
		}
	}

	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if sc.Name != "" {
		fmt.Printf("scenario: %s\n", sc.Name)
	}
	results, err := automation.RunScenario(ctx, sc, st)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tGENS\tFINAL\tPEAK\tPERIOD\tEXTINCT")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%.0f\t%d\t%v\n",
			i+1, r.Generations, r.Final.Population(), r.Metrics["peak_population"], r.Period, r.Extinct)
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sweepSeed := cfg.Board.Seed
	if sweepSeed == 0 {
		sweepSeed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := automation.RunSweep(ctx, &automation.DensitySweep{
		Width:       cfg.Board.Width,
		Height:      cfg.Board.Height,
		Rule:        cfg.Rule(),
		Min:         sweepMin,
		Max:         sweepMax,
		NumSteps:    sweepSteps,
		Runs:        sweepRuns,
		Generations: cfg.Run.Generations,
		Seed:        sweepSeed,
		Workers:     cfg.Run.Workers,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DENSITY\tMEAN FINAL\tMEAN PEAK\tSETTLE\tEXTINCT\tSTABLE")
	survival := make([]float64, len(results))
	for i, r := range results {
		fmt.Fprintf(w, "%.3f\t%.1f\t%.1f\t%.1f\t%.0f%%\t%.0f%%\n",
			r.Density, r.MeanFinal, r.MeanPeak, r.MeanSettle, r.ExtinctFraction*100, r.StableFraction*100)
		survival[i] = r.MeanFinal
	}
	if err := w.Flush(); err != nil {
		return err
	}

	allExtinct, someSurvive := automation.SweepStats(results)
	fmt.Printf("\n%d densities died out, %d left survivors\n\n", allExtinct, someSurvive)
	if len(survival) > 1 {
		fmt.Println(asciigraph.Plot(survival,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("mean final population by density"),
		))
	}
	return nil
}
