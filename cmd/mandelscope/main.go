package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mandelscope/internal/compute"
	"github.com/san-kum/mandelscope/internal/config"
	"github.com/san-kum/mandelscope/internal/export"
	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/gallery"
	"github.com/san-kum/mandelscope/internal/iterate"
	"github.com/san-kum/mandelscope/internal/palette"
	"github.com/san-kum/mandelscope/internal/render"
	"github.com/san-kum/mandelscope/internal/viz"
	"github.com/spf13/cobra"
)

var (
	galleryDir  string
	width       int
	height      int
	centerX     float64
	centerY     float64
	zoom        float64
	iterations  int
	paletteName string
	workers     int
	outPath     string
	configFile  string
	preset      string
	smooth      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mandelscope",
		Short: "animated mandelbrot explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&galleryDir, "gallery", config.DefaultGallery, "snapshot directory")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render one frame to PNG",
		RunE:  runRender,
	}
	addViewFlags(renderCmd)
	renderCmd.Flags().StringVar(&outPath, "out", "mandelbrot.png", "output file")
	renderCmd.Flags().BoolVar(&smooth, "smooth", false, "continuous coloring")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive terminal explorer",
		RunE:  runExplore,
	}
	addViewFlags(exploreCmd)

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list color palettes",
		Run: func(cmd *cobra.Command, args []string) {
			for i, name := range palette.Names() {
				fmt.Printf("  %d  %s\n", i, name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list well-known locations",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCENTER\tZOOM\tITERATIONS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t(%g, %g)\t%g\t%d\n",
					name, p.CenterX, p.CenterY, p.Zoom, p.Iterations)
			}
			w.Flush()
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "print view state as JSON",
		RunE:  runInfo,
	}
	addViewFlags(infoCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark frame computation",
		RunE:  runBench,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "escape-count distribution of the current view",
		RunE:  runAnalyze,
	}
	addViewFlags(analyzeCmd)

	galleryCmd := &cobra.Command{
		Use:   "gallery",
		Short: "list saved snapshots",
		RunE:  runGallery,
	}

	rootCmd.AddCommand(renderCmd, exploreCmd, palettesCmd, presetsCmd, infoCmd, benchCmd, analyzeCmd, galleryCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "pixel width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "pixel height")
	cmd.Flags().Float64Var(&centerX, "center-x", fractal.HomeCenterX, "view center, real axis")
	cmd.Flags().Float64Var(&centerY, "center-y", fractal.HomeCenterY, "view center, imaginary axis")
	cmd.Flags().Float64Var(&zoom, "zoom", fractal.HomeZoom, "magnification")
	cmd.Flags().IntVar(&iterations, "iterations", fractal.DefaultIter, "iteration cap")
	cmd.Flags().StringVar(&paletteName, "palette", "Rainbow", "color palette (name or index)")
	cmd.Flags().IntVar(&workers, "workers", 0, "compute workers (0 = all cores)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "start from a named location")
}

// resolveConfig merges preset, config file and flags. Flags win over the
// config file, which wins over the preset.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("center-x") {
		cfg.CenterX = centerX
	}
	if cmd.Flags().Changed("center-y") {
		cfg.CenterY = centerY
	}
	if cmd.Flags().Changed("zoom") {
		cfg.Zoom = zoom
	}
	if cmd.Flags().Changed("iterations") {
		cfg.Iterations = iterations
	}
	if cmd.Flags().Changed("palette") {
		cfg.Palette = paletteName
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("gallery") {
		cfg.Gallery = galleryDir
	}
	return cfg, nil
}

func buildRenderer(cfg *config.Config) (*render.Renderer, *palette.Engine, error) {
	var backend compute.Backend
	if cfg.Workers > 0 {
		backend = compute.NewCPUBackendWithWorkers(cfg.Workers)
	}
	engine := iterate.New(backend)

	r := render.New(cfg.Width, cfg.Height, engine)
	r.MoveTo(cfg.CenterX, cfg.CenterY, cfg.Zoom, cfg.Iterations)

	pal := palette.NewEngine()
	if cfg.Palette != "" {
		id, ok := palette.Lookup(cfg.Palette)
		if !ok {
			return nil, nil, fmt.Errorf("unknown palette: %s (available: %v)", cfg.Palette, palette.Names())
		}
		pal.Select(id)
	}
	return r, pal, nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	r, pal, err := buildRenderer(cfg)
	if err != nil {
		return err
	}
	return viz.Run(r, pal, cfg.Gallery)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	r, pal, err := buildRenderer(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	var bm *fractal.Bitmap
	if smooth {
		grid, smoothVals, err := r.GenerateSmooth()
		if err != nil {
			return err
		}
		bm = pal.ApplySmooth(grid, smoothVals)
	} else {
		grid, err := r.Generate()
		if err != nil {
			return err
		}
		bm = pal.Apply(grid)
	}
	elapsed := time.Since(start)

	if err := export.WritePNG(outPath, bm); err != nil {
		return err
	}

	info := r.Info()
	fmt.Printf("rendered %dx%d at zoom %g (%d iterations) in %v\n",
		info.Width, info.Height, info.Zoom, info.MaxIter, elapsed)
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	r, pal, err := buildRenderer(cfg)
	if err != nil {
		return err
	}

	out := struct {
		Engine  render.EngineInfo `json:"engine"`
		Palette palette.Info      `json:"palette"`
	}{r.Info(), pal.Info()}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func runBench(cmd *cobra.Command, args []string) error {
	engine := iterate.New(nil)
	bounds := fractal.Bounds{XMin: -2, XMax: 1, YMin: -1.125, YMax: 1.125}

	sizes := []struct{ w, h int }{{320, 240}, {800, 600}, {1600, 1200}}
	caps := []int{100, 500, 2000}

	fmt.Printf("backend: %s\n\n", engine.Backend())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tITERATIONS\tTIME\tPIXELS/SEC")

	for _, size := range sizes {
		for _, maxIter := range caps {
			start := time.Now()
			if _, err := engine.Compute(size.h, size.w, bounds, maxIter); err != nil {
				return err
			}
			elapsed := time.Since(start)

			pixels := size.w * size.h
			fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\n",
				size.w, size.h, maxIter, elapsed.Round(time.Microsecond),
				float64(pixels)/elapsed.Seconds())
		}
	}
	return w.Flush()
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	r, _, err := buildRenderer(cfg)
	if err != nil {
		return err
	}

	grid, err := r.Generate()
	if err != nil {
		return err
	}

	// Histogram escape counts into fixed-width buckets.
	const buckets = 64
	hist := make([]float64, buckets)
	for _, v := range grid.Counts {
		b := int(v) * buckets / (grid.MaxIter + 1)
		hist[b]++
	}

	info := r.Info()
	fmt.Printf("escape-count distribution at (%g, %g) zoom %g\n\n",
		info.CenterX, info.CenterY, info.Zoom)

	graph := asciigraph.Plot(hist,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("pixels per escape bucket (cap %d)", grid.MaxIter)),
	)
	fmt.Println(graph)
	fmt.Println()

	inSet := grid.InSetCount()
	fmt.Printf("pixels: %d\n", len(grid.Counts))
	fmt.Printf("in set: %d (%.1f%%)\n", inSet, 100*float64(inSet)/float64(len(grid.Counts)))
	fmt.Printf("max escape count: %d\n", grid.Max())
	return nil
}

func runGallery(cmd *cobra.Command, args []string) error {
	store := gallery.New(galleryDir)
	shots, err := store.List()
	if err != nil {
		return err
	}
	if len(shots) == 0 {
		fmt.Println("no snapshots")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tCENTER\tZOOM\tPALETTE")
	for _, s := range shots {
		fmt.Fprintf(w, "%s\t%s\t(%g, %g)\t%g\t%s\n",
			s.ID, s.Timestamp.Format("2006-01-02 15:04:05"),
			s.CenterX, s.CenterY, s.Zoom, s.Palette)
	}
	return w.Flush()
}
