package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/marquee/internal/anim"
	"github.com/san-kum/marquee/internal/banner"
	"github.com/san-kum/marquee/internal/cast"
	"github.com/san-kum/marquee/internal/config"
	"github.com/san-kum/marquee/internal/render"
	"github.com/san-kum/marquee/internal/tui"
	"github.com/spf13/cobra"
)

var (
	style      string
	font       string
	loop       bool
	durationMs int
	align      string
	static     bool
	// Playback parameters
	speed    float64
	loopPlay bool
	// Config file
	configFile string
	// Preset name
	preset string
)

// main is the entry point for the marquee CLI; it registers commands and
// flags, launches the banner preview when no subcommand is given, and exits
// with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "marquee [text...]",
		Short: "animated ascii banners and terminal replays",
		RunE:  runBanner,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	bannerCmd := &cobra.Command{
		Use:   "banner [text...]",
		Short: "show an animated banner",
		RunE:  runBanner,
	}

	for _, cmd := range []*cobra.Command{rootCmd, bannerCmd} {
		cmd.Flags().StringVar(&style, "style", config.DefaultStyle, "animation style")
		cmd.Flags().StringVar(&font, "font", config.DefaultFont, "figlet font")
		cmd.Flags().BoolVar(&loop, "loop", true, "loop the animation")
		cmd.Flags().IntVar(&durationMs, "duration", config.DefaultDurationMillis, "animation cycle in milliseconds")
		cmd.Flags().StringVar(&align, "align", config.DefaultAlignment, "alignment (left, center, right)")
		cmd.Flags().BoolVar(&static, "static", false, "render without animation")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	}

	playCmd := &cobra.Command{
		Use:   "play [file]",
		Short: "replay an asciinema recording",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlay,
	}
	playCmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "playback speed multiplier")
	playCmd.Flags().BoolVar(&loopPlay, "loop", false, "loop playback")

	infoCmd := &cobra.Command{
		Use:   "info [file]",
		Short: "inspect an asciinema recording",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	stylesCmd := &cobra.Command{
		Use:   "styles",
		Short: "list animation styles",
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range anim.Styles() {
				fmt.Println(s)
			}
		},
	}

	fontsCmd := &cobra.Command{
		Use:   "fonts",
		Short: "list usable figlet fonts",
		Run: func(cmd *cobra.Command, args []string) {
			fonts := banner.ValidFonts()
			fmt.Printf("%d usable fonts:\n", len(fonts))
			for _, f := range fonts {
				fmt.Printf("  %s\n", f)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTYLE\tCYCLE\tLOOP")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%dms\t%v\n", name, cfg.Banner.Style, cfg.Banner.DurationMillis, cfg.Banner.Loop)
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(bannerCmd, playCmd, infoCmd, stylesCmd, fontsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bannerSettings resolves flags, preset, and config file into final banner
// parameters. Precedence: explicit flags, then config file, then preset,
// then defaults.
func bannerSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("style") {
		cfg.Banner.Style = style
	}
	if cmd.Flags().Changed("font") {
		cfg.Banner.Font = font
	}
	if cmd.Flags().Changed("loop") {
		cfg.Banner.Loop = loop
	}
	if cmd.Flags().Changed("duration") {
		cfg.Banner.DurationMillis = durationMs
	}
	if cmd.Flags().Changed("align") {
		cfg.Banner.Alignment = align
	}

	if len(cfg.Banner.FontDirs) > 0 {
		banner.AddFontDirs(cfg.Banner.FontDirs)
	}

	return cfg, nil
}

func runBanner(cmd *cobra.Command, args []string) error {
	words := args
	if len(words) == 0 {
		words = []string{"MARQUEE"}
	}

	cfg, err := bannerSettings(cmd)
	if err != nil {
		return err
	}

	parsedStyle, err := anim.ParseStyle(cfg.Banner.Style)
	if err != nil {
		return err
	}
	alignment := render.ParseAlignment(cfg.Banner.Alignment)

	if static {
		return printStatic(words, cfg.Banner.Font, alignment)
	}

	m := tui.NewPreviewModel(words, cfg.Banner.Font, parsedStyle, cfg.Banner.Loop, cfg.CycleDuration(), alignment)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// printStatic writes plain banners straight to stdout, one per word.
func printStatic(words []string, fontName string, alignment render.Alignment) error {
	gen, err := banner.NewGenerator(fontName)
	if err != nil {
		return err
	}

	grids := make([][]string, 0, len(words))
	blockLengths := make([]int, 0, len(words))
	for _, word := range words {
		lines, err := gen.Generate(word)
		if err != nil {
			return err
		}
		grids = append(grids, lines)
		blockLengths = append(blockLengths, banner.BlockLength(lines))
	}

	selection := banner.NewSelection(len(grids))
	multi := banner.NewMultiBannerStatic(grids, blockLengths, alignment, selection)
	for {
		fmt.Println(render.Frame(multi.RenderOperations()))
		if !selection.Advance() {
			return nil
		}
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	path := args[0]

	recording, err := cast.Load(path)
	if err != nil {
		return err
	}

	player := cast.NewPlayer(recording, 0, render.AlignLeft, loopPlay, speed, render.Automatic)
	m := tui.NewPlayModel(path, player)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]

	recording, err := cast.Load(path)
	if err != nil {
		return err
	}

	events := recording.Events()
	fmt.Printf("file: %s\n", path)
	fmt.Printf("terminal: %dx%d\n", recording.Width(), recording.Height())
	fmt.Printf("duration: %.2fs\n", recording.Duration())
	fmt.Printf("output events: %d\n", len(events))

	if len(events) == 0 {
		return nil
	}

	// Cumulative output volume over time, bucketed across the recording.
	const buckets = 60
	data := make([]float64, buckets)
	duration := recording.Duration()
	if duration <= 0 {
		duration = 1
	}
	total := 0.0
	for _, ev := range events {
		total += float64(len(ev.Data))
		idx := int(ev.Time / duration * float64(buckets-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= buckets {
			idx = buckets - 1
		}
		data[idx] = total
	}
	// Carry the running total through empty buckets.
	for i := 1; i < buckets; i++ {
		if data[i] < data[i-1] {
			data[i] = data[i-1]
		}
	}

	fmt.Println()
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("cumulative output bytes"),
	)
	fmt.Println(graph)

	return nil
}
