package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/weight-meter/internal/config"
	"github.com/iburimskiy/weight-meter/internal/dial"
	"github.com/iburimskiy/weight-meter/internal/export"
	"github.com/iburimskiy/weight-meter/internal/game"
	"github.com/iburimskiy/weight-meter/internal/trace"
)

var (
	configFile   string
	minValue     int
	maxValue     int
	initialValue int
	noSound      bool

	// export
	outFile     string
	format      string
	value       int
	imageWidth  int
	imageHeight int

	// simulate
	strokes    string
	stepDeg    float64
	plotHeight int
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("weightmeter: ")

	rootCmd := &cobra.Command{
		Use:          "weightmeter",
		Short:        "draggable rotary weight meter",
		SilenceUsage: true,
		RunE:         runWindow,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "meter configuration file (yaml)")
	rootCmd.PersistentFlags().IntVar(&minValue, "min", dial.DefaultMinValue, "lowest selectable value")
	rootCmd.PersistentFlags().IntVar(&maxValue, "max", dial.DefaultMaxValue, "highest selectable value")
	rootCmd.PersistentFlags().IntVar(&initialValue, "initial", dial.DefaultInitialValue, "value under the indicator at start")
	rootCmd.Flags().BoolVar(&noSound, "mute", false, "disable detent clicks")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "render one frame of the meter to png or svg",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "meter.png", "output file")
	exportCmd.Flags().StringVar(&format, "format", "", "png or svg (default: from the output file extension)")
	exportCmd.Flags().IntVar(&value, "value", dial.DefaultInitialValue, "value under the indicator")
	exportCmd.Flags().IntVar(&imageWidth, "width", config.WindowWidth, "image width")
	exportCmd.Flags().IntVar(&imageHeight, "height", config.MeterHeight, "image height")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "replay scripted drag strokes and plot the reported values",
		RunE:  runSimulate,
	}
	simulateCmd.Flags().StringVar(&strokes, "strokes", "45,45,-90", "comma separated stroke angles in degrees (clockwise positive)")
	simulateCmd.Flags().Float64Var(&stepDeg, "step", 1, "degrees per pointer move")
	simulateCmd.Flags().IntVar(&plotHeight, "plot-height", 12, "plot height in rows")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "check a meter configuration",
		RunE:  runValidate,
	}

	rootCmd.AddCommand(exportCmd, simulateCmd, validateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads --config (or the defaults) and applies explicitly set
// range flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("min") {
		cfg.MinValue = minValue
	}
	if flags.Changed("max") {
		cfg.MaxValue = maxValue
	}
	if flags.Changed("initial") {
		cfg.InitialValue = initialValue
	}
	return cfg, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if noSound {
		cfg.Sound = false
	}

	g, err := game.New(cfg)
	if err != nil {
		if errors.Is(err, dial.ErrInvalidConfig) {
			game.ShowConfigError(err)
		}
		return err
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Weight Meter - drag the scale, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	fmt.Println(g.Value())
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dc, err := cfg.Dial()
	if err != nil {
		return err
	}
	if value < dc.MinValue || value > dc.MaxValue {
		return fmt.Errorf("value %d outside [%d, %d]", value, dc.MinValue, dc.MaxValue)
	}

	f := format
	if f == "" {
		f = strings.TrimPrefix(filepath.Ext(outFile), ".")
	}
	fmtOut, err := export.ParseFormat(f)
	if err != nil {
		return err
	}

	out, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer out.Close()

	cmds := export.Frame(dc, value, dial.Size{W: float64(imageWidth), H: float64(imageHeight)})
	if err := export.Write(out, fmtOut, cmds, export.Options{Width: imageWidth, Height: imageHeight}); err != nil {
		return err
	}
	log.Printf("wrote %s (%s, value %d)", outFile, fmtOut, value)
	return out.Close()
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dc, err := cfg.Dial()
	if err != nil {
		return err
	}
	script, err := parseStrokes(strokes)
	if err != nil {
		return err
	}
	script.StepDeg = stepDeg

	res, err := trace.Run(dc, dial.Size{W: config.WindowWidth, H: config.MeterHeight}, script)
	if err != nil {
		return err
	}
	if len(res.Values) == 0 {
		fmt.Printf("no movement, value %d\n", res.Final)
		return nil
	}

	data := make([]float64, len(res.Values))
	for i, v := range res.Values {
		data[i] = float64(v)
	}
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Caption(fmt.Sprintf("value per move, range [%d, %d]", dc.MinValue, dc.MaxValue)),
	))
	fmt.Printf("final value %d at %.2f degrees after %d moves\n", res.Final, res.Angle, len(res.Values))
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dc, err := cfg.Dial()
	if err != nil {
		return err
	}
	lo, hi := dc.AngleBounds()
	fmt.Printf("ok: values [%d, %d] starting at %d, rotation [%g, %g] degrees, radius %g px\n",
		dc.MinValue, dc.MaxValue, dc.InitialValue, lo, hi, dc.Style.Radius)
	return nil
}

func parseStrokes(s string) (trace.Script, error) {
	var script trace.Script
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		deg, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return trace.Script{}, fmt.Errorf("bad stroke %q: %w", part, err)
		}
		script.Strokes = append(script.Strokes, deg)
	}
	return script, nil
}
