// Command graphview draws a smoothed area chart of a series of samples as
// PNG, SVG or in the terminal.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/graphview/graphview/chart"
	"github.com/graphview/graphview/internal/config"
	"github.com/graphview/graphview/internal/term"
	"github.com/graphview/graphview/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graphview [flags] [series-file]",
		Short: "Draw a smoothed area chart",
		Long: `Draw a smoothed area chart of the samples in series-file.

Series files may be CSV, YAML, TOML or plain text with one or more numbers per
line. "-" reads plain text from standard input. Without a file, a demo series
is drawn.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	v, err := config.New(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	chart.SetLogger(logger)

	values := config.DemoSeries
	if len(args) == 1 {
		values, err = config.LoadSeries(args[0])
		if err != nil {
			return err
		}
	}
	logger.Debug("loaded series", "samples", len(values))

	c := cfg.Chart(chart.Values[float64](values))
	if err := c.Validate(); err != nil {
		return err
	}

	if cfg.Format == "tui" {
		return runTUI(c, cfg, values)
	}

	if cfg.Output == "" {
		return draw(cmd.OutOrStdout(), c, cfg)
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	if err := draw(f, c, cfg); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("wrote chart", "path", cfg.Output, "format", cfg.Format)
	return nil
}

func draw(w io.Writer, c chart.Chart, cfg config.Config) error {
	f := c.Layout(cfg.Size())
	switch cfg.Format {
	case "png":
		return render.WritePNG(w, f, cfg.RenderOptions())
	case "svg":
		return render.SVG(w, f, cfg.RenderOptions())
	default:
		return fmt.Errorf("%w %q", config.ErrInvalidFormat, cfg.Format)
	}
}

func runTUI(c chart.Chart, cfg config.Config, values []float64) error {
	c.Delegate = chart.FixedWidth{
		Width: cfg.BarWidth,
		OnSelect: func(i int) {
			slog.Debug("selected bar", "bar", i, "value", values[i])
		},
	}

	output := termenv.NewOutput(os.Stdout)
	if cfg.Background != "" {
		backgroundColor := termenv.BackgroundColor()
		output.SetBackgroundColor(termenv.RGBColor(cfg.Background))
		defer output.SetBackgroundColor(backgroundColor)
	}

	model := term.New(c, cfg.Size(), term.Options{GridColor: cfg.GridColor})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithOutput(output))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal view: %w", err)
	}
	return nil
}
