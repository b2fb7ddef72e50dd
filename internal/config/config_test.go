package config

import (
	"errors"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"

	"github.com/graphview/graphview"
	"github.com/graphview/graphview/chart"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// isolate runs the test in an empty directory with an empty home.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func load(t *testing.T, fs *pflag.FlagSet) Config {
	t.Helper()
	v, err := New(fs)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestDefaults(t *testing.T) {
	isolate(t)
	cfg := load(t, nil)
	want := Config{
		BarWidth:        60,
		MaxValue:        1,
		Width:           600,
		Height:          100,
		HorizontalLines: []float64{0, 0.04, 0.2, 0.5, 0.88, 0.9, 1.0},
		FillColor:       "#000000",
		LineColor:       "#ff0000",
		GridColor:       "#000000",
		LineWidth:       1,
		Format:          "png",
		LogLevel:        slog.LevelWarn,
	}
	diff(t, want, cfg)
}

func TestConfigFile(t *testing.T) {
	dir := isolate(t)
	data := "bar_width: 20\nhorizontal_lines: [0, 0.5]\nline_color: none\nformat: SVG\nlog_level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "graphview.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := load(t, nil)
	diff(t, 20.0, cfg.BarWidth)
	diff(t, []float64{0, 0.5}, cfg.HorizontalLines)
	diff(t, "", cfg.LineColor)
	diff(t, "svg", cfg.Format)
	diff(t, slog.LevelDebug, cfg.LogLevel)
}

func TestUserConfigDir(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, ".config", "graphview")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "graphview.yaml"), []byte("max_value: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	diff(t, 4.0, load(t, nil).MaxValue)
}

func TestEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("GRAPHVIEW_MAX_VALUE", "2")
	t.Setenv("GRAPHVIEW_HORIZONTAL_LINES", "0.25, 0.75")
	cfg := load(t, nil)
	diff(t, 2.0, cfg.MaxValue)
	diff(t, []float64{0.25, 0.75}, cfg.HorizontalLines)
}

func TestFlagsOverride(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("bar_width: 20\nwidth: 300\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GRAPHVIEW_HEIGHT", "50")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"--config", path, "--bar-width=30", "-f", "tui", "--height", "80"}); err != nil {
		t.Fatal(err)
	}
	cfg := load(t, fs)
	diff(t, 30.0, cfg.BarWidth)
	diff(t, 300.0, cfg.Width)
	diff(t, 80.0, cfg.Height)
	diff(t, "tui", cfg.Format)
	// Flags left alone keep the defaults.
	diff(t, "#000000", cfg.FillColor)
}

func TestMissingExplicitConfig(t *testing.T) {
	dir := isolate(t)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"--config", filepath.Join(dir, "nope.yaml")}); err != nil {
		t.Fatal(err)
	}
	if _, err := New(fs); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestValidate(t *testing.T) {
	isolate(t)
	base := load(t, nil)
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"format", func(c *Config) { c.Format = "gif" }, ErrInvalidFormat},
		{"fill", func(c *Config) { c.FillColor = "red" }, ErrInvalidColor},
		{"grid", func(c *Config) { c.GridColor = "#12345" }, ErrInvalidColor},
		{"bar width", func(c *Config) { c.BarWidth = 0 }, chart.ErrInvalidBarWidth},
		{"size", func(c *Config) { c.Height = -1 }, ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInvalidLogLevel(t *testing.T) {
	isolate(t)
	t.Setenv("GRAPHVIEW_LOG_LEVEL", "chatty")
	v, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Load(v); err == nil {
		t.Error("expected an error for an unknown log level")
	}
}

func TestChart(t *testing.T) {
	isolate(t)
	cfg := load(t, nil)
	colors := cfg.Colors()
	diff(t, color.Color(color.NRGBA{A: 0xff}), colors.Fill)
	diff(t, color.Color(color.NRGBA{R: 0xff, A: 0xff}), colors.VerticalLine)

	cfg.LineColor = ""
	cfg.HorizontalLines = nil
	cfg.BarWidth = 25
	c := cfg.Chart(chart.Values[float64](DemoSeries))
	f := c.Layout(cfg.Size())
	if len(f.VerticalLines) != 0 || len(f.HorizontalLines) != 0 {
		t.Errorf("got %d vertical and %d horizontal lines, want none", len(f.VerticalLines), len(f.HorizontalLines))
	}
	diff(t, graphview.Rect{X0: 25, Y0: 0, X1: 50, Y1: 100}, f.Bars[1])
}
