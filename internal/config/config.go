// Package config loads graphview settings from a config file, the
// environment and command-line flags, and reads series files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gogpu/gg"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/graphview/graphview"
	"github.com/graphview/graphview/chart"
	"github.com/graphview/graphview/render"
)

const envPrefix = "GRAPHVIEW"

var (
	BarWidthKey        = "bar_width"
	MaxValueKey        = "max_value"
	WidthKey           = "width"
	HeightKey          = "height"
	HorizontalLinesKey = "horizontal_lines"
	FillColorKey       = "fill_color"
	LineColorKey       = "line_color"
	GridColorKey       = "grid_color"
	BackgroundKey      = "background"
	LineWidthKey       = "line_width"
	PrecisionKey       = "precision"
	FormatKey          = "format"
	OutputKey          = "output"
	LogLevelKey        = "log_level"
)

var (
	ErrInvalidFormat = errors.New("invalid output format")
	ErrInvalidColor  = errors.New("invalid color")
	ErrInvalidSize   = errors.New("invalid size")
)

// Formats lists the supported output formats.
var Formats = []string{"png", "svg", "tui"}

// flagNames maps config keys to the flags that override them.
var flagNames = map[string]string{
	BarWidthKey:   "bar-width",
	MaxValueKey:   "max-value",
	WidthKey:      "width",
	HeightKey:     "height",
	FillColorKey:  "fill-color",
	LineColorKey:  "line-color",
	GridColorKey:  "grid-color",
	BackgroundKey: "background",
	LineWidthKey:  "line-width",
	PrecisionKey:  "precision",
	FormatKey:     "format",
	OutputKey:     "out",
	LogLevelKey:   "log-level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(BarWidthKey, chart.DefaultBarWidth)
	v.SetDefault(MaxValueKey, 1.0)
	v.SetDefault(WidthKey, 600.0)
	v.SetDefault(HeightKey, 100.0)
	v.SetDefault(HorizontalLinesKey, chart.DefaultHorizontalLines)
	v.SetDefault(FillColorKey, "#000000")
	v.SetDefault(LineColorKey, "#ff0000")
	v.SetDefault(GridColorKey, "#000000")
	v.SetDefault(BackgroundKey, "")
	v.SetDefault(LineWidthKey, 1.0)
	v.SetDefault(PrecisionKey, 0)
	v.SetDefault(FormatKey, "png")
	v.SetDefault(OutputKey, "")
	v.SetDefault(LogLevelKey, "warn")
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a config file (default graphview.yaml in . or ~/.config/graphview)")
	fs.Float64(flagNames[BarWidthKey], chart.DefaultBarWidth, "Width of every bar")
	fs.Float64(flagNames[MaxValueKey], 1, "Sample value drawn at the top edge")
	fs.Float64(flagNames[WidthKey], 600, "Canvas width")
	fs.Float64(flagNames[HeightKey], 100, "Canvas height")
	fs.String(flagNames[FillColorKey], "#000000", "Area fill color")
	fs.String(flagNames[LineColorKey], "#ff0000", `Bar separator color, or "none"`)
	fs.String(flagNames[GridColorKey], "#000000", "Reference line color")
	fs.String(flagNames[BackgroundKey], "", "Background color (default transparent)")
	fs.Float64(flagNames[LineWidthKey], 1, "Stroke width of all lines")
	fs.Int(flagNames[PrecisionKey], 0, "Maximum decimals in SVG coordinates (0 = exact)")
	fs.StringP(flagNames[FormatKey], "f", "png", "Output format: "+strings.Join(Formats, ", "))
	fs.StringP(flagNames[OutputKey], "o", "", "Output file (default stdout)")
	fs.String(flagNames[LogLevelKey], "warn", "Log level: debug, info, warn or error")
}

// New returns a viper instance with defaults, the config file, GRAPHVIEW_*
// environment variables and the flags in fs, in increasing priority. fs may
// be nil.
//
// A missing default config file is not an error; a missing file named with
// --config is.
func New(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var path string
	if fs != nil {
		for key, name := range flagNames {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
		path, _ = fs.GetString("config")
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("graphview")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "graphview"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		slog.Debug("using config file", "path", v.ConfigFileUsed())
	}
	return v, nil
}

// Config is the resolved configuration of one run.
type Config struct {
	BarWidth        float64
	MaxValue        float64
	Width           float64
	Height          float64
	HorizontalLines []float64
	FillColor       string
	// LineColor is empty if bar separators are disabled.
	LineColor  string
	GridColor  string
	Background string
	LineWidth  float64
	Precision  int
	Format     string
	Output     string
	LogLevel   slog.Level
}

// Load resolves and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		BarWidth:   v.GetFloat64(BarWidthKey),
		MaxValue:   v.GetFloat64(MaxValueKey),
		Width:      v.GetFloat64(WidthKey),
		Height:     v.GetFloat64(HeightKey),
		FillColor:  strings.TrimSpace(v.GetString(FillColorKey)),
		LineColor:  strings.TrimSpace(v.GetString(LineColorKey)),
		GridColor:  strings.TrimSpace(v.GetString(GridColorKey)),
		Background: strings.TrimSpace(v.GetString(BackgroundKey)),
		LineWidth:  v.GetFloat64(LineWidthKey),
		Precision:  v.GetInt(PrecisionKey),
		Format:     strings.ToLower(strings.TrimSpace(v.GetString(FormatKey))),
		Output:     v.GetString(OutputKey),
	}
	if strings.EqualFold(cfg.LineColor, "none") {
		cfg.LineColor = ""
	}

	lines, err := floatSlice(v.Get(HorizontalLinesKey))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", HorizontalLinesKey, err)
	}
	cfg.HorizontalLines = lines

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(LogLevelKey))); err != nil {
		return Config{}, fmt.Errorf("%s: %w", LogLevelKey, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be drawn.
func (c Config) Validate() error {
	if !(c.BarWidth > 0) {
		return fmt.Errorf("%s: %w: %g", BarWidthKey, chart.ErrInvalidBarWidth, c.BarWidth)
	}
	if graphview.Sz(c.Width, c.Height).Empty() {
		return fmt.Errorf("%w: %gx%g", ErrInvalidSize, c.Width, c.Height)
	}
	found := false
	for _, f := range Formats {
		found = found || f == c.Format
	}
	if !found {
		return fmt.Errorf("%w %q, want one of %s", ErrInvalidFormat, c.Format, strings.Join(Formats, ", "))
	}
	for key, col := range map[string]string{
		FillColorKey:  c.FillColor,
		LineColorKey:  c.LineColor,
		GridColorKey:  c.GridColor,
		BackgroundKey: c.Background,
	} {
		if col != "" && !isHexColor(col) {
			return fmt.Errorf("%s: %w: %q", key, ErrInvalidColor, col)
		}
	}
	return nil
}

// Chart returns a chart of source drawn the way c describes.
func (c Config) Chart(source chart.DataSource) chart.Chart {
	lines := c.HorizontalLines
	if lines == nil {
		lines = []float64{}
	}
	return chart.Chart{
		Source:          source,
		Delegate:        chart.FixedWidth{Width: c.BarWidth},
		HorizontalLines: lines,
		MaxValue:        c.MaxValue,
		Colors:          c.Colors(),
	}
}

// Colors returns the chart colors of c.
func (c Config) Colors() chart.StaticColors {
	colors := chart.StaticColors{Fill: gg.Hex(c.FillColor).Color()}
	if c.LineColor != "" {
		colors.VerticalLine = gg.Hex(c.LineColor).Color()
	}
	return colors
}

func (c Config) Size() graphview.Size {
	return graphview.Sz(c.Width, c.Height)
}

func (c Config) RenderOptions() render.Options {
	return render.Options{
		Background: c.Background,
		GridColor:  c.GridColor,
		LineWidth:  c.LineWidth,
		Precision:  c.Precision,
	}
}

// floatSlice converts a config value to a list of numbers. Strings hold
// numbers separated by commas or spaces, as they come from the environment.
func floatSlice(v any) ([]float64, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case []float64:
		return slices.Clone(v), nil
	case string:
		fields := strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '[' || r == ']'
		})
		out := make([]float64, 0, len(fields))
		for _, f := range fields {
			n, err := cast.ToFloat64E(f)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	case []any:
		out := make([]float64, 0, len(v))
		for _, e := range v {
			n, err := cast.ToFloat64E(e)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported list %v (%T)", v, v)
	}
}

// isHexColor reports whether c is a hex color: # followed by 3, 4, 6 or 8 hex
// digits.
func isHexColor(c string) bool {
	if !strings.HasPrefix(c, "#") {
		return false
	}
	c = c[1:]
	switch len(c) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, ch := range c {
		if !(ch >= '0' && ch <= '9') && !(ch >= 'A' && ch <= 'F') && !(ch >= 'a' && ch <= 'f') {
			return false
		}
	}
	return true
}
