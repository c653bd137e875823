package lines

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lineart/canvas"
	"lineart/parallel"
	"lineart/pattern"
	"lineart/raster"

	"github.com/alecthomas/kong"
)

type OpParams struct {
	Width      int    `help:"Canvas width in pixels" default:"500"`
	Height     int    `help:"Canvas height in pixels" default:"500"`
	Background string `help:"Background, either 'gradient' or a color (#RGB, #RGBA, #RRGGBB, #RRGGBBAA or a CSS color name)" default:"gradient"`
	Color      string `help:"Line color" default:"#000"`
	Out        string `help:"Destination image file" default:"lines.png"`
	Format     string `help:"Output format. With 'auto' it is taken from the destination file extension" enum:"auto,png,gif,jpeg,bmp,tiff" default:"auto"`

	LineColor       color.Color `kong:"-"`
	BackgroundColor color.Color `kong:"-"`
}

type CLICmd struct {
	Grid struct {
		OpParams
		Step int    `help:"Grid cell size in pixels" default:"50"`
		Seed uint64 `help:"Seed for picking the diagonals. 0 picks one from the clock"`
	} `cmd:"" help:"Cross each grid cell with a randomly chosen diagonal"`
	Segment struct {
		OpParams
		From Point `arg:"" help:"First endpoint as x,y"`
		To   Point `arg:"" help:"Second endpoint as x,y"`
	} `cmd:"" help:"Draw a single line between two points"`
}

// Point is an x,y command line argument.
type Point image.Point

func (p *Point) UnmarshalText(text []byte) error {
	xs, ys, ok := strings.Cut(string(text), ",")
	if !ok {
		return fmt.Errorf("invalid point %q, expected x,y", text)
	}
	var x, y int
	if _, err := fmt.Sscan(strings.TrimSpace(xs), &x); err != nil {
		return fmt.Errorf("invalid x coordinate %q: %w", xs, err)
	}
	if _, err := fmt.Sscan(strings.TrimSpace(ys), &y); err != nil {
		return fmt.Errorf("invalid y coordinate %q: %w", ys, err)
	}
	*p = Point{X: x, Y: y}
	return nil
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var conf *OpParams
	switch kctx.Selected().Name {
	case "grid":
		conf = &c.Grid.OpParams
		if c.Grid.Step < 1 {
			return fmt.Errorf("invalid grid step: %d", c.Grid.Step)
		}
	case "segment":
		conf = &c.Segment.OpParams
	default:
		return nil
	}
	return conf.validate()
}

func (conf *OpParams) validate() error {
	switch {
	case conf.Width < 1:
		return fmt.Errorf("invalid width: %d", conf.Width)
	case conf.Height < 1:
		return fmt.Errorf("invalid height: %d", conf.Height)
	}

	var err error
	if conf.LineColor, err = parseColor(conf.Color); err != nil {
		return fmt.Errorf("invalid line color: %w", err)
	}
	if conf.Background != "gradient" {
		if conf.BackgroundColor, err = parseColor(conf.Background); err != nil {
			return fmt.Errorf("invalid background: %w", err)
		}
	}

	if conf.Out, err = filepath.Abs(conf.Out); err != nil {
		return fmt.Errorf("invalid destination %q: %w", conf.Out, err)
	}
	if conf.Format == "auto" {
		if conf.Format, err = formatFromExt(conf.Out); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLICmd) Run(subCmd string, worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	start := time.Now()

	var conf OpParams
	var strategy pattern.Strategy
	switch subCmd {
	case "grid":
		conf = c.Grid.OpParams
		seed := c.Grid.Seed
		if seed == 0 {
			seed = uint64(start.UnixNano())
		}
		slog.Info("juggling pixels", "width", conf.Width, "height", conf.Height,
			"step", c.Grid.Step, "seed", seed)
		strategy = pattern.Grid{
			Step: c.Grid.Step,
			Rand: rand.New(rand.NewPCG(seed, seed)),
		}
	case "segment":
		conf = c.Segment.OpParams
		strategy = pattern.Fixed{{
			A: image.Point(c.Segment.From),
			B: image.Point(c.Segment.To),
		}}
	default:
		return fmt.Errorf("unsupported operation: %s", subCmd)
	}

	logger := slog.Default().With("file", conf.Out)
	img := render(logger, conf, strategy, worker, wait)

	if err := save(img, conf.Format, conf.Out); err != nil {
		return err
	}
	logger.Info("done", "format", conf.Format, "elapsed", time.Since(start))
	return nil
}

// render draws the segments chosen by strategy onto a freshly painted canvas.
func render(logger *slog.Logger, conf OpParams, strategy pattern.Strategy, worker parallel.WorkerFunc, wait parallel.WaitFunc) *image.RGBA {
	img := canvas.New(conf.Width, conf.Height)
	if conf.BackgroundColor == nil {
		canvas.FillGradient(img, worker, wait)
	} else {
		canvas.Fill(img, conf.BackgroundColor)
	}

	segs := strategy.Segments(img.Bounds())
	for _, seg := range segs {
		logger.Debug("drawing segment", "from", seg.A, "to", seg.B)
		raster.Line(img, seg.A, seg.B, conf.LineColor)
	}
	logger.Info("stats", "segments", len(segs))

	return img
}

// formatFromExt maps the extension of name to an output format.
func formatFromExt(name string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".png":
		return "png", nil
	case ".gif":
		return "gif", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("cannot guess output format from extension %q", ext)
	}
}

// ensureDir creates the directory holding name.
func ensureDir(name string) error {
	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", dir, err)
	}
	return nil
}
