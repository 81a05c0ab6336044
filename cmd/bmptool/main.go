package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bodgit/bitmap"
	"github.com/bodgit/bitmap/batch"
	"github.com/bodgit/bitmap/font"
	"github.com/bodgit/bitmap/resource"
	"github.com/bodgit/bitmap/rgb"
	"github.com/bodgit/bitmap/store"
	"github.com/urfave/cli/v2"
	"golang.org/x/image/draw"
)

const defaultDB = "bitmaps.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func openStore(c *cli.Context) (*store.Store, error) {
	return store.Open(c.String("db"))
}

// needArgs shows the command help and exits unless at least n arguments
// were given.
func needArgs(c *cli.Context, n int) {
	if c.NArg() < n {
		cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
	}
}

func parseColor(s string) (rgb.Color, error) {
	col, err := rgb.Parse(s)
	if err != nil {
		return col, fmt.Errorf("%q: %w", s, err)
	}
	return col, nil
}

// transform loads the first argument, applies f and saves the result to
// the second.
func transform(f func(c *cli.Context, in *bitmap.Canvas) (*bitmap.Canvas, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		needArgs(c, 2)
		logger := newLogger(c)

		in, err := load(c.Args().Get(0))
		if err != nil {
			return cli.Exit(err, 1)
		}
		logger.Printf("Loaded \"%s\" (%s)\n", c.Args().Get(0), in)

		out, err := f(c, in)
		if err != nil {
			return cli.Exit(err, 1)
		}

		if err := save(out, c.Args().Get(1)); err != nil {
			return cli.Exit(err, 1)
		}
		logger.Printf("Saved \"%s\" (%s)\n", c.Args().Get(1), out)

		return nil
	}
}

var scalers = map[string]draw.Scaler{
	"nearest":  draw.NearestNeighbor,
	"approx":   draw.ApproxBiLinear,
	"catmull":  draw.CatmullRom,
	"bilinear": nil,
}

func resample(c *cli.Context, in *bitmap.Canvas) (*bitmap.Canvas, error) {
	w, h := c.Int("width"), c.Int("height")
	switch {
	case w == 0 && h > 0:
		w = max(1, in.Width()*h/in.Height())
	case h == 0 && w > 0:
		h = max(1, in.Height()*w/in.Width())
	}

	s, ok := scalers[c.String("filter")]
	if !ok {
		return nil, fmt.Errorf("unknown filter %q", c.String("filter"))
	}
	if s == nil {
		return bitmap.Resample(in, w, h)
	}

	out, err := bitmap.New(w, h)
	if err != nil {
		return nil, err
	}
	s.Scale(out, out.Bounds(), in, in.Bounds(), draw.Src, nil)
	return out, nil
}

func text(c *cli.Context, in *bitmap.Canvas) (*bitmap.Canvas, error) {
	if file := c.String("font-file"); file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		t, err := font.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		in.SetFont(t, t.Width())
	} else {
		in.UseFont(font.ByName(c.String("font")))
	}
	in.SetFont(nil, c.Int("spacing"))

	col, err := parseColor(c.String("color"))
	if err != nil {
		return nil, err
	}
	in.SetPen(col)

	s := strings.ReplaceAll(c.Args().Get(2), `\n`, "\n")
	in.PutsScaled(c.Int("x"), c.Int("y"), c.Int("scale"), s)

	return in, nil
}

// stamp masked blits named assets onto the canvas. Each argument after the
// input and output files is NAME:X:Y.
func stamp(c *cli.Context, in *bitmap.Canvas) (*bitmap.Canvas, error) {
	var loader resource.Loader
	if dir := c.String("assets"); dir != "" {
		loader = resource.Dir(dir)
	} else {
		s, err := openStore(c)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		loader = s
	}
	logger := newLogger(c)
	m := resource.New(loader, c.Int("cache"), logger)

	key, err := parseColor(c.String("key"))
	if err != nil {
		return nil, err
	}

	for _, arg := range c.Args().Slice()[2:] {
		parts := strings.Split(arg, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%q: expected NAME:X:Y", arg)
		}
		x, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%q: %w", arg, err)
		}
		y, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("%q: %w", arg, err)
		}

		sprite, err := m.Get(parts[0])
		if err != nil {
			return nil, err
		}
		sprite = sprite.Copy()
		sprite.SetPen(key)
		bitmap.MaskedBlit(in, x, y, sprite, 0, 0, sprite.Width(), sprite.Height())
	}

	hits, misses := m.Stats()
	logger.Printf("Asset cache: %d hits, %d misses\n", hits, misses)

	return in, nil
}

func info(c *cli.Context) error {
	needArgs(c, 1)

	for _, file := range c.Args().Slice() {
		m, err := load(file)
		if err != nil {
			return cli.Exit(err, 1)
		}

		colors := make(map[rgb.Color]struct{})
		for y := 0; y < m.Height(); y++ {
			for x := 0; x < m.Width(); x++ {
				colors[m.Pixel(x, y)] = struct{}{}
			}
		}
		fmt.Fprintf(c.App.Writer, "%s: %dx%d, %d colours\n", file, m.Width(), m.Height(), len(colors))
	}

	return nil
}

func pick(c *cli.Context) error {
	needArgs(c, 3)

	m, err := load(c.Args().Get(0))
	if err != nil {
		return cli.Exit(err, 1)
	}

	x, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return cli.Exit(err, 1)
	}
	y, err := strconv.Atoi(c.Args().Get(2))
	if err != nil {
		return cli.Exit(err, 1)
	}

	m.Pick(x, y)
	p := m.Pen()
	if isTerminal(c.App.Writer) {
		fmt.Fprintf(c.App.Writer, "%s %s 0x%06X %d,%d,%d\n", swatch(p), p.Hex(), p.Packed(), p.R, p.G, p.B)
	} else {
		fmt.Fprintf(c.App.Writer, "%s 0x%06X %d,%d,%d\n", p.Hex(), p.Packed(), p.R, p.G, p.B)
	}

	return nil
}

func show(c *cli.Context) error {
	needArgs(c, 1)

	m, err := load(c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}

	width := c.Int("columns")
	if width <= 0 {
		width = columns(c.App.Writer)
	}

	if err := preview(c.App.Writer, m, width); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func generate(f func() (*bitmap.Canvas, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		needArgs(c, 1)

		m, err := f()
		if err != nil {
			return cli.Exit(err, 1)
		}

		if err := save(m, c.Args().First()); err != nil {
			return cli.Exit(err, 1)
		}
		newLogger(c).Printf("Saved \"%s\" (%s)\n", c.Args().First(), m)

		return nil
	}
}

func runBatch(c *cli.Context) error {
	needArgs(c, 1)

	var ops []batch.Op
	for _, name := range c.StringSlice("op") {
		switch name {
		case "smooth":
			ops = append(ops, batch.Smooth())
		case "quantize":
			ops = append(ops, batch.Quantize(c.Int("colors")))
		case "resample":
			ops = append(ops, batch.Resample(c.Int("width"), c.Int("height")))
		case "swap":
			from, err := parseColor(c.String("from"))
			if err != nil {
				return cli.Exit(err, 1)
			}
			to, err := parseColor(c.String("to"))
			if err != nil {
				return cli.Exit(err, 1)
			}
			ops = append(ops, batch.Swap(from, to))
		default:
			return cli.Exit(fmt.Sprintf("unknown operation %q", name), 1)
		}
	}
	if len(ops) == 0 {
		return cli.Exit("no operations given", 1)
	}

	logger := newLogger(c)
	n, err := batch.New(c.Int("workers"), logger).Run(c.Context, c.Args().First(), c.String("output"), batch.Chain(ops...))
	if err != nil {
		return cli.Exit(err, 1)
	}
	logger.Printf("Processed %d files\n", n)

	return nil
}

func storeImport(c *cli.Context) error {
	needArgs(c, 1)

	s, err := openStore(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer s.Close()

	logger := newLogger(c)
	for _, file := range c.Args().Slice() {
		name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		if err := s.ImportFile(name, file); err != nil {
			return cli.Exit(err, 1)
		}
		logger.Printf("Imported \"%s\" as \"%s\"\n", file, name)
	}

	return nil
}

func storeExport(c *cli.Context) error {
	needArgs(c, 2)

	s, err := openStore(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer s.Close()

	m, err := s.Load(c.Args().Get(0))
	if err != nil {
		return cli.Exit(err, 1)
	}

	if err := save(m, c.Args().Get(1)); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func storeList(c *cli.Context) error {
	s, err := openStore(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer s.Close()

	entries, err := s.List()
	if err != nil {
		return cli.Exit(err, 1)
	}

	for _, e := range entries {
		fmt.Fprintf(c.App.Writer, "%s\t%dx%d\t%s\n", e.Name, e.Width, e.Height, e.SHA1)
	}

	return nil
}

func storeDelete(c *cli.Context) error {
	needArgs(c, 1)

	s, err := openStore(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer s.Close()

	for _, name := range c.Args().Slice() {
		if err := s.Delete(name); err != nil {
			return cli.Exit(err, 1)
		}
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "bmptool"
	app.Usage = "24-bit bitmap drawing and conversion utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"BMPTOOL_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to asset database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
		&cli.IntFlag{
			Name:    "cache",
			EnvVars: []string{"BMPTOOL_CACHE"},
			Value:   resource.DefaultCapacity,
			Usage:   "number of assets to keep loaded",
		},
		&cli.IntFlag{
			Name:    "workers",
			EnvVars: []string{"BMPTOOL_WORKERS"},
			Value:   batch.DefaultWorkers,
			Usage:   "number of files to process concurrently",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "info",
			Usage:     "Show image dimensions and colour count",
			ArgsUsage: "FILE...",
			Action:    info,
		},
		{
			Name:      "convert",
			Usage:     "Convert between image formats",
			ArgsUsage: "INPUT OUTPUT",
			Action: transform(func(_ *cli.Context, in *bitmap.Canvas) (*bitmap.Canvas, error) {
				return in, nil
			}),
		},
		{
			Name:      "resample",
			Usage:     "Scale an image",
			ArgsUsage: "INPUT OUTPUT",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "width", Usage: "new width, derived from height if 0"},
				&cli.IntFlag{Name: "height", Usage: "new height, derived from width if 0"},
				&cli.StringFlag{Name: "filter", Value: "bilinear", Usage: "bilinear, nearest, approx or catmull"},
			},
			Action: transform(resample),
		},
		{
			Name:      "smooth",
			Usage:     "Apply a 3x3 median filter",
			ArgsUsage: "INPUT OUTPUT",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "passes", Value: 1, Usage: "number of times to apply the filter"},
			},
			Action: transform(func(c *cli.Context, in *bitmap.Canvas) (*bitmap.Canvas, error) {
				for i := 0; i < c.Int("passes"); i++ {
					in.Smooth()
				}
				return in, nil
			}),
		},
		{
			Name:      "quantize",
			Usage:     "Reduce the number of colours",
			ArgsUsage: "INPUT OUTPUT",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "colors", Value: 16, Usage: "maximum number of colours"},
			},
			Action: transform(func(c *cli.Context, in *bitmap.Canvas) (*bitmap.Canvas, error) {
				return batch.Quantize(c.Int("colors"))(in)
			}),
		},
		{
			Name:      "swap",
			Usage:     "Replace one colour with another",
			ArgsUsage: "INPUT OUTPUT FROM TO",
			Action: transform(func(c *cli.Context, in *bitmap.Canvas) (*bitmap.Canvas, error) {
				needArgs(c, 4)
				from, err := parseColor(c.Args().Get(2))
				if err != nil {
					return nil, err
				}
				to, err := parseColor(c.Args().Get(3))
				if err != nil {
					return nil, err
				}
				in.SwapColor(from, to)
				return in, nil
			}),
		},
		{
			Name:      "text",
			Usage:     "Draw text onto an image",
			ArgsUsage: "INPUT OUTPUT TEXT",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "x"},
				&cli.IntFlag{Name: "y"},
				&cli.StringFlag{Name: "font", Value: font.Normal.String(), Usage: "built-in font name"},
				&cli.StringFlag{Name: "font-file", Usage: "XBM font atlas, overrides --font"},
				&cli.IntFlag{Name: "spacing", Usage: "character advance, 0 for the font's own"},
				&cli.StringFlag{Name: "color", Aliases: []string{"c"}, Value: "white", Usage: "text colour"},
				&cli.IntFlag{Name: "scale", Usage: "magnify by 2^scale"},
			},
			Action: transform(func(c *cli.Context, in *bitmap.Canvas) (*bitmap.Canvas, error) {
				needArgs(c, 3)
				return text(c, in)
			}),
		},
		{
			Name:      "stamp",
			Usage:     "Draw named assets onto an image",
			ArgsUsage: "INPUT OUTPUT NAME:X:Y...",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "assets", Usage: "directory of BMP assets, instead of the database"},
				&cli.StringFlag{Name: "key", Value: "magenta", Usage: "transparent colour"},
			},
			Action: transform(stamp),
		},
		{
			Name:      "pick",
			Usage:     "Print the colour of a pixel",
			ArgsUsage: "FILE X Y",
			Action:    pick,
		},
		{
			Name:      "show",
			Usage:     "Preview an image in the terminal",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "columns", Usage: "width in characters, 0 for the terminal width"},
			},
			Action: show,
		},
		{
			Name:      "fonts",
			Usage:     "Draw a specimen of every built-in font",
			ArgsUsage: "OUTPUT",
			Action:    generate(fontSheet),
		},
		{
			Name:      "demo",
			Usage:     "Draw a test card using every primitive",
			ArgsUsage: "OUTPUT",
			Action:    generate(testCard),
		},
		{
			Name:        "batch",
			Usage:       "Process every BMP file below a directory",
			Description: "Operations are applied in the order given, for example --op resample --op smooth.",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{Name: "op", Usage: "smooth, quantize, resample or swap"},
				&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output directory, files are replaced if unset"},
				&cli.IntFlag{Name: "colors", Value: 16, Usage: "maximum number of colours for quantize"},
				&cli.IntFlag{Name: "width", Usage: "width for resample"},
				&cli.IntFlag{Name: "height", Usage: "height for resample"},
				&cli.StringFlag{Name: "from", Usage: "colour to replace for swap"},
				&cli.StringFlag{Name: "to", Usage: "replacement colour for swap"},
			},
			Action: runBatch,
		},
		{
			Name:  "store",
			Usage: "Manage the asset database",
			Subcommands: []*cli.Command{
				{
					Name:      "import",
					Usage:     "Import image files, named after the file",
					ArgsUsage: "FILE...",
					Action:    storeImport,
				},
				{
					Name:      "export",
					Usage:     "Write an asset to a file",
					ArgsUsage: "NAME FILE",
					Action:    storeExport,
				},
				{
					Name:   "list",
					Usage:  "List assets",
					Action: storeList,
				},
				{
					Name:      "delete",
					Usage:     "Delete assets",
					ArgsUsage: "NAME...",
					Action:    storeDelete,
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
