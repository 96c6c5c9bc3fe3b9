package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"xdao.co/shapes/compliance"
	"xdao.co/shapes/ingredient"
	"xdao.co/shapes/shape"
	"xdao.co/shapes/shapeid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "align":
		return cmdAlign(args[1:], out, errOut)
	case "bounds":
		return cmdBounds(args[1:], out, errOut)
	case "catalog":
		return cmdCatalog(args[1:], out, errOut)
	case "cid":
		return cmdCID(args[1:], out, errOut)
	case "ingredient":
		return cmdIngredient(args[1:], out, errOut)
	case "rotate":
		return cmdRotate(args[1:], out, errOut)
	case "variants":
		return cmdVariants(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "shapes: 3x3 piece shape canonicalization CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  shapes align [--mode permissive|strict] [-v] <grid>")
	fmt.Fprintln(w, "  shapes bounds [--mode permissive|strict] [-v] <grid>")
	fmt.Fprintln(w, "  shapes catalog [-v]")
	fmt.Fprintln(w, "  shapes cid [--mode permissive|strict] [-v] <grid>")
	fmt.Fprintln(w, "  shapes ingredient --color <color> [--mode permissive|strict] [-v] <grid>")
	fmt.Fprintln(w, "  shapes rotate [--turns <n>] [--mode permissive|strict] [-v] <grid>")
	fmt.Fprintln(w, "  shapes variants [--mode permissive|strict] [-v] <grid>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - <grid> is three rows joined by '/', 'O' occupied and 'x' empty: Oxx/xOx/xOx")
	fmt.Fprintln(w, "  - permissive mode (default) also accepts newlines, blanks, o/# and ./- glyphs")
	fmt.Fprintln(w, "  - colors: red, green, blue, yellow, purple")
	fmt.Fprintln(w, "  - -v writes debug logs to stderr")
}

// common holds the flags every grid subcommand accepts.
type common struct {
	mode    string
	verbose bool
}

func newFlagSet(name string, errOut io.Writer) (*flag.FlagSet, *common) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	c := &common{}
	fs.StringVar(&c.mode, "mode", "permissive", "Grid literal compliance mode: permissive|strict")
	fs.BoolVar(&c.verbose, "v", false, "Enable debug logging")
	return fs, c
}

func newLogger(verbose bool, errOut io.Writer) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(errOut), zap.NewAtomicLevelAt(level)))
}

// loadGrid parses the single positional grid argument of fs.
func loadGrid(fs *flag.FlagSet, c *common, usage string, logger *zap.Logger, errOut io.Writer) (shape.Grid, int) {
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, usage)
		return shape.Grid{}, 2
	}
	mode, err := compliance.ParseMode(c.mode)
	if err != nil {
		fmt.Fprintf(errOut, "--mode: %v\n", err)
		return shape.Grid{}, 2
	}
	g, err := shape.ParseGrid(fs.Arg(0), mode)
	if err != nil {
		logger.Debug("grid rejected",
			zap.String("input", fs.Arg(0)),
			zap.Stringer("mode", mode),
			zap.String("rule", shape.RuleID(err)))
		fmt.Fprintf(errOut, "invalid grid: %v\n", err)
		return shape.Grid{}, 1
	}
	logger.Debug("grid parsed", zap.Stringer("grid", g), zap.Stringer("mode", mode))
	return g, 0
}

func cmdAlign(args []string, out io.Writer, errOut io.Writer) int {
	fs, c := newFlagSet("align", errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logger := newLogger(c.verbose, errOut)
	defer func() { _ = logger.Sync() }()

	g, code := loadGrid(fs, c, "usage: shapes align [--mode m] <grid>", logger, errOut)
	if code != 0 {
		return code
	}
	_, _ = fmt.Fprintln(out, g.AlignCorner())
	return 0
}

func cmdBounds(args []string, out io.Writer, errOut io.Writer) int {
	fs, c := newFlagSet("bounds", errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logger := newLogger(c.verbose, errOut)
	defer func() { _ = logger.Sync() }()

	g, code := loadGrid(fs, c, "usage: shapes bounds [--mode m] <grid>", logger, errOut)
	if code != 0 {
		return code
	}
	w, h := g.Size()
	if corner, ok := g.Corner(); ok {
		_, _ = fmt.Fprintf(out, "corner: %d,%d\n", corner.Row, corner.Col)
	} else {
		_, _ = fmt.Fprintln(out, "corner: none")
	}
	_, _ = fmt.Fprintf(out, "size: %dx%d\n", w, h)
	return 0
}

func cmdRotate(args []string, out io.Writer, errOut io.Writer) int {
	fs, c := newFlagSet("rotate", errOut)
	var turns int
	fs.IntVar(&turns, "turns", 1, "Clockwise quarter turns (negative turns counterclockwise)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logger := newLogger(c.verbose, errOut)
	defer func() { _ = logger.Sync() }()

	g, code := loadGrid(fs, c, "usage: shapes rotate [--turns n] [--mode m] <grid>", logger, errOut)
	if code != 0 {
		return code
	}
	logger.Debug("rotating", zap.Int("turns", turns))
	_, _ = fmt.Fprintln(out, g.Rotate(turns))
	return 0
}

func cmdCID(args []string, out io.Writer, errOut io.Writer) int {
	fs, c := newFlagSet("cid", errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logger := newLogger(c.verbose, errOut)
	defer func() { _ = logger.Sync() }()

	g, code := loadGrid(fs, c, "usage: shapes cid [--mode m] <grid>", logger, errOut)
	if code != 0 {
		return code
	}
	id := shapeid.String(g.Canonical())
	if id == "" {
		fmt.Fprintln(errOut, "cid: digest unavailable")
		return 1
	}
	_, _ = fmt.Fprintln(out, id)
	return 0
}

func cmdVariants(args []string, out io.Writer, errOut io.Writer) int {
	fs, c := newFlagSet("variants", errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logger := newLogger(c.verbose, errOut)
	defer func() { _ = logger.Sync() }()

	g, code := loadGrid(fs, c, "usage: shapes variants [--mode m] <grid>", logger, errOut)
	if code != 0 {
		return code
	}
	set := g.Variants()
	logger.Debug("variants computed", zap.Int("count", set.Len()))
	for _, e := range shapeid.SetEntries(set) {
		w, h := e.Shape.Size()
		_, _ = fmt.Fprintf(out, "%s %dx%d %s\n", e.ID, w, h, e.Shape)
	}
	return 0
}

func cmdIngredient(args []string, out io.Writer, errOut io.Writer) int {
	fs, c := newFlagSet("ingredient", errOut)
	var colorName string
	fs.StringVar(&colorName, "color", "", "Ingredient color")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logger := newLogger(c.verbose, errOut)
	defer func() { _ = logger.Sync() }()

	if colorName == "" {
		fmt.Fprintln(errOut, "usage: shapes ingredient --color <color> [--mode m] <grid>")
		return 2
	}
	color, err := ingredient.ParseColor(colorName)
	if err != nil {
		fmt.Fprintf(errOut, "--color: %v\n", err)
		return 2
	}
	g, code := loadGrid(fs, c, "usage: shapes ingredient --color <color> [--mode m] <grid>", logger, errOut)
	if code != 0 {
		return code
	}
	ing := ingredient.FromGrid(color, g)
	_, _ = fmt.Fprintf(out, "color: %s\n", ing.Color())
	_, _ = fmt.Fprintf(out, "shapes: %d\n", ing.Shapes().Len())
	for _, id := range shapeid.SetIDs(ing.Shapes()) {
		_, _ = fmt.Fprintf(out, "  %s\n", id)
	}
	return 0
}

// cmdCatalog enumerates every grid the frame can hold and reports how many
// distinct canonical shapes and rotation classes they reduce to.
func cmdCatalog(args []string, out io.Writer, errOut io.Writer) int {
	fs, c := newFlagSet("catalog", errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(errOut, "usage: shapes catalog [-v]")
		return 2
	}
	logger := newLogger(c.verbose, errOut)
	defer func() { _ = logger.Sync() }()

	grids := shape.All()
	shapes := make(map[shape.Canonical]struct{})
	classes := make(map[string]int)
	for _, g := range grids {
		shapes[g.Canonical()] = struct{}{}
		set := g.Variants()
		classes[strings.Join(shapeid.SetIDs(set), ",")] = set.Len()
	}
	bySize := map[int]int{}
	for _, n := range classes {
		bySize[n]++
	}
	logger.Debug("catalog built", zap.Int("grids", len(grids)), zap.Int("classes", len(classes)))

	_, _ = fmt.Fprintf(out, "grids: %d\n", len(grids))
	_, _ = fmt.Fprintf(out, "canonical shapes: %d\n", len(shapes))
	_, _ = fmt.Fprintf(out, "rotation classes: %d\n", len(classes))
	for _, n := range []int{1, 2, 4} {
		_, _ = fmt.Fprintf(out, "  with %d variant(s): %d\n", n, bySize[n])
	}
	return 0
}
