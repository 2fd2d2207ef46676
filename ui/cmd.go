package ui

import (
	"chessview/src/board"
	"chessview/src/logx"
	"chessview/src/rules"
	clic "chessview/ui/cli"
	"chessview/ui/gui"
	"chessview/ui/gui/gbase/gconf"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const logfile string = "chessview.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

// configLogger builds the logger from the config file settings, used when
// no level was given on the command line.
func configLogger(w io.Writer, conf *gconf.Config, debug, console bool) *logx.Logx {
	l := logx.NewLogx(logx.GetLoggerLevelByString(conf.LogLevel), debug || conf.Debug, console)
	l.InitLogger(w)
	return l
}

func openLog() (*os.File, error) {
	return os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}

func RunGUI(c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		return fmt.Errorf("error open logfile: %w", err)
	}
	defer file.Close()
	l := GetLogger(file, c)
	// l is replaced once the config is read
	defer func() { _ = l.Sync() }()

	conf, err := gconf.Load(c.String("config"))
	if err != nil {
		l.Errorf("error load config: %v", err)
		return err
	}
	if !c.IsSet("level") {
		_ = l.Sync()
		l = configLogger(file, conf, c.Bool("debug"), c.Bool("console"))
	}

	g, err := gui.NewGUI(conf, c.String("config"), c.String("fen"), l)
	if err != nil {
		l.Errorf("error init GUI: %v", err)
		return err
	}
	return g.Run()
}

func RunPlay(c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		return fmt.Errorf("error open logfile: %w", err)
	}
	defer file.Close()
	l := GetLogger(file, c)
	defer func() { _ = l.Sync() }()

	pos, err := positionFromFlag(c.String("fen"))
	if err != nil {
		return err
	}
	cfg := board.DefaultConfig()
	cfg.Animation = false
	cfg.Flipped = c.Bool("flip")
	if c.Bool("letters") {
		cfg.PieceStyle = board.PieceStyleLetters
	}
	bv := board.New(nil, cfg, board.WithPosition(pos), board.WithLogger(l))
	bv.OnMove(func(m rules.Move, bv *board.BoardView) {
		l.Infof("move %s, fen %s", m.UCI(), bv.FEN())
	})

	clic.EnableANSI()
	cl := clic.NewCLI(bv, clic.PrintBoard, os.Stdin, os.Stdout)
	cl.SetRasterOptions(board.RasterOptions{FontPath: c.String("font")})
	return cl.Run()
}

func positionFromFlag(fen string) (*rules.Position, error) {
	if fen == "" {
		return rules.NewPosition(), nil
	}
	return rules.NewPositionFromFEN(fen)
}

// ---- export ----

type exportOptions struct {
	FEN        string
	Out        string
	Format     string
	Flip       bool
	Size       int
	FontPath   string
	Highlights []string
	Circles    []string
	Arrows     []string
	Layers     board.Layers
}

var errOutIsTerminal = errors.New("refusing to write an image to a terminal, use --out")

func exportFormat(o exportOptions) (string, error) {
	f := strings.ToLower(o.Format)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(o.Out)), ".")
	}
	if f == "" && o.Out == "-" {
		f = "svg"
	}
	switch f {
	case "svg", "png":
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q, use svg or png", f)
}

// exportBoard renders the position with its annotations. stdout is used
// for "-" and only when it is not a terminal.
func exportBoard(o exportOptions, stdout io.Writer, stdoutTerm bool) error {
	format, err := exportFormat(o)
	if err != nil {
		return err
	}
	pos, err := positionFromFlag(o.FEN)
	if err != nil {
		return err
	}

	cfg := board.DefaultConfig()
	cfg.Flipped = o.Flip
	if o.Size > 0 {
		cfg.BoardSize = o.Size
	}
	bv := board.New(nil, cfg, board.WithPosition(pos))

	for _, s := range o.Highlights {
		sq, err := rules.ParseSquare(s)
		if err != nil {
			return err
		}
		bv.HighlightSquare(sq, cfg.HighlightColor, true)
	}
	for _, s := range o.Circles {
		sq, err := rules.ParseSquare(s)
		if err != nil {
			return err
		}
		row, col := board.RowColOf(sq)
		bv.DrawCircle(row, col, cfg.CircleColor, bv.SquareSize()*10/21, cfg.CircleWidth, true)
	}
	for _, s := range o.Arrows {
		m, err := rules.ParseUCI(s)
		if err != nil {
			return err
		}
		fr, fc := board.RowColOf(m.From)
		tr, tc := board.RowColOf(m.To)
		bv.DrawArrow(fr, fc, tr, tc, cfg.ArrowColor, cfg.ArrowWidth, true)
	}

	if o.Out == "-" {
		if stdoutTerm {
			return errOutIsTerminal
		}
		if format == "png" {
			img, err := bv.RenderImage(o.Layers, board.RasterOptions{FontPath: o.FontPath})
			if err != nil {
				return err
			}
			return encodePNG(stdout, img)
		}
		_, err := io.WriteString(stdout, bv.GenerateSVG(o.Layers))
		return err
	}
	if format == "png" {
		return bv.ExportPNG(o.Out, o.Layers, board.RasterOptions{FontPath: o.FontPath})
	}
	return bv.ExportSVG(o.Out, o.Layers)
}

func encodePNG(w io.Writer, img image.Image) error {
	return gg.NewContextForImage(img).EncodePNG(w)
}

func RunExport(c *cli.Command) error {
	o := exportOptions{
		FEN:        c.String("fen"),
		Out:        c.String("out"),
		Format:     c.String("format"),
		Flip:       c.Bool("flip"),
		Size:       c.Int("size"),
		FontPath:   c.String("font"),
		Highlights: c.StringSlice("highlight"),
		Circles:    c.StringSlice("circle"),
		Arrows:     c.StringSlice("arrow"),
		Layers: board.Layers{
			Highlights: !c.Bool("no-highlights"),
			Circles:    !c.Bool("no-circles"),
			Arrows:     !c.Bool("no-arrows"),
		},
	}
	return exportBoard(o, os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
}

func RunChessView() error {
	ff := &cli.StringFlag{
		Name:  "fen",
		Usage: "string FEN format",
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "logger level (debug, info, warn, error)",
		Value:   "info",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	conff := &cli.StringFlag{
		Name:  "config",
		Usage: "path to JSON or YAML config",
		Value: gconf.DefaultFile,
	}
	flipf := &cli.BoolFlag{
		Name:  "flip",
		Usage: "show the board from black's side",
	}
	fontf := &cli.StringFlag{
		Name:  "font",
		Usage: "TTF font with chess glyphs for PNG output",
	}
	guiff := []cli.Flag{conff, ff, df, lf, cf}
	playff := []cli.Flag{ff, flipf, fontf, df, lf, cf, &cli.BoolFlag{
		Name:  "letters",
		Usage: "draw pieces as letters",
	}}
	exportff := []cli.Flag{
		ff, flipf, fontf,
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file, - for stdout", Value: "-"},
		&cli.StringFlag{Name: "format", Usage: "svg or png, default from the file extension"},
		&cli.IntFlag{Name: "size", Usage: "board size in pixels", Value: board.DefaultConfig().BoardSize},
		&cli.StringSliceFlag{Name: "highlight", Usage: "outline a square, e.g. e4"},
		&cli.StringSliceFlag{Name: "circle", Usage: "circle a square, e.g. d5"},
		&cli.StringSliceFlag{Name: "arrow", Usage: "arrow between squares, e.g. g1f3"},
		&cli.BoolFlag{Name: "no-highlights", Usage: "skip highlights"},
		&cli.BoolFlag{Name: "no-circles", Usage: "skip circles"},
		&cli.BoolFlag{Name: "no-arrows", Usage: "skip arrows"},
	}

	return (&cli.Command{
		Name:  "chessview",
		Usage: "interactive chess board",
		Flags: guiff,
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Usage: "open the board window",
				Flags: guiff,
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunGUI(c)
				},
			},
			{
				Name:  "play",
				Usage: "play moves on a terminal board",
				Flags: playff,
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunPlay(c)
				},
			},
			{
				Name:  "export",
				Usage: "render a position to SVG or PNG",
				Flags: exportff,
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunExport(c)
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return RunGUI(c)
		},
	}).Run(context.Background(), os.Args)
}
