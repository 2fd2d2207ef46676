package cli

import (
	"bufio"
	"chessview/src/board"
	"chessview/src/rules"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/corentings/chess/v2"
	"golang.org/x/term"
)

type DrawFunc func(w io.Writer, bv *board.BoardView)

type CLIProcessing struct {
	view   *board.BoardView
	draw   DrawFunc
	in     io.Reader
	out    io.Writer
	raster board.RasterOptions
}

func NewCLI(bv *board.BoardView, draw DrawFunc, in io.Reader, out io.Writer) *CLIProcessing {
	return &CLIProcessing{view: bv, draw: draw, in: in, out: out}
}

// SetRasterOptions sets the font used by "save" for PNG files.
func (c *CLIProcessing) SetRasterOptions(o board.RasterOptions) {
	c.raster = o
}

const help = "Moves in UCI (e2e4, e7e8q). Commands: u undo, f flip, fen [FEN], s <file.svg|file.png>, moves, legal, h help, q quit."

// raw processing
// - type a command and press Enter
// - left arrow key to undo
// - q or Ctrl+C to exit
// Falls back to line mode when input is not a terminal.
func (c *CLIProcessing) Run() error {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.RunLineMode()
	}
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	// raw mode needs explicit carriage returns
	out := c.out
	c.out = crlfWriter{out}
	defer func() { c.out = out }()

	r := bufio.NewReader(f)
	var inputBuf strings.Builder

	c.redraw()
	fmt.Fprintln(c.out, help)
	c.prompt()

	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}

		switch {
		case b == 3: // Ctrl+C
			fmt.Fprintln(c.out, "\nInterrupted")
			return nil
		case b == 0x1b: // escape sequence, possible arrow
			b1, err := r.ReadByte()
			if err != nil {
				continue
			}
			b2, err := r.ReadByte()
			if err != nil {
				continue
			}
			if b1 == '[' && b2 == 'D' {
				inputBuf.Reset()
				fmt.Fprintln(c.out)
				c.exec("u")
				c.prompt()
			}
		case b == '\r' || b == '\n':
			s := inputBuf.String()
			inputBuf.Reset()
			fmt.Fprintln(c.out)
			if c.exec(s) {
				return nil
			}
			c.prompt()
		case b == 0x7f || b == 8: // backspace
			if s := inputBuf.String(); s != "" {
				inputBuf.Reset()
				inputBuf.WriteString(s[:len(s)-1])
				fmt.Fprint(c.out, "\b \b")
			}
		case b >= 32 && b <= 126:
			inputBuf.WriteByte(b)
			fmt.Fprintf(c.out, "%c", b)
		}
	}
}

// RunLineMode reads one command per line until "q" or end of input.
func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	c.redraw()
	fmt.Fprintln(c.out, help)
	for scanner.Scan() {
		if c.exec(scanner.Text()) {
			return nil
		}
		if c.view.PromotionPending() {
			c.prompt()
		}
	}
	return scanner.Err()
}

func (c *CLIProcessing) prompt() {
	if c.view.PromotionPending() {
		fmt.Fprint(c.out, "promote to (q/r/b/n): ")
		return
	}
	fmt.Fprint(c.out, "> ")
}

func (c *CLIProcessing) redraw() {
	c.draw(c.out, c.view)
	c.printStatus()
}

// exec runs one command line and reports whether to quit.
func (c *CLIProcessing) exec(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if c.view.PromotionPending() {
		c.promote(line)
		return false
	}

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(cmd) {
	case "q", "quit":
		fmt.Fprintln(c.out, "Quitting")
		return true
	case "h", "help", "?":
		fmt.Fprintln(c.out, help)
	case "u", "undo":
		if err := c.view.Pop(); err != nil {
			fmt.Fprintf(c.out, "Cannot undo: %v\n", err)
			return false
		}
		c.redraw()
	case "f", "flip":
		c.view.FlipBoard()
		c.redraw()
	case "fen":
		if arg == "" {
			fmt.Fprintln(c.out, c.view.FEN())
			return false
		}
		if err := c.view.SetFEN(arg); err != nil {
			fmt.Fprintf(c.out, "Invalid FEN: %v\n", err)
			return false
		}
		c.redraw()
	case "s", "save":
		if arg == "" {
			fmt.Fprintln(c.out, "Usage: s <file.svg|file.png>")
			return false
		}
		if err := c.save(arg); err != nil {
			fmt.Fprintf(c.out, "Error save %s: %v\n", arg, err)
			return false
		}
		fmt.Fprintf(c.out, "Saved %s\n", arg)
	case "moves":
		fmt.Fprintf(c.out, "Moves: %s\n", strings.Join(c.view.History(), " "))
	case "legal":
		legal := c.view.LegalMoves()
		out := make([]string, 0, len(legal))
		for _, m := range legal {
			out = append(out, m.UCI())
		}
		fmt.Fprintf(c.out, "Legal: %s\n", strings.Join(out, " "))
	default:
		c.move(line)
	}
	return false
}

func (c *CLIProcessing) move(s string) {
	m, err := rules.ParseUCI(s)
	if err != nil {
		fmt.Fprintf(c.out, "Invalid move: %s\n", s)
		return
	}
	opts := []board.MoveOption{board.WithoutAnimation()}
	if m.Promo != chess.NoPieceType {
		opts = append(opts, board.WithPromotion(m.Promo))
	}
	if _, ok := c.view.MakeMove(m.From, m.To, opts...); ok {
		c.redraw()
		return
	}
	if !c.view.PromotionPending() {
		fmt.Fprintf(c.out, "Illegal move: %s\n", s)
	}
}

func (c *CLIProcessing) promote(s string) {
	pieces := map[string]chess.PieceType{"q": chess.Queen, "r": chess.Rook, "b": chess.Bishop, "n": chess.Knight}
	pt, ok := pieces[strings.ToLower(s)]
	if !ok {
		c.view.CancelPromotion()
		fmt.Fprintln(c.out, "Promotion cancelled")
		return
	}
	if _, ok := c.view.ChoosePromotion(pt); ok {
		c.redraw()
	}
}

var errFormat = errors.New("unknown image format, use .svg or .png")

func (c *CLIProcessing) save(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return c.view.ExportSVG(path, board.AllLayers)
	case ".png":
		return c.view.ExportPNG(path, board.AllLayers, c.raster)
	}
	return errFormat
}

func (c *CLIProcessing) printStatus() {
	turn := "White"
	if c.view.Turn() == chess.Black {
		turn = "Black"
	}
	fmt.Fprintf(c.out, "FEN: %s\n", c.view.FEN())
	if res, how := c.view.Outcome(); res != "*" {
		fmt.Fprintf(c.out, "Status: %s %s\n", how, res)
		return
	}
	fmt.Fprintf(c.out, "Status: %s to move\n", turn)
}

type crlfWriter struct {
	w io.Writer
}

func (cw crlfWriter) Write(p []byte) (int, error) {
	s := strings.ReplaceAll(string(p), "\n", "\r\n")
	if _, err := io.WriteString(cw.w, s); err != nil {
		return 0, err
	}
	return len(p), nil
}
