// Command bridgelayout prints the static byte layout of codec compositions.
//
// Usage:
//
//	bridgelayout '(option<(i64, bool)>, (u8, f32))'
//	bridgelayout -json 'option<handle>'
//	bridgelayout -against '(u8, u32)' '(x: u8, y: f32)'
//	bridgelayout -i
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/bridge/layout"
)

func main() {
	var (
		asJSON      = flag.Bool("json", false, "Print layouts as JSON")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log parsing to stderr")
		against     = flag.String("against", "", "Compare every expression with this one")
	)
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = l
	}
	defer log.Sync()

	if *interactive {
		p := tea.NewProgram(newInteractiveModel(log), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: bridgelayout [-json] [-against EXPR] EXPR...")
		fmt.Fprintln(os.Stderr, "       bridgelayout -i  (interactive mode)")
		os.Exit(1)
	}

	opts := options{
		json:    *asJSON,
		styled:  !*asJSON && term.IsTerminal(int(os.Stdout.Fd())),
		against: *against,
	}
	if err := run(os.Stdout, log, flag.Args(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	against string
	json    bool
	styled  bool
}

func run(w io.Writer, log *zap.Logger, exprs []string, opts options) error {
	var ref *layout.Node
	if opts.against != "" {
		n, err := parseExpr(opts.against)
		if err != nil {
			return fmt.Errorf("-against: %w", err)
		}
		ref = &n
	}

	var reports []report
	for _, src := range exprs {
		n, err := parseExpr(src)
		if err != nil {
			return fmt.Errorf("%s: %w", src, err)
		}
		log.Debug("parsed expression",
			zap.String("source", src),
			zap.String("layout", n.String()),
			zap.Int("size", n.Size),
		)

		if ref != nil {
			if err := layout.Compare(*ref, n); err != nil {
				return fmt.Errorf("%s: %w", src, err)
			}
		}

		switch {
		case opts.json:
			reports = append(reports, newReport(n))
		case opts.styled:
			fmt.Fprint(w, renderStyled(n))
		default:
			writePlain(w, n)
		}
	}

	if opts.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	return nil
}
