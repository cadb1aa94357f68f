// Package shell runs the presentation loop as a line-oriented terminal
// session. Each command is one action on the application; after every
// command the current view is rendered again.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/mesh-intelligence/tradebook/internal/app"
	"github.com/mesh-intelligence/tradebook/internal/metrics"
	"github.com/mesh-intelligence/tradebook/internal/nav"
	"github.com/mesh-intelligence/tradebook/internal/views"
)

const helpText = `Commands:
  go <main|partners|sales|products>   switch view
  back, <                             previous view
  forward, >                          next view
  open <form>                         open a form (partner, sale, product, product-type)
  close <form>                        close a form, keeping its values
  set <form> <field> <value>          fill a form field
  pick <form> <field> <id>            choose a product, partner or product type
  submit <form>                       create the record described by a form
  delete <kind> <id>                  delete a partner, sale, product or product-type
  dismiss                             hide the error
  stats                               store operation counters
  help                                this text
  quit, exit                          leave the shell`

// Shell reads commands from in and writes frames to out.
type Shell struct {
	app     *app.App
	in      io.Reader
	out     io.Writer
	metrics *metrics.StoreMetrics
}

// Option configures a Shell.
type Option func(*Shell)

// WithMetrics enables the stats command.
func WithMetrics(m *metrics.StoreMetrics) Option {
	return func(s *Shell) { s.metrics = m }
}

// New returns a shell over a.
func New(a *app.App, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{app: a, in: in, out: out}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run renders the current view and then executes commands until quit or
// end of input.
func (s *Shell) Run(ctx context.Context) error {
	writeFrame(s.out, s.app.Frame(ctx))

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprintf(s.out, "%s> ", s.app.Current())
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		quit, redraw := s.exec(ctx, line)
		if quit {
			return nil
		}
		if redraw {
			writeFrame(s.out, s.app.Frame(ctx))
		}
	}
}

// exec runs one command line. It reports whether the session ends and
// whether the view should be rendered again.
func (s *Shell) exec(ctx context.Context, line string) (quit, redraw bool) {
	args := strings.Fields(line)
	cmd, args := args[0], args[1:]

	switch cmd {
	case "quit", "exit":
		return true, false
	case "help":
		fmt.Fprintln(s.out, helpText)
		return false, false
	case "stats":
		s.writeStats()
		return false, false
	case "back", "<":
		s.app.Back()
	case "forward", ">":
		s.app.Forward()
	case "dismiss":
		s.app.DismissError()
	case "go":
		if len(args) != 1 {
			return s.usage("go <view>")
		}
		v, err := nav.ParseView(args[0])
		if err != nil {
			fmt.Fprintln(s.out, err)
			return false, false
		}
		s.app.Navigate(v)
	case "open", "close", "submit":
		if len(args) != 1 {
			return s.usage(cmd + " <form>")
		}
		f, ok := s.form(args[0])
		if !ok {
			return false, false
		}
		switch cmd {
		case "open":
			s.app.OpenForm(f)
		case "close":
			s.app.CloseForm(f)
		default:
			s.app.Submit(ctx, f)
		}
	case "set":
		if len(args) < 2 {
			return s.usage("set <form> <field> <value>")
		}
		f, ok := s.form(args[0])
		if !ok {
			return false, false
		}
		s.app.SetField(f, args[1], afterTokens(line, 3))
	case "pick":
		if len(args) != 3 {
			return s.usage("pick <form> <field> <id>")
		}
		f, ok := s.form(args[0])
		if !ok {
			return false, false
		}
		s.app.Select(ctx, f, args[1], args[2])
	case "delete":
		if len(args) < 2 {
			return s.usage("delete <kind> <id>")
		}
		f, ok := s.form(args[0])
		if !ok {
			return false, false
		}
		s.app.Delete(ctx, f, afterTokens(line, 2))
	default:
		fmt.Fprintf(s.out, "unknown command %q; type help\n", cmd)
		return false, false
	}
	return false, true
}

// afterTokens returns line with its first n space-separated tokens and the
// whitespace after them removed. Inner spacing of the rest is kept.
func afterTokens(line string, n int) string {
	rest := line
	for i := 0; i < n; i++ {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		j := strings.IndexFunc(rest, unicode.IsSpace)
		if j < 0 {
			return ""
		}
		rest = rest[j:]
	}
	return strings.TrimLeftFunc(rest, unicode.IsSpace)
}

func (s *Shell) form(name string) (views.FormID, bool) {
	f, ok := views.ParseForm(name)
	if !ok {
		fmt.Fprintf(s.out, "unknown form %q\n", name)
	}
	return f, ok
}

func (s *Shell) usage(u string) (quit, redraw bool) {
	fmt.Fprintf(s.out, "usage: %s\n", u)
	return false, false
}

func (s *Shell) writeStats() {
	if s.metrics == nil {
		fmt.Fprintln(s.out, "metrics are disabled")
		return
	}
	samples, err := metrics.Counters(s.metrics.Registry())
	if err != nil {
		fmt.Fprintf(s.out, "gather metrics: %s\n", err)
		return
	}
	rows := make([][]string, 0, len(samples))
	for _, smp := range samples {
		rows = append(rows, []string{smp.Name, smp.Labels, fmt.Sprintf("%g", smp.Value)})
	}
	table(s.out, []string{"METRIC", "LABELS", "VALUE"}, rows)
}
