// Package session drives the interactive menu: it owns the number sequence,
// dispatches the user's choices to the sorters, and records actions to the
// session log when the user asked for it.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	clog "github.com/charmbracelet/log"

	"github.com/watchfire-io/algosort/internal/sequence"
	"github.com/watchfire-io/algosort/internal/sessionlog"
	"github.com/watchfire-io/algosort/internal/sorter"
)

const (
	dashLine    = "----------"
	viewRule    = "**********************************************"
	titleRule   = "---------------=================---------------"
	closingRule = "------------------========================------------------"
)

// LoggingMode decides how the logging choice is made at start-up.
type LoggingMode int

const (
	// LoggingAsk asks the user once before the menu is shown.
	LoggingAsk LoggingMode = iota
	// LoggingOn records the session without asking.
	LoggingOn
	// LoggingOff never records the session.
	LoggingOff
)

// Options configures a Controller.
type Options struct {
	InitialSize int
	Logging     LoggingMode
	LogDir      string
	LogOptions  []sessionlog.Option
	Source      sequence.Source
	Diagnostics *clog.Logger
}

// Controller runs one interactive session over an input source and an output sink.
type Controller struct {
	in     *bufio.Reader
	out    io.Writer
	styles styles
	opts   Options
	diag   *clog.Logger

	seq *sequence.Sequence
	log *sessionlog.Logger // nil when the session is not recorded
}

// New returns a Controller reading commands from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Controller {
	if opts.InitialSize == 0 {
		opts.InitialSize = sequence.DefaultSize
	}
	if opts.LogDir == "" {
		opts.LogDir = "Logs"
	}
	if opts.Source == nil {
		opts.Source = sequence.NewSource(0)
	}
	diag := opts.Diagnostics
	if diag == nil {
		diag = clog.New(io.Discard)
	}

	return &Controller{
		in:     bufio.NewReader(in),
		out:    out,
		styles: newStyles(out),
		opts:   opts,
		diag:   diag,
		seq:    sequence.New(opts.Source),
	}
}

// Sequence returns the sequence owned by the controller.
func (c *Controller) Sequence() *sequence.Sequence {
	return c.seq
}

// Logging reports whether actions are being recorded.
func (c *Controller) Logging() bool {
	return c.log != nil
}

// Run generates the initial sequence, settles the logging choice, and loops
// over the menu until the exit command or the end of input. The only error
// returned is an unusable initial size.
func (c *Controller) Run() error {
	if err := c.generate(c.opts.InitialSize); err != nil {
		return err
	}

	c.setupLogging()

	c.banner(titleRule, "ALGORITHM PROGRAM")
	for c.step() {
	}
	c.banner(closingRule, "ENDING ALGORITHM PROGRAM")

	c.diag.Debug("session finished", "logged", c.Logging(), "size", c.seq.Len())
	return nil
}

func (c *Controller) setupLogging() {
	enabled := c.opts.Logging == LoggingOn
	if c.opts.Logging == LoggingAsk {
		c.println("Type '1' if you'd like to record this session in the logs.")
		ch, _ := c.readChar()
		enabled = ch == '1'
	}

	if !enabled {
		c.println(c.styles.hint.Render("Your actions in this session will not be logged."))
		return
	}

	opts := append([]sessionlog.Option{sessionlog.WithDiagnostics(c.diag)}, c.opts.LogOptions...)
	c.log = sessionlog.New(c.opts.LogDir, opts...)
	c.diag.Debug("session log opened", "path", c.log.Path())

	fmt.Fprint(c.out, c.log.Timestamp())
	c.println(c.styles.success.Render("Your actions in this session will be logged."))
}

// step shows the menu and handles one command. It returns false once the
// session should end.
func (c *Controller) step() bool {
	c.menu()
	ch, ok := c.readChar()
	if !ok {
		c.println("")
		return false
	}
	c.println(c.styles.rule.Render(dashLine))

	switch ch {
	case '1':
		dir, ok := c.askDirection()
		if !ok {
			return false
		}
		if dir == sorter.Ascending {
			c.println("--SORTING THROUGH ASCENDED--")
		} else {
			c.println("--SORTING THROUGH DESCENDED--")
		}
		sorter.ExchangeSort(c.seq.Values(), dir)
		c.recordSort(dir)
		c.view()

	case '2':
		dir, ok := c.askDirection()
		if !ok {
			return false
		}
		sorter.MergeSort(c.seq.Values(), dir)
		c.recordSort(dir)
		c.view()

	case '3':
		c.view()

	case '4':
		size, ok := c.askSize()
		if !ok {
			return false
		}
		if err := c.generate(size); err != nil {
			c.diag.Error("regeneration failed", "size", size, "err", err)
			return true
		}
		c.log.Record("Generated a new set of numbers: \n", c.seq.Values())
		c.view()

	case '5':
		return false

	default:
		c.println(c.styles.err.Render("Invalid input! Please input the following:"))
	}
	return true
}

func (c *Controller) menu() {
	c.println("Type 1 to Sort Through Bubble Sort Algorithm")
	c.println("Type 2 to Sort Through Merge Sort Algorithm")
	c.println("Type 3 to View Numbers")
	c.println("Type 4 to Generate New Numbers")
	c.println("Type 5 to Exit Program")
	c.println(c.styles.rule.Render(dashLine))
	fmt.Fprint(c.out, c.styles.prompt.Render("User Input:")+" ")
}

func (c *Controller) banner(rule, title string) {
	c.println(c.styles.rule.Render(rule))
	c.println(c.styles.brand.Render(center(title, len(rule))))
	c.println(c.styles.rule.Render(rule))
}

// askDirection returns Ascending for 'A' or 'a' and Descending for anything else.
func (c *Controller) askDirection() (sorter.Direction, bool) {
	c.println("Type 'A' if you'd like to sort ascending. Type any other key to sort descending:")
	fmt.Fprint(c.out, c.styles.prompt.Render("User Input:")+" ")
	ch, ok := c.readChar()
	if !ok {
		return sorter.Descending, false
	}
	if ch == 'A' || ch == 'a' {
		return sorter.Ascending, true
	}
	return sorter.Descending, true
}

// askSize re-prompts until a size in range is entered.
func (c *Controller) askSize() (int, bool) {
	fmt.Fprintf(c.out, "How many numbers would you like to generate? (%d-%d): ", sequence.MinSize, sequence.MaxSize)
	for {
		line, ok := c.readLine()
		if !ok {
			return 0, false
		}
		fields := strings.Fields(line)
		if len(fields) > 0 {
			if n, err := strconv.Atoi(fields[0]); err == nil && sequence.ValidSize(n) {
				return n, true
			}
		}
		fmt.Fprint(c.out, "\n"+c.styles.warning.Render(fmt.Sprintf("Error, please input a valid number from %d-%d:", sequence.MinSize, sequence.MaxSize))+" ")
	}
}

func (c *Controller) generate(size int) error {
	c.println("Generating numbers...")
	return c.seq.Regenerate(size)
}

func (c *Controller) recordSort(dir sorter.Direction) {
	c.log.Record(fmt.Sprintf("Reorganized numbers in %s order: \n", dir), c.seq.Values())
}

func (c *Controller) view() {
	c.println("Viewing all numbers:")
	c.println(c.seq.String())
	c.println(c.styles.rule.Render(viewRule))
}

// readLine returns the next input line without surrounding whitespace. It
// reports false at the end of input.
func (c *Controller) readLine() (string, bool) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// readChar returns the first character of the next non-blank line; the rest
// of the line is discarded.
func (c *Controller) readChar() (rune, bool) {
	for {
		line, ok := c.readLine()
		if !ok {
			return 0, false
		}
		if line != "" {
			r, _ := utf8.DecodeRuneInString(line)
			return r, true
		}
	}
}

func (c *Controller) println(s string) {
	fmt.Fprintln(c.out, s)
}
