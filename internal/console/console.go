// Package console renders the CLI's banners, progress lines, and the
// final replacement report.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/norareidy/i-need-a-reference/internal/reference"
)

// DefaultDelay is the per-character pause of slow printing.
const DefaultDelay = 30 * time.Millisecond

const (
	ansiReset     = "\x1b[0m"
	ansiHighlight = "\x1b[36;40m" // cyan on black
	ansiOK        = "\x1b[30;42m" // black on green
)

// Console writes user-facing output.
type Console struct {
	out   io.Writer
	slow  bool
	color bool
	delay time.Duration
	sleep func(time.Duration)
	p     *message.Printer
}

// New returns a Console writing to out. Slow printing and color are only
// used when out is a terminal.
func New(out io.Writer, slow bool) *Console {
	tty := isTerminal(out)
	return &Console{
		out:   out,
		slow:  slow && tty,
		color: tty,
		delay: DefaultDelay,
		sleep: time.Sleep,
		p:     message.NewPrinter(language.English),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Banner draws the welcome box.
func (c *Console) Banner(title, tagline string) {
	width := max(utf8.RuneCountInString(title), utf8.RuneCountInString(tagline)) + 6
	fmt.Fprintln(c.out, "╔"+strings.Repeat("═", width)+"╗")
	fmt.Fprintln(c.out, "║"+center(title, width)+"║")
	fmt.Fprintln(c.out, "║"+center(tagline, width)+"║")
	fmt.Fprintln(c.out, "╚"+strings.Repeat("═", width)+"╝")
	fmt.Fprintln(c.out)
}

// Progress prints msg, one character at a time when slow printing is on.
func (c *Console) Progress(msg string) {
	if !c.slow {
		fmt.Fprintln(c.out, msg)
		return
	}
	for _, r := range msg {
		fmt.Fprint(c.out, string(r))
		c.sleep(c.delay)
	}
	fmt.Fprintln(c.out)
}

// Status prints a short highlighted status line such as "Opened!".
func (c *Console) Status(msg string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.paint(ansiOK, msg))
}

// Report prints the replacement summary for r.
func (c *Console) Report(r *reference.Report) {
	fmt.Fprintln(c.out)
	c.p.Fprintf(c.out, "You will probably replace about %s percent of the '%s' reference file.\n",
		c.paint(ansiHighlight, c.p.Sprintf("%.2f", r.Percent)), r.Filename)
	c.p.Fprintf(c.out, "On average, files in the '%s' category are %.2f percent different from their counterparts in other doc sets.\n",
		r.Category, r.Mean)
	c.p.Fprintf(c.out, "Your new file requires tier %d replacement, which means you'll replace %s.\n",
		int(r.Tier), c.paint(ansiHighlight, r.Description))
	c.p.Fprintf(c.out, "Reference: %s\n", r.Reference.Path)
}

// Error prints a user-facing failure message.
func (c *Console) Error(msg string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, msg)
}

func (c *Console) paint(code, s string) string {
	if !c.color {
		return s
	}
	return code + s + ansiReset
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
