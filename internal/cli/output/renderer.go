// Package output renders CLI results in the format appropriate for the
// environment: styled text on a terminal, plain text when piped, and
// machine-readable json/yaml on request.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeText Mode = "text"
	ModeJSON Mode = "json"
	ModeYAML Mode = "yaml"
)

// Styles holds the lipgloss styles used for terminal output.
type Styles struct {
	Header lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
}

// DefaultStyles returns the standard style set.
func DefaultStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().Bold(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Muted:  lipgloss.NewStyle().Faint(true),
	}
}

// Renderer writes command output to out and diagnostics to errOut.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles *Styles
	isTTY  bool
}

// NewRenderer creates a renderer for the given writers and mode.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: DefaultStyles(),
		isTTY:  isTerminal(out),
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// EffectiveMode resolves ModeAuto: styled text on a TTY, plain text
// otherwise. Explicit modes pass through.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	return ModeText
}

// Styled reports whether styled output should be emitted.
func (r *Renderer) Styled() bool {
	return r.mode == ModeAuto && r.isTTY
}

// Out returns the output writer.
func (r *Renderer) Out() io.Writer { return r.out }

// ErrOut returns the diagnostics writer.
func (r *Renderer) ErrOut() io.Writer { return r.errOut }

// Println writes a plain line to the output writer.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to the output writer.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Header writes a heading, bold on a TTY.
func (r *Renderer) Header(text string) {
	if r.Styled() {
		text = r.styles.Header.Render(text)
	}
	_, _ = fmt.Fprintln(r.out, text)
}

// Errorf writes a diagnostic line to the error writer, styled on a TTY.
func (r *Renderer) Errorf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if r.Styled() {
		msg = r.styles.Error.Render(msg)
	}
	_, _ = fmt.Fprintln(r.errOut, msg)
}

// Mutedf writes de-emphasized informational text to the output writer.
func (r *Renderer) Mutedf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if r.Styled() {
		msg = r.styles.Muted.Render(msg)
	}
	_, _ = fmt.Fprintln(r.out, msg)
}
