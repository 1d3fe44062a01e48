package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// renderer writes model output, rendering markdown and colors only when
// stdout is a terminal.
type renderer struct {
	out, errOut io.Writer
	tty         bool
	md          *glamour.TermRenderer

	errStyle    lipgloss.Style
	dimStyle    lipgloss.Style
	promptStyle lipgloss.Style
}

func newRenderer(out, errOut io.Writer) *renderer {
	r := &renderer{
		out:         out,
		errOut:      errOut,
		errStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dimStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		promptStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	}

	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		r.tty = true
		if md, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100)); err == nil {
			r.md = md
		}
	}

	return r
}

// Markdown prints text, rendered when possible.
func (r *renderer) Markdown(text string) {
	if r.md != nil {
		if rendered, err := r.md.Render(text); err == nil {
			fmt.Fprint(r.out, rendered)
			return
		}
	}
	fmt.Fprintln(r.out, text)
}

// Plain prints text as is, without a newline.
func (r *renderer) Plain(text string) {
	fmt.Fprint(r.out, text)
}

// Status prints dismissible status text.
func (r *renderer) Status(text string) {
	if text == "" {
		return
	}
	fmt.Fprintln(r.errOut, r.styleError(text))
}

// Hint prints secondary text such as "waiting" notices.
func (r *renderer) Hint(text string) {
	fmt.Fprintln(r.errOut, r.style(r.dimStyle, text))
}

// Prompt returns the input prompt label.
func (r *renderer) Prompt(label string) string {
	return r.style(r.promptStyle, label)
}

func (r *renderer) styleError(text string) string {
	return r.style(r.errStyle, text)
}

func (r *renderer) style(s lipgloss.Style, text string) string {
	if !r.tty {
		return text
	}
	return s.Render(text)
}
