// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styler colors text output. A disabled Styler returns its input
// unchanged, so piped output never carries escape sequences.
type Styler struct {
	enabled bool

	good    lipgloss.Style
	warning lipgloss.Style
	bad     lipgloss.Style
	faint   lipgloss.Style
}

// NewStyler returns a Styler enabled only when f is a terminal.
func NewStyler(f *os.File) *Styler {
	return newStyler(term.IsTerminal(int(f.Fd())))
}

// PlainStyler returns a disabled Styler.
func PlainStyler() *Styler {
	return newStyler(false)
}

func newStyler(enabled bool) *Styler {
	return &Styler{
		enabled: enabled,
		good:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		bad:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		faint:   lipgloss.NewStyle().Faint(true),
	}
}

// Good renders a healthy outcome.
func (s *Styler) Good(text string) string { return s.render(s.good, text) }

// Warning renders a cautionary outcome.
func (s *Styler) Warning(text string) string { return s.render(s.warning, text) }

// Bad renders a failure.
func (s *Styler) Bad(text string) string { return s.render(s.bad, text) }

// Faint renders secondary detail.
func (s *Styler) Faint(text string) string { return s.render(s.faint, text) }

func (s *Styler) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}
