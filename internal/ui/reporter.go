package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/wahlandcase/vstamp/internal/models"
)

// Reporter prints generation progress to a terminal
type Reporter struct {
	out      io.Writer
	renderer *lipgloss.Renderer
}

// NewReporter creates a Reporter writing to w.
// Colors are detected from w unless noColor is set.
func NewReporter(w io.Writer, noColor bool) *Reporter {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Reporter{out: w, renderer: r}
}

// Step prints a progress line
func (r *Reporter) Step(msg string) {
	arrow := r.renderer.NewStyle().Foreground(ColorCyan).Render("-->")
	fmt.Fprintf(r.out, "%s %s\n", arrow, msg)
}

// Warn prints a warning line
func (r *Reporter) Warn(msg string) {
	label := r.renderer.NewStyle().Foreground(ColorYellow).Bold(true).Render("[WARNING]")
	fmt.Fprintf(r.out, "%s - %s\n", label, msg)
}

// Written reports that an artifact was saved
func (r *Reporter) Written(a models.Artifact) {
	icon := r.renderer.NewStyle().Foreground(ColorGreen).Render("✓")
	kind := r.renderer.NewStyle().Foreground(ArtifactColor(a.Kind)).Render(a.Kind.Label())
	fmt.Fprintf(r.out, "%s Writing %s (%s)\n", icon, a.Path, kind)
}

// Content prints a block of file content under a section header
func (r *Reporter) Content(title, body string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.SectionHeader(title, ColorCyan))
	fmt.Fprintln(r.out, strings.TrimRight(body, "\n"))
}

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func (r *Reporter) SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := r.renderer.NewStyle().Foreground(color)
	titleStyle := r.renderer.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}
