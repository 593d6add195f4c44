// SPDX-License-Identifier: MIT

// Package render writes solver output to a terminal. Styled mode uses
// lipgloss (colors are dropped automatically when the writer is not a
// terminal); plain mode writes the lines exactly as the solver produced them.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/gauss/gauss"
)

// Palette.
var (
	ColorHeading = lipgloss.Color("#20B9B4")
	ColorSection = lipgloss.Color("#2CD7C7")
	ColorValue   = lipgloss.Color("#F5F5F5")
	ColorMuted   = lipgloss.Color("#6C8A94")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
)

// Icons used in styled mode.
const (
	IconOK      = "✓"
	IconWarning = "⚠"
	IconError   = "✗"
)

type styles struct {
	heading, section, label, value, muted, warning, err, errBox lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		heading: r.NewStyle().Bold(true).Foreground(ColorHeading),
		section: r.NewStyle().Bold(true).Underline(true).Foreground(ColorSection),
		label:   r.NewStyle().Foreground(ColorMuted),
		value:   r.NewStyle().Bold(true).Foreground(ColorValue),
		muted:   r.NewStyle().Foreground(ColorMuted),
		warning: r.NewStyle().Foreground(ColorWarning),
		err:     r.NewStyle().Bold(true).Foreground(ColorError),
		errBox: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorError).
			Padding(0, 1),
	}
}

// Printer writes solver output to one writer.
type Printer struct {
	w     io.Writer
	plain bool
	st    styles
}

// New returns a Printer for w. plain disables all styling and decoration.
func New(w io.Writer, plain bool) *Printer {
	return &Printer{w: w, plain: plain, st: newStyles(lipgloss.NewRenderer(w))}
}

// Lines writes solver display lines, one per output line. In styled mode
// consecutive matrix rows are right-aligned into columns.
func (p *Printer) Lines(lines []string) error {
	if p.plain {
		for _, l := range lines {
			if _, err := fmt.Fprintln(p.w, l); err != nil {
				return err
			}
		}

		return nil
	}

	var out []string
	var block []string
	flush := func() {
		if len(block) > 0 {
			out = append(out, p.alignRows(block)...)
			block = block[:0]
		}
	}
	for _, l := range lines {
		if kind(l) == kindRow {
			block = append(block, l)

			continue
		}
		flush()
		out = append(out, p.styleLine(l))
	}
	flush()

	for _, l := range out {
		if _, err := fmt.Fprintln(p.w, l); err != nil {
			return err
		}
	}

	return nil
}

type lineKind int

const (
	kindBlank lineKind = iota
	kindHeading
	kindSection
	kindSolution
	kindSingular
	kindRow
)

func kind(l string) lineKind {
	switch {
	case l == "":
		return kindBlank
	case l == gauss.HeadingDecimal || l == gauss.HeadingFraction:
		return kindSection
	case strings.HasPrefix(l, "No usable pivot"):
		return kindSingular
	case strings.HasPrefix(l, "x_"):
		return kindSolution
	case strings.HasSuffix(l, ":"):
		return kindHeading
	default:
		return kindRow
	}
}

func (p *Printer) styleLine(l string) string {
	switch kind(l) {
	case kindHeading:
		return p.st.heading.Render(l)
	case kindSection:
		return p.st.section.Render(l)
	case kindSingular:
		return p.st.warning.Render(IconWarning + " " + l)
	case kindSolution:
		label, value, _ := strings.Cut(l, ": ")
		return p.st.label.Render(label+":") + " " + p.st.value.Render(value)
	default:
		return l
	}
}

// alignRows pads tab-separated cells so every column is right-aligned.
func (p *Printer) alignRows(rows []string) []string {
	cells := make([][]string, len(rows))
	var widths []int
	for i, r := range rows {
		cells[i] = strings.Split(r, "\t")
		for j, c := range cells[i] {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			widths[j] = max(widths[j], lipgloss.Width(c))
		}
	}

	out := make([]string, len(rows))
	for i, row := range cells {
		parts := make([]string, len(row))
		for j, c := range row {
			parts[j] = p.st.muted.Width(widths[j]).Align(lipgloss.Right).Render(c)
		}
		out[i] = "  " + strings.Join(parts, "  ")
	}

	return out
}

// Result writes res.Lines() and, on success, a closing status line.
func (p *Printer) Result(res *gauss.Result) error {
	if err := p.Lines(res.Lines()); err != nil {
		return err
	}
	if p.plain || res == nil || res.Solution == nil {
		return nil
	}
	_, err := fmt.Fprintln(p.w, p.st.heading.Render(fmt.Sprintf("%s solved %d unknowns (%s mode)", IconOK, len(res.Solution), res.Mode)))

	return err
}

// Error writes err in an error box, or as "error: ..." in plain mode.
func (p *Printer) Error(err error) error {
	if err == nil {
		return nil
	}
	title := errorTitle(err)
	if p.plain {
		_, werr := fmt.Fprintf(p.w, "error: %s: %v\n", title, err)

		return werr
	}
	body := p.st.err.Render(IconError+" "+title) + "\n" + err.Error()
	_, werr := fmt.Fprintln(p.w, p.st.errBox.Render(body))

	return werr
}

// errorTitle names the error kind a person needs to act on.
func errorTitle(err error) string {
	switch {
	case errors.Is(err, gauss.ErrShape):
		return "shape error"
	case errors.Is(err, gauss.ErrSingular):
		return "singular matrix"
	case errors.Is(err, gauss.ErrOptionViolation):
		return "invalid option"
	default:
		return "invalid input"
	}
}

// Check writes the verdict for one typed cell.
func (p *Printer) Check(input string, valid bool, value string, parseErr error) error {
	var line string
	switch {
	case !valid:
		line = fmt.Sprintf("%q\tinvalid", input)
		if !p.plain {
			line = p.st.err.Render(IconError) + " " + line
		}
	case parseErr != nil:
		line = fmt.Sprintf("%q\tpartial\t%v", input, parseErr)
		if !p.plain {
			line = p.st.warning.Render(IconWarning) + " " + line
		}
	default:
		line = fmt.Sprintf("%q\tok\t%s", input, value)
		if !p.plain {
			line = p.st.heading.Render(IconOK) + " " + line
		}
	}
	_, err := fmt.Fprintln(p.w, line)

	return err
}
