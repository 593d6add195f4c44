// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"strings"
)

// Trace headings. Row and column numbers are 1-based.
const (
	traceInitial  = "Augmented Matrix (Initial):"
	traceSwap     = "Swapped rows %d and %d:"
	traceRowOp    = "Row %d updated by subtracting %s * Row %d:"
	traceSingular = "No usable pivot in column %d: the system has no unique solution."
)

// tracer accumulates trace lines. A disabled tracer records nothing, so the
// elimination loop calls it unconditionally.
type tracer struct {
	on    bool
	lines []string
}

// emit appends a heading, one line per matrix row (cells tab-separated) and a
// blank separator.
func emit[T any](t *tracer, f field[T], heading string, m [][]T) {
	if !t.on {
		return
	}
	t.lines = append(t.lines, heading)
	t.lines = append(t.lines, renderRows(f, m)...)
	t.lines = append(t.lines, "")
}

func emitf[T any](t *tracer, f field[T], m [][]T, format string, args ...any) {
	if !t.on {
		return
	}
	emit(t, f, fmt.Sprintf(format, args...), m)
}

// renderRows formats each row of m as tab-separated cells.
func renderRows[T any](f field[T], m [][]T) []string {
	out := make([]string, len(m))
	var sb strings.Builder
	for i, row := range m {
		sb.Reset()
		for j, v := range row {
			if j > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(f.format(v))
		}
		out[i] = sb.String()
	}

	return out
}
