// SPDX-License-Identifier: MIT

package cell

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ErrParse is matched by every *ParseError.
var ErrParse = errors.New("cell: parse error")

// Reasons reported in ParseError.Reason.
const (
	ReasonIncomplete  = "incomplete number"
	ReasonSlashes     = "more than one slash"
	ReasonFraction    = "fraction parts must be integers"
	ReasonZeroDenom   = "zero denominator"
	ReasonNotNumber   = "not a number"
	ReasonNotFinite   = "not a finite number"
	ReasonOutOfRange  = "exponent out of range"
	ReasonEmptyMatrix = "empty matrix"
)

// ParseError describes one malformed cell. Row and Col are 1-based and zero
// when the cell was parsed on its own. Matrix optionally names the grid
// ("a", "b") the cell belongs to.
type ParseError struct {
	Matrix   string
	Row, Col int
	Input    string
	Reason   string
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString("cell: ")
	if e.Matrix != "" {
		sb.WriteString(e.Matrix)
		sb.WriteByte(' ')
	}
	if e.Row > 0 {
		fmt.Fprintf(&sb, "[%d,%d] ", e.Row, e.Col)
	}
	fmt.Fprintf(&sb, "%q: %s", e.Input, e.Reason)

	return sb.String()
}

// Unwrap makes every ParseError match ErrParse.
func (e *ParseError) Unwrap() error { return ErrParse }

// IsValidInput reports whether s is acceptable while a cell is being typed.
// It accepts every string Parse accepts plus the partial forms "-" and "p/".
func IsValidInput(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return true
	}
	switch strings.Count(s, "/") {
	case 0:
		_, err := parseReal(s)

		return err == ""
	case 1:
		p, q, _ := strings.Cut(s, "/")
		if !isInteger(p) {
			return false
		}

		return q == "" || isDigits(q)
	default:
		return false
	}
}

// Parse converts a finished cell into an exact rational. Empty input is zero.
func Parse(s string) (*big.Rat, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return new(big.Rat), nil
	}
	fail := func(reason string) (*big.Rat, error) {
		return nil, &ParseError{Input: s, Reason: reason}
	}
	if t == "-" {
		return fail(ReasonIncomplete)
	}

	switch strings.Count(t, "/") {
	case 0:
		r, reason := parseReal(t)
		if reason != "" {
			return fail(reason)
		}

		return r, nil
	case 1:
		p, q, _ := strings.Cut(t, "/")
		if q == "" {
			return fail(ReasonIncomplete)
		}
		if !isInteger(p) || !isDigits(q) {
			return fail(ReasonFraction)
		}
		num, _ := new(big.Int).SetString(p, 10)
		den, _ := new(big.Int).SetString(q, 10)
		if den.Sign() == 0 {
			return fail(ReasonZeroDenom)
		}

		return new(big.Rat).SetFrac(num, den), nil
	default:
		return fail(ReasonSlashes)
	}
}

// parseReal parses a decimal number exactly. The returned reason is empty on
// success.
func parseReal(s string) (*big.Rat, string) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return nil, ReasonNotFinite
		}

		return nil, ReasonNotNumber
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ReasonNotFinite
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		// big.Rat refuses huge exponents; only a hex mantissa survives
		// float64 unchanged.
		if !isHex(s) {
			return nil, ReasonOutOfRange
		}

		return new(big.Rat).SetFloat64(f), ""
	}

	return r, ""
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")

	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

func isInteger(s string) bool {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	return isDigits(s)
}

// ParseGrid parses every cell of rows. The first failure is returned with its
// 1-based position filled in.
func ParseGrid(rows [][]string) ([][]*big.Rat, error) {
	out := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		out[i] = make([]*big.Rat, len(row))
		for j, s := range row {
			r, err := Parse(s)
			if err != nil {
				var pe *ParseError
				if errors.As(err, &pe) {
					pe.Row, pe.Col = i+1, j+1
				}

				return nil, err
			}
			out[i][j] = r
		}
	}

	return out, nil
}

// Split breaks the compact "2,1;1,3" syntax into cells: rows are separated by
// ';' and cells by ','. Blank rows are skipped.
func Split(s string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(s, ";") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := strings.Split(line, ",")
		for j := range cells {
			cells[j] = strings.TrimSpace(cells[j])
		}
		rows = append(rows, cells)
	}

	return rows
}

// ParseRows parses the compact "2,1;1,3" syntax.
func ParseRows(s string) ([][]*big.Rat, error) {
	rows := Split(s)
	if len(rows) == 0 {
		return nil, &ParseError{Input: s, Reason: ReasonEmptyMatrix}
	}

	return ParseGrid(rows)
}

// Floats converts a parsed grid to float64 (nearest value, nil reads as 0).
func Floats(grid [][]*big.Rat) [][]float64 {
	out := make([][]float64, len(grid))
	for i, row := range grid {
		out[i] = make([]float64, len(row))
		for j, r := range row {
			if r != nil {
				out[i][j], _ = r.Float64()
			}
		}
	}

	return out
}
