// SPDX-License-Identifier: MIT

package system

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/katalvlaran/gauss/cell"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmpty is returned when a document has no coefficient matrix.
	ErrEmpty = errors.New("system: no coefficient matrix")

	// ErrDecode is returned for documents that are not a valid system file.
	ErrDecode = errors.New("system: invalid document")
)

// Cell is one raw cell as written in the file.
type Cell string

// Grid is a matrix of raw cells. On decode a sequence of scalars is read as a
// column (one cell per row), so "b: [3, 5]" is the 2×1 vector.
type Grid [][]Cell

// File is the on-disk shape of a system.
type File struct {
	Name string `yaml:"name,omitempty"`
	A    Grid   `yaml:"a"`
	B    Grid   `yaml:"b"`
}

// System is a parsed file ready for gauss.SolveRational.
type System struct {
	Name string
	A, B [][]*big.Rat
}

// UnmarshalYAML accepts rows of scalars or a flat list of scalars.
func (g *Grid) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: line %d: matrix must be a list", ErrDecode, value.Line)
	}
	out := make(Grid, 0, len(value.Content))
	for _, item := range value.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			out = append(out, []Cell{scalar(item)})
		case yaml.SequenceNode:
			row := make([]Cell, 0, len(item.Content))
			for _, c := range item.Content {
				if c.Kind != yaml.ScalarNode {
					return fmt.Errorf("%w: line %d: cell must be a scalar", ErrDecode, c.Line)
				}
				row = append(row, scalar(c))
			}
			out = append(out, row)
		default:
			return fmt.Errorf("%w: line %d: row must be a list or a scalar", ErrDecode, item.Line)
		}
	}
	*g = out

	return nil
}

func scalar(n *yaml.Node) Cell {
	if n.Tag == "!!null" {
		return ""
	}

	return Cell(n.Value)
}

// MarshalYAML writes each row as a flow sequence of strings.
func (g Grid) MarshalYAML() (any, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range g {
		r := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, c := range row {
			r.Content = append(r.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(c)})
		}
		seq.Content = append(seq.Content, r)
	}

	return seq, nil
}

func (g Grid) strings() [][]string {
	out := make([][]string, len(g))
	for i, row := range g {
		out[i] = make([]string, len(row))
		for j, c := range row {
			out[i][j] = string(c)
		}
	}

	return out
}

// Parse converts every cell with the cell grammar. Parse errors name the
// matrix ("a" or "b") and the 1-based cell position.
func (f File) Parse() (*System, error) {
	if len(f.A) == 0 {
		return nil, ErrEmpty
	}
	a, err := parseGrid("a", f.A)
	if err != nil {
		return nil, err
	}
	b, err := parseGrid("b", f.B)
	if err != nil {
		return nil, err
	}

	return &System{Name: f.Name, A: a, B: b}, nil
}

func parseGrid(label string, g Grid) ([][]*big.Rat, error) {
	out, err := cell.ParseGrid(g.strings())
	if err != nil {
		var pe *cell.ParseError
		if errors.As(err, &pe) {
			pe.Matrix = label
		}

		return nil, err
	}

	return out, nil
}

// DecodeFile reads one YAML document into a File. Unknown keys are rejected.
func DecodeFile(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return f, ErrEmpty
		}
		if errors.Is(err, ErrDecode) {
			return f, err
		}

		return f, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return f, nil
}

// Decode reads and parses one system document.
func Decode(r io.Reader) (*System, error) {
	f, err := DecodeFile(r)
	if err != nil {
		return nil, err
	}

	return f.Parse()
}

// Load reads the system file at path.
func Load(path string) (*System, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("system: %w", err)
	}
	defer fh.Close()

	s, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Encode writes f as YAML with two-space indentation.
func Encode(w io.Writer, f File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("system: encode: %w", err)
	}

	return enc.Close()
}

// FromRows builds a File from display strings, e.g. the rows a user typed.
func FromRows(name string, a, b [][]string) File {
	return File{Name: name, A: toGrid(a), B: toGrid(b)}
}

func toGrid(rows [][]string) Grid {
	g := make(Grid, len(rows))
	for i, row := range rows {
		g[i] = make([]Cell, len(row))
		for j, s := range row {
			g[i][j] = Cell(s)
		}
	}

	return g
}
