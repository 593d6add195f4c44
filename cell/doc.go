// Package cell implements the input grammar for matrix cells typed by a
// person: keystroke validation, exact parsing and grid helpers.
//
// Grammar
//
//   - "" is an empty cell and reads as 0.
//   - "-" is accepted while typing but is not a number.
//   - "p/q" is a fraction with exactly one slash and integer parts; "p/" is
//     accepted while typing.
//   - anything strconv.ParseFloat accepts as a finite number ("1.5", "-2e3").
//
// Parse returns exact *big.Rat values: "0.1" is 1/10, not the nearest
// float64. Malformed input yields a *ParseError matching ErrParse.
package cell
