// Package gauss is a small toolkit for solving square linear systems by
// Gaussian elimination, with every row swap and row update written out the
// way it would be done by hand.
//
// 🚀 What is in the box?
//
//	• Solver: partial pivoting, float64 or exact-fraction arithmetic
//	• Trace: the augmented matrix after every step, ready to display
//	• Fractions: minimal-denominator recovery of decimal results
//	• Input grammar: cells such as "1/3", "-0.25" or "" (zero)
//	• System files: YAML/JSON documents with a and b
//	• CLI: gauss solve, gauss check
//
// ✨ Why?
//
//   - Deterministic – the same input always yields the same trace
//   - Honest errors – shape problems and singular systems are told apart
//   - Exact when asked – *big.Rat elimination avoids rounding altogether
//
// Packages:
//
//	gauss/      Validator, forward elimination, back substitution, Result
//	matrix/     Dense row-major matrices, validators, Residual
//	rational/   float → fraction (LimitDenominator)
//	cell/       keystroke validation and exact cell parsing
//	system/     YAML system files
//	config/     TOML settings for solver and logging
//	render/     terminal styling of results and errors
//	cmd/gauss/  the command-line program
//	examples/   small worked programs
//
// Quick example:
//
//	2x +  y = 3
//	 x + 3y = 5      →   x = 4/5, y = 7/5
//
//	go install github.com/katalvlaran/gauss/cmd/gauss@latest
//	gauss solve --a "2,1;1,3" --b "3;5"
package gauss
