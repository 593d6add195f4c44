// Package rational turns float64 values into minimal-denominator fractions
// for display next to decimal results.
//
// What
//
//   - FromFloat: exact conversion of a finite float64 to *big.Rat.
//   - LimitDenominator: closest fraction whose denominator does not exceed a
//     bound (continued-fraction convergents and semiconvergents).
//   - Approximate: FromFloat + LimitDenominator in one call.
//   - String: "p/q" or plain integer rendering.
//
// Why
//
//	Floating elimination produces values such as 1.4000000000000001; users
//	expect to read 7/5. Approximating with a bounded denominator recovers
//	the intended fraction whenever the true solution has a small denominator,
//	and degrades gracefully (to the best bounded approximation) otherwise.
//
// Determinism
//
//	Pure big-integer arithmetic; identical inputs yield identical fractions.
package rational
