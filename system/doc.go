// Package system reads and writes linear systems stored as YAML (or JSON)
// documents so they can be kept alongside notes and replayed.
//
//	name: two-by-two
//	a:
//	  - ["2", "1"]
//	  - [1, 3]
//	b: [3, 5]
//
// Cells follow the cell grammar ("1/3", "0.25", "" for zero). Bare YAML
// numbers are taken verbatim. b may be a flat list (one value per row) or a
// list of one-cell rows.
package system
