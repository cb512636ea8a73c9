// Package fracio reads and writes the plain-text formats used to exchange
// fracture sets and link lists with other tools.
//
// A rectangle file holds one fracture per line as whitespace-separated
// numbers: nine for center, first side midpoint and second side midpoint,
// or six for a vertical fracture given by two opposite corners. A link file
// holds one pair of zero-based fracture indices per line. Blank lines and
// lines starting with '#' are ignored in both.
package fracio
