// Package cli implements the roulette command line.
//
// Commands:
//   - (none): spin once and print a human-readable demo
//   - spin: spin one or more times with a chosen format, seed and shape filter
//   - shapes: list the response catalog
//   - stats: spin many times and report observed rates
package cli
