// Package engine implements the byte-digit radix sort behind the radix package.
//
// The engine is split along the stages of a counting-sort pass:
//
//   - histogram.go builds per-position digit histograms in a single sweep
//   - pass.go turns one histogram into placement offsets and scatters elements stably
//   - driver.go walks the digit positions of fixed-width keys from least to most
//     significant, skipping positions where every key shares the same digit
//   - strings.go projects strings into byte views and walks positions from the last
//     byte back to the first, reading missing bytes as zero
//
// Every entry point assumes the caller already validated the range it operates on.
// Scratch memory is drawn from internal/pool and returned before the call ends.
package engine
