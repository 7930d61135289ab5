// Package bench runs the radixbench workloads: it builds inputs, times the
// radix sorts against the standard library, and checks both agree.
package bench
