// Command radixbench generates key fixtures and benchmarks the radix sorts
// against the standard library.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
