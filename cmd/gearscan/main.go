// Command gearscan analyzes engine schematics: it sums the numbers adjacent
// to a symbol and the gear ratios of '*' cells touching exactly two numbers.
//
//	gearscan analyze input.txt            # text summary
//	gearscan analyze -o json a.txt b.txt  # several files, JSON
//	gearscan render input.txt             # annotated, colored grid
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gearscan:", err)
		os.Exit(1)
	}
}
