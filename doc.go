// Package gearscan finds part numbers and gear ratios in engine schematics:
// character grids of digit runs, empty cells ('.') and symbols.
//
// 🚀 What is gearscan?
//
//	A small, dependency-light pipeline that:
//		• Parses a rectangular schematic with bounds-checked lookups
//		• Scans every maximal digit run into a positioned token
//		• Walks each token's perimeter, diagonals included
//		• Marks tokens touching any symbol as target parts
//		• Resolves '*' cells touching exactly two tokens into gear ratios
//
// Under the hood, everything is organized under small subpackages:
//
//	schematic/ — immutable grid, Coord, construction errors
//	token/     — digit-run scanner
//	neighbor/  — perimeter enumeration (pure geometry)
//	classify/  — character predicates
//	adjacency/ — target-part decision and gear-candidate state machine
//	report/    — part sum and gear-ratio sum
//	engine/    — one-call pipeline with zap logging
//	render/    — colored terminal rendering
//	config/    — YAML configuration of the CLI
//
// Quick ASCII example:
//
//	467..114..
//	...*......
//	..35..633.
//
// 467 and 35 both touch the '*', so it is a gear of ratio 467×35 = 16345.
// 114 touches no symbol and is not a part.
//
//	go install github.com/katalvlaran/gearscan/cmd/gearscan@latest
package gearscan
