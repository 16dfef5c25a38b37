// Package clonebench implements the clone benchmark generator.
//
// A Runner repeatedly clones the constellation of one vocabulary and, after
// every clone, prints the wall-clock seconds elapsed since the run started.
// The number of iterations and whether clones are kept alive until the end
// of the run are controlled by option tokens:
//
//	count=N   number of clones (default 10)
//	keep      retain every clone so memory usage can be inspected afterwards
//	help      print usage and make Generate a no-op
//
// The runner never looks inside the graph; it only needs a source exposing
// a constellation and a constellation exposing Clone.
package clonebench
