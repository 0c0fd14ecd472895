// Package analyze reads class definitions from Go source.
//
// It uses golang.org/x/tools/go/packages with go/types to find exported
// struct types. Each struct becomes a class; its exported fields become
// class fields named by their json tags.
package analyze
