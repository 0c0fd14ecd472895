// Package schema holds the in-memory description of the model classes to
// generate: a class name and an ordered list of typed fields.
//
// A ClassSpec is built once by a loader, handed to the generator and never
// mutated afterwards.
package schema
