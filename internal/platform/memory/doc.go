// Package memory provides process-memory implementations of the store
// interfaces. Data lives for the lifetime of the process only.
package memory
