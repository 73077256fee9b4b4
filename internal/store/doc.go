// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying storage mechanism from
// the application's core logic, so an in-memory implementation can be
// swapped for a durable one without changing the operation contracts.
package store
