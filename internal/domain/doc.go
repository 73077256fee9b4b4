// Package domain defines the core business entities and errors.
//
// Entities here carry no persistence or transport concerns beyond their JSON
// shape, which doubles as the public API representation.
package domain
