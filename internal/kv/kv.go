// Package kv provides the storage port for the punch clock: a flat,
// synchronous key-value store holding one value per named slot. The entry
// store keeps its whole collection under a single slot, so the port only
// needs get and set.
package kv

// Store reads and writes string values by slot key.
type Store interface {
	// Get returns the value stored under key. The second return is false
	// when the slot has never been written.
	Get(key string) (string, bool, error)
	// Set replaces the value stored under key.
	Set(key, value string) error
}
