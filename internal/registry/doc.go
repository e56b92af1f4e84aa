// Package registry owns the persisted collection of tracked repositories.
//
// It defines the TrackedRepository record, a TOML-backed store that reads and
// rewrites the collection as a single unit, physical path identity matching,
// and the Service implementing the list, add, and remove operations.
package registry
