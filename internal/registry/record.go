package registry

import "time"

// TrackedRepository records a repository working-directory root alongside the
// moment it was last fetched. LastFetch starts at the Unix epoch and no
// operation currently advances it; the field is reserved for a future fetch
// command.
type TrackedRepository struct {
	Path      string    `toml:"path"`
	LastFetch time.Time `toml:"last_fetch"`
}

// Registry holds the ordered collection of tracked repositories. The
// collection is loaded and persisted as a single unit; entries carry no
// identity beyond their position and path value.
type Registry struct {
	TrackedRepositories []TrackedRepository `toml:"tracked_repos"`
}

// EpochFetchTime returns the timestamp assigned to newly tracked repositories.
func EpochFetchTime() time.Time {
	return time.Unix(0, 0).UTC()
}
