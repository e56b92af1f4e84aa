package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	listEntryTemplateConstant            = "%-30s | %s\n"
	removeMissTemplateConstant           = "there were no tracked repositories at %s\n"
	elapsedPastLabelConstant             = "ago"
	elapsedFutureLabelConstant           = "from now"
	storeNotConfiguredMessageConstant    = "registry store not configured"
	resolverNotConfiguredMessageConstant = "repository root resolver not configured"
	matcherNotConfiguredMessageConstant  = "path matcher not configured"
)

// Service construction failures.
var (
	ErrStoreNotConfigured    = errors.New(storeNotConfiguredMessageConstant)
	ErrResolverNotConfigured = errors.New(resolverNotConfiguredMessageConstant)
	ErrMatcherNotConfigured  = errors.New(matcherNotConfiguredMessageConstant)
)

// Store persists the registry as a single unit.
type Store interface {
	Load() (Registry, error)
	Save(currentRegistry Registry) error
}

// RepositoryRootResolver resolves a filesystem path, or the current working
// directory when the path is empty, to a repository working-directory root.
type RepositoryRootResolver interface {
	ResolveRepositoryRoot(executionContext context.Context, candidatePath string) (string, error)
}

// PathMatcher reports whether two paths denote the same physical filesystem
// object.
type PathMatcher interface {
	SameLocation(candidatePath string, trackedPath string) bool
}

// Clock abstracts time acquisition for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time source.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Dependencies supplies the collaborators used by Service operations.
type Dependencies struct {
	Store    Store
	Resolver RepositoryRootResolver
	Matcher  PathMatcher
	Clock    Clock
	Output   io.Writer
}

// Service implements the list, add, and remove registry operations. Every
// operation loads the full registry, mutates it in memory where applicable,
// and rewrites the store in full. No locking guards concurrent invocations
// against the same store file; the last writer wins.
type Service struct {
	dependencies Dependencies
}

// NewService validates the required collaborators and constructs a Service.
// Clock and Output receive system defaults when omitted.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.Store == nil {
		return nil, ErrStoreNotConfigured
	}
	if dependencies.Resolver == nil {
		return nil, ErrResolverNotConfigured
	}
	if dependencies.Matcher == nil {
		return nil, ErrMatcherNotConfigured
	}
	if dependencies.Clock == nil {
		dependencies.Clock = SystemClock{}
	}
	if dependencies.Output == nil {
		dependencies.Output = os.Stdout
	}

	return &Service{dependencies: dependencies}, nil
}

// List writes one formatted line per tracked repository containing its path
// and the humanized duration elapsed since its last fetch. Timestamps in the
// future clamp to the current instant instead of producing a negative
// duration.
func (service *Service) List(executionContext context.Context) error {
	loadedRegistry, loadError := service.dependencies.Store.Load()
	if loadError != nil {
		return loadError
	}

	currentTime := service.dependencies.Clock.Now()
	for _, trackedRepository := range loadedRegistry.TrackedRepositories {
		effectiveFetchTime := trackedRepository.LastFetch
		if effectiveFetchTime.After(currentTime) {
			effectiveFetchTime = currentTime
		}

		elapsedDescription := humanize.RelTime(effectiveFetchTime, currentTime, elapsedPastLabelConstant, elapsedFutureLabelConstant)
		fmt.Fprintf(service.dependencies.Output, listEntryTemplateConstant, trackedRepository.Path, elapsedDescription)
	}

	return nil
}

// Add resolves candidatePath to a repository working-directory root, appends
// a new tracked entry with the epoch fetch time, and persists the registry.
// Duplicate entries for the same repository are not prevented.
func (service *Service) Add(executionContext context.Context, candidatePath string) error {
	loadedRegistry, loadError := service.dependencies.Store.Load()
	if loadError != nil {
		return loadError
	}

	resolvedRoot, resolveError := service.dependencies.Resolver.ResolveRepositoryRoot(executionContext, candidatePath)
	if resolveError != nil {
		return resolveError
	}

	loadedRegistry.TrackedRepositories = append(loadedRegistry.TrackedRepositories, TrackedRepository{
		Path:      resolvedRoot,
		LastFetch: EpochFetchTime(),
	})

	return service.dependencies.Store.Save(loadedRegistry)
}

// Remove deletes the first tracked entry whose stored path names the same
// physical location as candidatePath and persists the registry. A miss is
// reported as an informational message and the unchanged registry is still
// re-saved.
func (service *Service) Remove(executionContext context.Context, candidatePath string) error {
	loadedRegistry, loadError := service.dependencies.Store.Load()
	if loadError != nil {
		return loadError
	}

	matchedIndex := -1
	for entryIndex, trackedRepository := range loadedRegistry.TrackedRepositories {
		if service.dependencies.Matcher.SameLocation(candidatePath, trackedRepository.Path) {
			matchedIndex = entryIndex
			break
		}
	}

	if matchedIndex >= 0 {
		loadedRegistry.TrackedRepositories = append(
			loadedRegistry.TrackedRepositories[:matchedIndex],
			loadedRegistry.TrackedRepositories[matchedIndex+1:]...,
		)
	} else {
		fmt.Fprintf(service.dependencies.Output, removeMissTemplateConstant, candidatePath)
	}

	return service.dependencies.Store.Save(loadedRegistry)
}
