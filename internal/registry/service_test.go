package registry_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kerstop/git-subscribe/internal/registry"
)

const (
	testResolvedRepositoryRootConstant = "/home/developer/projects/resolved"
	testTrackedRepositoryPathConstant  = "/home/developer/projects/tracked"
	testUntrackedPathConstant          = "/home/developer/projects/untracked"
	testListCurrentUnixSecondsConstant = int64(1700000000)
	testElapsedEpochFragmentConstant   = "a long while ago"
	testElapsedHoursFragmentConstant   = "2 hours ago"
	testElapsedNowFragmentConstant     = "now"
	testRemoveMissFragmentConstant     = "there were no tracked repositories at"
	testListEntrySeparatorConstant     = " | "
)

type stubStore struct {
	currentRegistry registry.Registry
	loadError       error
	saveError       error
	savedRegistries []registry.Registry
}

func (store *stubStore) Load() (registry.Registry, error) {
	if store.loadError != nil {
		return registry.Registry{}, store.loadError
	}
	return store.currentRegistry, nil
}

func (store *stubStore) Save(currentRegistry registry.Registry) error {
	if store.saveError != nil {
		return store.saveError
	}
	store.savedRegistries = append(store.savedRegistries, currentRegistry)
	store.currentRegistry = currentRegistry
	return nil
}

type stubRootResolver struct {
	resolvedRoot  string
	resolveError  error
	recordedPaths []string
}

func (resolver *stubRootResolver) ResolveRepositoryRoot(executionContext context.Context, candidatePath string) (string, error) {
	resolver.recordedPaths = append(resolver.recordedPaths, candidatePath)
	return resolver.resolvedRoot, resolver.resolveError
}

type textualPathMatcher struct{}

func (textualPathMatcher) SameLocation(candidatePath string, trackedPath string) bool {
	return candidatePath == trackedPath
}

type fixedClock struct {
	currentTime time.Time
}

func (clock fixedClock) Now() time.Time {
	return clock.currentTime
}

func buildService(testInstance *testing.T, store *stubStore, resolver *stubRootResolver, output *bytes.Buffer) *registry.Service {
	testInstance.Helper()

	service, creationError := registry.NewService(registry.Dependencies{
		Store:    store,
		Resolver: resolver,
		Matcher:  textualPathMatcher{},
		Clock:    fixedClock{currentTime: time.Unix(testListCurrentUnixSecondsConstant, 0).UTC()},
		Output:   output,
	})
	require.NoError(testInstance, creationError)
	return service
}

func TestNewServiceValidatesCollaborators(testInstance *testing.T) {
	testCases := []struct {
		name          string
		dependencies  registry.Dependencies
		expectedError error
	}{
		{
			name:          "missing_store",
			dependencies:  registry.Dependencies{Resolver: &stubRootResolver{}, Matcher: textualPathMatcher{}},
			expectedError: registry.ErrStoreNotConfigured,
		},
		{
			name:          "missing_resolver",
			dependencies:  registry.Dependencies{Store: &stubStore{}, Matcher: textualPathMatcher{}},
			expectedError: registry.ErrResolverNotConfigured,
		},
		{
			name:          "missing_matcher",
			dependencies:  registry.Dependencies{Store: &stubStore{}, Resolver: &stubRootResolver{}},
			expectedError: registry.ErrMatcherNotConfigured,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			service, creationError := registry.NewService(testCase.dependencies)
			require.Nil(testInstance, service)
			require.ErrorIs(testInstance, creationError, testCase.expectedError)
		})
	}
}

func TestServiceAddAppendsResolvedRootWithEpochFetchTime(testInstance *testing.T) {
	store := &stubStore{}
	resolver := &stubRootResolver{resolvedRoot: testResolvedRepositoryRootConstant}
	output := &bytes.Buffer{}
	service := buildService(testInstance, store, resolver, output)

	require.NoError(testInstance, service.Add(context.Background(), testTrackedRepositoryPathConstant))

	require.Len(testInstance, store.savedRegistries, 1)
	savedEntries := store.savedRegistries[0].TrackedRepositories
	require.Len(testInstance, savedEntries, 1)
	require.Equal(testInstance, testResolvedRepositoryRootConstant, savedEntries[0].Path)
	require.True(testInstance, savedEntries[0].LastFetch.Equal(registry.EpochFetchTime()))
	require.Equal(testInstance, []string{testTrackedRepositoryPathConstant}, resolver.recordedPaths)
}

func TestServiceAddDoesNotDeduplicateRepeatedRepositories(testInstance *testing.T) {
	store := &stubStore{}
	resolver := &stubRootResolver{resolvedRoot: testResolvedRepositoryRootConstant}
	output := &bytes.Buffer{}
	service := buildService(testInstance, store, resolver, output)

	require.NoError(testInstance, service.Add(context.Background(), testTrackedRepositoryPathConstant))
	require.NoError(testInstance, service.Add(context.Background(), testTrackedRepositoryPathConstant))

	finalEntries := store.currentRegistry.TrackedRepositories
	require.Len(testInstance, finalEntries, 2)
	require.Equal(testInstance, finalEntries[0].Path, finalEntries[1].Path)
}

func TestServiceListFormatsElapsedDurations(testInstance *testing.T) {
	recentFetchTime := time.Unix(testListCurrentUnixSecondsConstant, 0).UTC().Add(-2 * time.Hour)
	store := &stubStore{
		currentRegistry: registry.Registry{
			TrackedRepositories: []registry.TrackedRepository{
				{Path: testTrackedRepositoryPathConstant, LastFetch: registry.EpochFetchTime()},
				{Path: testUntrackedPathConstant, LastFetch: recentFetchTime},
			},
		},
	}
	output := &bytes.Buffer{}
	service := buildService(testInstance, store, &stubRootResolver{}, output)

	require.NoError(testInstance, service.List(context.Background()))

	listOutput := output.String()
	require.Contains(testInstance, listOutput, testTrackedRepositoryPathConstant)
	require.Contains(testInstance, listOutput, testListEntrySeparatorConstant)
	require.Contains(testInstance, listOutput, testElapsedEpochFragmentConstant)
	require.Contains(testInstance, listOutput, testElapsedHoursFragmentConstant)
	require.Empty(testInstance, store.savedRegistries)
}

func TestServiceListClampsFutureFetchTimes(testInstance *testing.T) {
	futureFetchTime := time.Unix(testListCurrentUnixSecondsConstant, 0).UTC().Add(time.Hour)
	store := &stubStore{
		currentRegistry: registry.Registry{
			TrackedRepositories: []registry.TrackedRepository{
				{Path: testTrackedRepositoryPathConstant, LastFetch: futureFetchTime},
			},
		},
	}
	output := &bytes.Buffer{}
	service := buildService(testInstance, store, &stubRootResolver{}, output)

	require.NoError(testInstance, service.List(context.Background()))

	outputLines := strings.Split(strings.TrimRight(output.String(), "\n"), "\n")
	require.Len(testInstance, outputLines, 1)
	require.True(testInstance, strings.HasSuffix(outputLines[0], testElapsedNowFragmentConstant))
}

func TestServiceRemoveDeletesFirstMatchingEntry(testInstance *testing.T) {
	store := &stubStore{
		currentRegistry: registry.Registry{
			TrackedRepositories: []registry.TrackedRepository{
				{Path: testTrackedRepositoryPathConstant, LastFetch: registry.EpochFetchTime()},
				{Path: testTrackedRepositoryPathConstant, LastFetch: registry.EpochFetchTime()},
			},
		},
	}
	output := &bytes.Buffer{}
	service := buildService(testInstance, store, &stubRootResolver{}, output)

	require.NoError(testInstance, service.Remove(context.Background(), testTrackedRepositoryPathConstant))

	require.Len(testInstance, store.savedRegistries, 1)
	require.Len(testInstance, store.currentRegistry.TrackedRepositories, 1)
	require.Empty(testInstance, output.String())
}

func TestServiceRemoveMissReportsAndResaves(testInstance *testing.T) {
	store := &stubStore{
		currentRegistry: registry.Registry{
			TrackedRepositories: []registry.TrackedRepository{
				{Path: testTrackedRepositoryPathConstant, LastFetch: registry.EpochFetchTime()},
			},
		},
	}
	output := &bytes.Buffer{}
	service := buildService(testInstance, store, &stubRootResolver{}, output)

	require.NoError(testInstance, service.Remove(context.Background(), testUntrackedPathConstant))

	require.Len(testInstance, store.savedRegistries, 1)
	require.Len(testInstance, store.currentRegistry.TrackedRepositories, 1)
	require.Contains(testInstance, output.String(), fmt.Sprintf("%s %s", testRemoveMissFragmentConstant, testUntrackedPathConstant))
}

func TestServiceOperationsPropagateLoadFailures(testInstance *testing.T) {
	loadFailure := fmt.Errorf("load failure")
	store := &stubStore{loadError: loadFailure}
	output := &bytes.Buffer{}
	service := buildService(testInstance, store, &stubRootResolver{}, output)

	require.ErrorIs(testInstance, service.List(context.Background()), loadFailure)
	require.ErrorIs(testInstance, service.Add(context.Background(), testTrackedRepositoryPathConstant), loadFailure)
	require.ErrorIs(testInstance, service.Remove(context.Background(), testTrackedRepositoryPathConstant), loadFailure)
}
