package registry_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kerstop/git-subscribe/internal/registry"
)

const (
	testStoreFileNameConstant          = "data.toml"
	testStoreNestedDirectoryConstant   = "git-subscribe"
	testFirstRepositoryPathConstant    = "/home/developer/projects/first"
	testSecondRepositoryPathConstant   = "/home/developer/projects/second"
	testUnparsableStoreContentConstant = "tracked_repos = \"not a list\"\n"
	testUnreadableFilePermissions      = os.FileMode(0o000)
	testRecentFetchUnixSecondsConstant = int64(1700000000)
)

func buildStorePath(testInstance *testing.T) string {
	testInstance.Helper()
	return filepath.Join(testInstance.TempDir(), testStoreFileNameConstant)
}

func TestNewTOMLRegistryStoreRequiresPath(testInstance *testing.T) {
	store, creationError := registry.NewTOMLRegistryStore("")
	require.Nil(testInstance, store)
	require.ErrorIs(testInstance, creationError, registry.ErrStorePathNotConfigured)
}

func TestTOMLRegistryStoreRoundTrip(testInstance *testing.T) {
	storePath := buildStorePath(testInstance)
	store, creationError := registry.NewTOMLRegistryStore(storePath)
	require.NoError(testInstance, creationError)

	savedRegistry := registry.Registry{
		TrackedRepositories: []registry.TrackedRepository{
			{Path: testFirstRepositoryPathConstant, LastFetch: registry.EpochFetchTime()},
			{Path: testSecondRepositoryPathConstant, LastFetch: time.Unix(testRecentFetchUnixSecondsConstant, 0).UTC()},
		},
	}

	require.NoError(testInstance, store.Save(savedRegistry))

	loadedRegistry, loadError := store.Load()
	require.NoError(testInstance, loadError)
	require.Len(testInstance, loadedRegistry.TrackedRepositories, len(savedRegistry.TrackedRepositories))

	for entryIndex, savedEntry := range savedRegistry.TrackedRepositories {
		loadedEntry := loadedRegistry.TrackedRepositories[entryIndex]
		require.Equal(testInstance, savedEntry.Path, loadedEntry.Path)
		require.True(testInstance, savedEntry.LastFetch.Equal(loadedEntry.LastFetch))
	}
}

func TestTOMLRegistryStoreLoadAbsentFileYieldsEmptyRegistry(testInstance *testing.T) {
	storePath := buildStorePath(testInstance)
	store, creationError := registry.NewTOMLRegistryStore(storePath)
	require.NoError(testInstance, creationError)

	loadedRegistry, loadError := store.Load()
	require.NoError(testInstance, loadError)
	require.Empty(testInstance, loadedRegistry.TrackedRepositories)

	_, statError := os.Stat(storePath)
	require.ErrorIs(testInstance, statError, os.ErrNotExist)
}

func TestTOMLRegistryStoreLoadReportsFormatError(testInstance *testing.T) {
	storePath := buildStorePath(testInstance)
	require.NoError(testInstance, os.WriteFile(storePath, []byte(testUnparsableStoreContentConstant), 0o644))

	store, creationError := registry.NewTOMLRegistryStore(storePath)
	require.NoError(testInstance, creationError)

	_, loadError := store.Load()
	require.ErrorIs(testInstance, loadError, registry.ErrStoreFormat)
}

func TestTOMLRegistryStoreLoadReportsPermissionError(testInstance *testing.T) {
	if os.Geteuid() == 0 {
		testInstance.Skip("permission bits are not enforced for root")
	}

	storePath := buildStorePath(testInstance)
	require.NoError(testInstance, os.WriteFile(storePath, []byte(""), testUnreadableFilePermissions))

	store, creationError := registry.NewTOMLRegistryStore(storePath)
	require.NoError(testInstance, creationError)

	_, loadError := store.Load()
	require.ErrorIs(testInstance, loadError, registry.ErrStorePermissionDenied)
}

func TestTOMLRegistryStoreSaveCreatesParentDirectory(testInstance *testing.T) {
	storePath := filepath.Join(testInstance.TempDir(), testStoreNestedDirectoryConstant, testStoreFileNameConstant)
	store, creationError := registry.NewTOMLRegistryStore(storePath)
	require.NoError(testInstance, creationError)

	require.NoError(testInstance, store.Save(registry.Registry{}))

	_, statError := os.Stat(storePath)
	require.NoError(testInstance, statError)
}

func TestTOMLRegistryStoreSaveOverwritesPreviousContents(testInstance *testing.T) {
	storePath := buildStorePath(testInstance)
	store, creationError := registry.NewTOMLRegistryStore(storePath)
	require.NoError(testInstance, creationError)

	populatedRegistry := registry.Registry{
		TrackedRepositories: []registry.TrackedRepository{
			{Path: testFirstRepositoryPathConstant, LastFetch: registry.EpochFetchTime()},
		},
	}
	require.NoError(testInstance, store.Save(populatedRegistry))
	require.NoError(testInstance, store.Save(registry.Registry{}))

	loadedRegistry, loadError := store.Load()
	require.NoError(testInstance, loadError)
	require.Empty(testInstance, loadedRegistry.TrackedRepositories)
}
