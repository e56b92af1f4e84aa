package track_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kerstop/git-subscribe/internal/track"
)

const (
	testConfigurationRootKeyConstant = "tracker"
	testStorePathKeyConstant         = "tracker.store_path"
	testStoreFileNameConstant        = "data.toml"
	testApplicationDirectoryConstant = "git-subscribe"
)

func TestDefaultStorePathUsesApplicationDataDirectory(testInstance *testing.T) {
	defaultPath := track.DefaultStorePath()

	require.True(testInstance, filepath.IsAbs(defaultPath))
	require.Equal(testInstance, testStoreFileNameConstant, filepath.Base(defaultPath))
	require.Equal(testInstance, testApplicationDirectoryConstant, filepath.Base(filepath.Dir(defaultPath)))
}

func TestDefaultConfigurationValuesExposeStorePath(testInstance *testing.T) {
	configurationValues := track.DefaultConfigurationValues(testConfigurationRootKeyConstant)

	require.Len(testInstance, configurationValues, 1)
	require.Equal(testInstance, track.DefaultStorePath(), configurationValues[testStorePathKeyConstant])
}

func TestDefaultCommandConfigurationMatchesDefaultStorePath(testInstance *testing.T) {
	configuration := track.DefaultCommandConfiguration()

	require.Equal(testInstance, track.DefaultStorePath(), configuration.StorePath)
}
