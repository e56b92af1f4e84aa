package track

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	configurationStorePathKeyConstant = "store_path"
	configurationKeySeparatorConstant = "."
	applicationDirectoryNameConstant  = "git-subscribe"
	storeFileNameConstant             = "data.toml"
)

// CommandConfiguration captures tracker configuration shared by the list,
// add, and remove subcommands.
type CommandConfiguration struct {
	StorePath string `mapstructure:"store_path"`
}

// DefaultCommandConfiguration returns baseline configuration values for
// tracker commands.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{StorePath: DefaultStorePath()}
}

// DefaultConfigurationValues produces Viper defaults for tracker commands.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationStorePathKeyConstant: defaults.StorePath,
	}
}

// DefaultStorePath computes the platform-conventional per-user location of
// the registry store file. The value is derived once per invocation and
// threaded explicitly into the store.
func DefaultStorePath() string {
	return filepath.Join(xdg.DataHome, applicationDirectoryNameConstant, storeFileNameConstant)
}
