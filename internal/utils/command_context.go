package utils

import "context"

const (
	configurationFilePathContextKeyConstant = commandContextKey("configurationFilePath")
	storeFilePathContextKeyConstant         = commandContextKey("storeFilePath")
)

type commandContextKey string

// CommandContextAccessor manages values stored in command execution contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath attaches the configuration file path to the provided context.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFilePathContextKeyConstant, configurationFilePath)
}

// ConfigurationFilePath extracts the configuration file path from the provided context.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationFilePath, configurationFilePathAvailable := executionContext.Value(configurationFilePathContextKeyConstant).(string)
	if !configurationFilePathAvailable {
		return "", false
	}
	return configurationFilePath, true
}

// WithStoreFilePath attaches the resolved registry store file path to the provided context.
func (accessor CommandContextAccessor) WithStoreFilePath(parentContext context.Context, storeFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, storeFilePathContextKeyConstant, storeFilePath)
}

// StoreFilePath extracts the resolved registry store file path from the provided context.
func (accessor CommandContextAccessor) StoreFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	storeFilePath, storeFilePathAvailable := executionContext.Value(storeFilePathContextKeyConstant).(string)
	if !storeFilePathAvailable {
		return "", false
	}
	return storeFilePath, true
}
