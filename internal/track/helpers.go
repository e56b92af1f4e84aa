package track

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kerstop/git-subscribe/internal/execshell"
	"github.com/kerstop/git-subscribe/internal/gitrepo"
	"github.com/kerstop/git-subscribe/internal/registry"
	pathutils "github.com/kerstop/git-subscribe/internal/utils/path"
)

var candidatePathHomeExpander = pathutils.NewHomeExpander()

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider yields tracker configuration resolved by the root command.
type ConfigurationProvider func() CommandConfiguration

// ServiceCollaborators captures injectable collaborators; unset fields are
// replaced by shell-backed and filesystem-backed defaults.
type ServiceCollaborators struct {
	Store        registry.Store
	RootResolver registry.RepositoryRootResolver
	PathMatcher  registry.PathMatcher
	Clock        registry.Clock
	GitExecutor  gitrepo.GitExecutor
}

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func resolveStorePath(provider ConfigurationProvider) string {
	if provider != nil {
		configuredPath := strings.TrimSpace(provider().StorePath)
		if len(configuredPath) > 0 {
			return candidatePathHomeExpander.Expand(configuredPath)
		}
	}
	return DefaultStorePath()
}

func resolveService(loggerProvider LoggerProvider, configurationProvider ConfigurationProvider, collaborators ServiceCollaborators, command *cobra.Command) (*registry.Service, error) {
	store := collaborators.Store
	if store == nil {
		registryStore, storeError := registry.NewTOMLRegistryStore(resolveStorePath(configurationProvider))
		if storeError != nil {
			return nil, storeError
		}
		store = registryStore
	}

	rootResolver := collaborators.RootResolver
	if rootResolver == nil {
		gitExecutor := collaborators.GitExecutor
		if gitExecutor == nil {
			shellExecutor, executorError := execshell.NewShellExecutor(resolveLogger(loggerProvider), execshell.NewOSCommandRunner())
			if executorError != nil {
				return nil, executorError
			}
			gitExecutor = shellExecutor
		}

		repositoryResolver, resolverError := gitrepo.NewRootResolver(gitExecutor)
		if resolverError != nil {
			return nil, resolverError
		}
		rootResolver = repositoryResolver
	}

	pathMatcher := collaborators.PathMatcher
	if pathMatcher == nil {
		pathMatcher = registry.NewPhysicalPathMatcher(nil)
	}

	return registry.NewService(registry.Dependencies{
		Store:    store,
		Resolver: rootResolver,
		Matcher:  pathMatcher,
		Clock:    collaborators.Clock,
		Output:   command.OutOrStdout(),
	})
}

func determineCandidatePath(arguments []string) string {
	if len(arguments) == 0 {
		return ""
	}

	trimmedCandidate := strings.TrimSpace(arguments[0])
	if len(trimmedCandidate) == 0 {
		return ""
	}

	return candidatePathHomeExpander.Expand(trimmedCandidate)
}
