package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kerstop/git-subscribe/internal/execshell"
)

const (
	gitRevParseSubcommandConstant        = "rev-parse"
	gitAbsoluteGitDirFlagConstant        = "--absolute-git-dir"
	gitMetadataDirectoryNameConstant     = ".git"
	notRepositoryMessageConstant         = "not a git repository"
	executorNotConfiguredMessageConstant = "git executor not configured"
	notRepositoryErrorTemplateConstant   = "%w: %s"
	resolveErrorTemplateConstant         = "unable to resolve repository at %s: %w"
	emptyResolutionTemplateConstant      = "git rev-parse produced no output for %s"
	currentDirectoryLabelConstant        = "current directory"
)

// Resolution failures surfaced by the root resolver.
var (
	ErrNotRepository         = errors.New(notRepositoryMessageConstant)
	ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)
)

// GitExecutor exposes the subset of shell execution used to resolve repositories.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RootResolver resolves filesystem paths to repository working-directory roots.
type RootResolver struct {
	gitExecutor GitExecutor
}

// NewRootResolver constructs a RootResolver around the provided executor.
func NewRootResolver(gitExecutor GitExecutor) (*RootResolver, error) {
	if gitExecutor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &RootResolver{gitExecutor: gitExecutor}, nil
}

// ResolveRepositoryRoot resolves candidatePath, or the current working
// directory when candidatePath is empty, to the repository working-directory
// root. The metadata directory reported by rev-parse is trimmed of a trailing
// .git segment so the returned path names the working tree rather than the
// repository bookkeeping directory.
func (resolver *RootResolver) ResolveRepositoryRoot(executionContext context.Context, candidatePath string) (string, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitAbsoluteGitDirFlagConstant},
		WorkingDirectory: candidatePath,
	}

	executionResult, executionError := resolver.gitExecutor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		commandFailure := execshell.CommandFailedError{}
		if errors.As(executionError, &commandFailure) {
			return "", fmt.Errorf(notRepositoryErrorTemplateConstant, ErrNotRepository, describeLocation(candidatePath))
		}
		return "", fmt.Errorf(resolveErrorTemplateConstant, describeLocation(candidatePath), executionError)
	}

	metadataDirectory := strings.TrimSpace(executionResult.StandardOutput)
	if len(metadataDirectory) == 0 {
		return "", fmt.Errorf(emptyResolutionTemplateConstant, describeLocation(candidatePath))
	}

	if filepath.Base(metadataDirectory) == gitMetadataDirectoryNameConstant {
		return filepath.Dir(metadataDirectory), nil
	}

	return metadataDirectory, nil
}

func describeLocation(candidatePath string) string {
	if len(strings.TrimSpace(candidatePath)) == 0 {
		return currentDirectoryLabelConstant
	}
	return candidatePath
}
