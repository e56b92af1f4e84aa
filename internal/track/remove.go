package track

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	removeUseConstant                     = "remove [path]"
	removeShortDescriptionConstant        = "Stop tracking a repository"
	removeLongDescriptionConstant         = "remove deletes the tracked entry whose stored path names the same physical location as the given path, or the current directory when omitted."
	removeExecutionErrorTemplateConstant  = "untracking repository failed: %w"
	workingDirectoryErrorTemplateConstant = "unable to determine current working directory: %w"
)

// RemoveCommandBuilder assembles the remove command.
type RemoveCommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Collaborators         ServiceCollaborators
}

// Build constructs the remove command.
func (builder *RemoveCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   removeUseConstant,
		Short: removeShortDescriptionConstant,
		Long:  removeLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *RemoveCommandBuilder) run(command *cobra.Command, arguments []string) error {
	trackerService, serviceError := resolveService(builder.LoggerProvider, builder.ConfigurationProvider, builder.Collaborators, command)
	if serviceError != nil {
		return serviceError
	}

	// Remove matches on raw path identity rather than re-deriving a
	// repository root, so the current directory default is resolved here.
	candidatePath := determineCandidatePath(arguments)
	if len(candidatePath) == 0 {
		workingDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return fmt.Errorf(workingDirectoryErrorTemplateConstant, workingDirectoryError)
		}
		candidatePath = workingDirectory
	}

	if removeError := trackerService.Remove(command.Context(), candidatePath); removeError != nil {
		return fmt.Errorf(removeExecutionErrorTemplateConstant, removeError)
	}

	return nil
}
