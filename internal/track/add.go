package track

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	addUseConstant                    = "add [path]"
	addShortDescriptionConstant       = "Start tracking a repository"
	addLongDescriptionConstant        = "add resolves the repository at the given path, or the current directory when omitted, and appends it to the tracked collection."
	addExecutionErrorTemplateConstant = "tracking repository failed: %w"
)

// AddCommandBuilder assembles the add command.
type AddCommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Collaborators         ServiceCollaborators
}

// Build constructs the add command.
func (builder *AddCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   addUseConstant,
		Short: addShortDescriptionConstant,
		Long:  addLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *AddCommandBuilder) run(command *cobra.Command, arguments []string) error {
	trackerService, serviceError := resolveService(builder.LoggerProvider, builder.ConfigurationProvider, builder.Collaborators, command)
	if serviceError != nil {
		return serviceError
	}

	candidatePath := determineCandidatePath(arguments)
	if addError := trackerService.Add(command.Context(), candidatePath); addError != nil {
		return fmt.Errorf(addExecutionErrorTemplateConstant, addError)
	}

	return nil
}
