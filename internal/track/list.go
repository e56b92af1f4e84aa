package track

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	listUseConstant                    = "list"
	listShortDescriptionConstant       = "List tracked repositories"
	listLongDescriptionConstant        = "list prints every tracked repository together with the time elapsed since it was last fetched."
	listExecutionErrorTemplateConstant = "listing tracked repositories failed: %w"
)

// ListCommandBuilder assembles the list command.
type ListCommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Collaborators         ServiceCollaborators
}

// Build constructs the list command.
func (builder *ListCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   listUseConstant,
		Short: listShortDescriptionConstant,
		Long:  listLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *ListCommandBuilder) run(command *cobra.Command, arguments []string) error {
	trackerService, serviceError := resolveService(builder.LoggerProvider, builder.ConfigurationProvider, builder.Collaborators, command)
	if serviceError != nil {
		return serviceError
	}

	if listError := trackerService.List(command.Context()); listError != nil {
		return fmt.Errorf(listExecutionErrorTemplateConstant, listError)
	}

	return nil
}
