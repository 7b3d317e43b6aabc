package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the roster CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster - portfolio intake and profile records",
		Long: `Roster turns a submitted portfolio URL into a structured profile record
addressable by its /profile/<slug> path, and lets you read and edit it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewSubmitCommand())
	cmd.AddCommand(NewGetCommand())
	cmd.AddCommand(NewUpdateInfoCommand())
	cmd.AddCommand(NewEmployerCommand())

	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
