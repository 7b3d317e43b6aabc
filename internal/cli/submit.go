package cli

import (
	"github.com/spf13/cobra"

	portfolioUC "github.com/rosterhq/roster/internal/application/usecase/portfolio"
)

// NewSubmitCommand creates the submit command.
func NewSubmitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <portfolio-url>",
		Short: "Submit a portfolio URL and create its profile record",
		Example: `  roster submit https://example.com/portfolio`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.submitPortfolio.Execute(cmd.Context(), portfolioUC.SubmitPortfolioInput{
				PortfolioURL: args[0],
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, out.Portfolio)
		},
	}
}
