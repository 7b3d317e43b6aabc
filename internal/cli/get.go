package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	portfolioUC "github.com/rosterhq/roster/internal/application/usecase/portfolio"
	"github.com/rosterhq/roster/internal/domain/portfolio"
)

// profileSlug accepts both "sonu" and "/profile/sonu".
func profileSlug(arg string) string {
	if strings.HasPrefix(arg, portfolio.ProfilePathPrefix) {
		return arg
	}
	return portfolio.ProfilePathPrefix + arg
}

// NewGetCommand creates the get command.
func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <slug>",
		Short: "Fetch a profile record by its slug",
		Example: `  roster get sonu
  roster get /profile/sonu`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.getPortfolio.Execute(cmd.Context(), portfolioUC.GetPortfolioInput{
				ProfileURL: profileSlug(args[0]),
			})
			if err != nil {
				return err
			}
			if out.Portfolio == nil {
				return fmt.Errorf("no portfolio found for %s", profileSlug(args[0]))
			}
			return printJSON(cmd, out.Portfolio)
		},
	}
}
