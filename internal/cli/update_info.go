package cli

import (
	"github.com/spf13/cobra"

	portfolioUC "github.com/rosterhq/roster/internal/application/usecase/portfolio"
	"github.com/rosterhq/roster/internal/domain/portfolio"
)

// UpdateInfoOptions holds flags for the update-info command.
type UpdateInfoOptions struct {
	FirstName string
	LastName  string
	Summary   string
}

// NewUpdateInfoCommand creates the update-info command.
func NewUpdateInfoCommand() *cobra.Command {
	opts := &UpdateInfoOptions{}

	cmd := &cobra.Command{
		Use:   "update-info <slug>",
		Short: "Replace the basic info of a profile record",
		Example: `  roster update-info sonu --first-name Sonu --last-name Choudhary --summary "Video editor"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.updateBasicInfo.Execute(cmd.Context(), portfolioUC.UpdateBasicInfoInput{
				ProfileURL: profileSlug(args[0]),
				BasicInfo: portfolio.BasicInfo{
					FirstName: opts.FirstName,
					LastName:  opts.LastName,
					Summary:   opts.Summary,
				},
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, out.Portfolio)
		},
	}

	cmd.Flags().StringVar(&opts.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&opts.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&opts.Summary, "summary", "", "profile summary")

	return cmd
}
