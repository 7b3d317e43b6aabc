package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	portfolioUC "github.com/rosterhq/roster/internal/application/usecase/portfolio"
	"github.com/rosterhq/roster/internal/domain/portfolio"
)

// NewEmployerCommand groups the employer subcommands.
func NewEmployerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employer",
		Short: "Manage the employers of a profile record",
	}
	cmd.AddCommand(NewEmployerUpsertCommand())
	cmd.AddCommand(NewEmployerDeleteCommand())
	return cmd
}

// EmployerUpsertOptions holds flags for the employer upsert command.
type EmployerUpsertOptions struct {
	ID             string
	Name           string
	JobTitle       string
	Duration       string
	EmploymentType string
	Contribution   string
	Videos         string
}

// NewEmployerUpsertCommand creates the employer upsert command.
func NewEmployerUpsertCommand() *cobra.Command {
	opts := &EmployerUpsertOptions{}

	cmd := &cobra.Command{
		Use:   "upsert <slug>",
		Short: "Add or update an employer on a profile record",
		Example: `  roster employer upsert sonu --name "Acme" --job-title "Editor" --employment-type CONTRACT \
    --videos '[{"title":"Reel","url":"https://example.com/v1","thumbnail":"https://example.com/t1.jpg"}]'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var videos []portfolio.Video
			if opts.Videos != "" {
				if err := json.Unmarshal([]byte(opts.Videos), &videos); err != nil {
					return fmt.Errorf("invalid --videos JSON: %w", err)
				}
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.upsertEmployer.Execute(cmd.Context(), portfolioUC.UpsertEmployerInput{
				ProfileURL: profileSlug(args[0]),
				Employer: portfolioUC.EmployerInput{
					ID:             opts.ID,
					Name:           opts.Name,
					JobTitle:       opts.JobTitle,
					Duration:       opts.Duration,
					EmploymentType: portfolio.EmploymentType(opts.EmploymentType),
					Contribution:   opts.Contribution,
					Videos:         videos,
				},
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, out.Portfolio)
		},
	}

	cmd.Flags().StringVar(&opts.ID, "id", "", "employer id (optional; keeps identity through a rename)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "employer name")
	cmd.Flags().StringVar(&opts.JobTitle, "job-title", "", "job title")
	cmd.Flags().StringVar(&opts.Duration, "duration", "", "employment duration, e.g. \"2022 - Present\"")
	cmd.Flags().StringVar(&opts.EmploymentType, "employment-type", string(portfolio.EmploymentFullTime), "FULL_TIME or CONTRACT")
	cmd.Flags().StringVar(&opts.Contribution, "contribution", "", "contribution description")
	cmd.Flags().StringVar(&opts.Videos, "videos", "", "videos as a JSON array")
	cmd.MarkFlagRequired("name")

	return cmd
}

// NewEmployerDeleteCommand creates the employer delete command.
func NewEmployerDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "delete <slug> <employer-id>",
		Short:         "Remove an employer from a profile record",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.deleteEmployer.Execute(cmd.Context(), portfolioUC.DeleteEmployerInput{
				ProfileURL: profileSlug(args[0]),
				EmployerID: args[1],
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, out.Portfolio)
		},
	}
}
