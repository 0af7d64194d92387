package cli

import (
	"fmt"
	"time"

	"github.com/abgdnv/storefront/internal/directory"
	"github.com/spf13/cobra"
)

// NewUsersCommand creates the users command.
func NewUsersCommand() *cobra.Command {
	var (
		latency time.Duration
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "users [TERM]",
		Short: "Search the user directory",
		Long:  "List the users whose name contains TERM, ignoring case. Without TERM every user is listed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := ""
			if len(args) == 1 {
				term = args[0]
			}
			svc := directory.NewService(directory.NewMemorySource(directory.MockUsers(), latency))
			res, err := svc.Search(cmd.Context(), term)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, res)
			}
			out := cmd.OutOrStdout()
			for _, u := range res.Users {
				fmt.Fprintf(out, "[%s] %s\n", nameStyle.Render(u.Initial()), u.Name)
			}
			fmt.Fprintln(out, labelStyle.Render(res.Label))
			return nil
		},
	}

	cmd.Flags().DurationVar(&latency, "latency", 0, "Simulated directory latency")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
