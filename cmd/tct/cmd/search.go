package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search every collection for a card",
		Long:  "Finds cards whose name contains the query across all users, grouped by card.",
		Example: `  tct search bolt
  tct search "black lotus" --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient().Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			if len(res.Groups) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No cards matching %q.\n", res.Query)
				return nil
			}
			return printSearchGroups(cmd.OutOrStdout(), res.Groups)
		},
	}
}
