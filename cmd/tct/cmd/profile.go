package cmd

import (
	"github.com/spf13/cobra"
)

func profileCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your public profile",
	}

	root.AddCommand(profileGetCmd(), profileSetCmd())
	return root
}

func profileGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := newClient().GetProfile(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			return printProfile(cmd.OutOrStdout(), p)
		},
	}
}

func profileSetCmd() *cobra.Command {
	var username, displayName string

	cmd := &cobra.Command{
		Use:     "set",
		Short:   "Set your username and display name",
		Example: `  tct profile set --username jace --display-name "Jace Beleren"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := newClient().UpdateProfile(cmd.Context(), username, displayName)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			return printProfile(cmd.OutOrStdout(), p)
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "public handle shown in search results")
	cmd.Flags().StringVar(&displayName, "display-name", "", "display name")

	return cmd
}
