package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func collectionsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "collections",
		Aliases: []string{"col"},
		Short:   "Manage your collections",
		Long:    "List, inspect, price and delete the collections owned by --user.",
	}

	root.AddCommand(
		collectionsListCmd(),
		collectionsShowCmd(),
		collectionsCardsCmd(),
		collectionsPricesCmd(),
		collectionsDeleteCmd(),
	)

	return root
}

func collectionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your collections",
		Example: `  tct collections list --user 7d3c
  tct collections list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cols, err := newClient().ListCollections(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), cols)
			}
			if len(cols) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No collections found.")
				return nil
			}
			return printCollectionsTable(cmd.OutOrStdout(), cols)
		},
	}
}

func collectionsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show collection details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := newClient().GetCollection(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), col)
			}
			return printCollectionDetail(cmd.OutOrStdout(), col)
		},
	}
}

func collectionsCardsCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "cards <id>",
		Short: "List cards in a collection",
		Example: `  tct collections cards 6f1c2a4e-8b1d-4c3e-9a57-2f0d1e7b9c10
  tct collections cards 6f1c2a4e-8b1d-4c3e-9a57-2f0d1e7b9c10 --filter bolt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := newClient().ListCards(cmd.Context(), args[0], filter)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), cards)
			}
			if len(cards) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No cards found.")
				return nil
			}
			return printCardsTable(cmd.OutOrStdout(), cards)
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "case-insensitive card name filter")

	return cmd
}

func collectionsPricesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prices <id>",
		Short: "Price every card in a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient().CollectionPrices(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printCollectionPrices(cmd.OutOrStdout(), res)
		},
	}
}

func collectionsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a collection and its cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteCollection(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Collection %s deleted.\n", args[0])
			return nil
		},
	}
}
