package cmd

import (
	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

func priceCmd() *cobra.Command {
	var set, number string

	cmd := &cobra.Command{
		Use:   "price <name> [name...]",
		Short: "Look up market prices for cards",
		Long: "Resolves a Near Mint market price for each named card. --set and\n" +
			"--number narrow the match and apply to every name given.",
		Example: `  tct price "Lightning Bolt"
  tct price "Lightning Bolt" --set "Limited Edition Alpha" --number 161
  tct price Opt Ponder Preordain --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refs := make([]domain.CardReference, len(args))
			for i, name := range args {
				refs[i] = domain.CardReference{Name: name, SetName: set, CollectorNumber: number}
			}

			prices, err := newClient().Prices(cmd.Context(), refs)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), prices)
			}
			return printPriceTable(cmd.OutOrStdout(), prices)
		},
	}
	cmd.Flags().StringVar(&set, "set", "", "set name to match")
	cmd.Flags().StringVar(&number, "number", "", "collector number to match")

	return cmd
}
