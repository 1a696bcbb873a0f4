package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a CSV export as a new collection",
		Long: "Uploads a Manabox or Moxfield style CSV export. The collection is\n" +
			"named after the file unless --name is given.",
		Example: `  tct import ~/Downloads/manabox.csv
  tct import cube.csv --name "Vintage Cube"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path) //nolint:gosec // user-supplied path is the point
			if err != nil {
				return fmt.Errorf("opening %s: %w", path, err)
			}
			defer f.Close()

			if name == "" {
				name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}

			res, err := newClient().Import(cmd.Context(), name, f)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %q (%s): %d cards, %d rows skipped.\n",
				res.Collection.Name, res.Collection.ID, res.Report.Parsed, res.Report.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "collection name (default: file name)")

	return cmd
}
