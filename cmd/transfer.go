package cmd

import (
	"fmt"

	"github.com/lehigh-university-libraries/wardrobe/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the library to a .jsonl, .yaml or .parquet file",
		Example: `  wardrobe export closet.parquet
  wardrobe export closet.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib := a.store.Library()
			if err := export.Write(lib, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d items to %s\n", lib.Count(), args[0])
			return nil
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Append items from a .jsonl, .yaml or .parquet export",
		Long: `Appends every row of an export file to the library.

Rows are validated like added images; if any row has an unknown category or
an out-of-range size nothing is imported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := export.Read(args[0])
			if err != nil {
				return err
			}
			if err := a.store.AddItems(entries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items from %s\n", len(entries), args[0])
			return nil
		},
	}
}
