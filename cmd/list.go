package cmd

import (
	"fmt"

	"github.com/lehigh-university-libraries/wardrobe/internal/wardrobe"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var categoryText string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the items stored in the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := wardrobe.Categories
			if categoryText != "" {
				c, err := wardrobe.ParseCategory(categoryText)
				if err != nil {
					return err
				}
				categories = []wardrobe.Category{c}
			}

			out := cmd.OutOrStdout()
			lib := a.store.Library()
			for _, c := range categories {
				items := lib[c]
				fmt.Fprintf(out, "%s (%d)\n", c, len(items))
				for _, item := range items {
					fmt.Fprintf(out, "  AU %-3s %s\n", item.SizeLabel(), item.Path)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryText, "category", "c", "", "Only list this category")

	return cmd
}
