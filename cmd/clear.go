package cmd

import (
	"fmt"

	"github.com/lehigh-university-libraries/wardrobe/internal/wardrobe"
	"github.com/spf13/cobra"
)

func newClearCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear [category]",
		Short: "Remove every item, or every item in one category",
		Long: `Without an argument, removes all stored images from the library.
With a category, removes only that category's images.

The image files themselves are left on disk.`,
		Example: `  wardrobe clear
  wardrobe clear shoes --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			p := newPrompter(cmd.InOrStdin(), out)

			if len(args) == 0 {
				if !yes {
					ok, err := p.confirm("Are you sure you want to remove all stored images?")
					if err != nil || !ok {
						fmt.Fprintln(out, "Nothing removed.")
						return nil
					}
				}
				if err := a.store.ClearAll(); err != nil {
					return err
				}
				fmt.Fprintln(out, "All stored images have been removed!")
				return nil
			}

			category, err := wardrobe.ParseCategory(args[0])
			if err != nil {
				return err
			}

			// Report an empty category before asking anything
			items, err := a.store.Items(category)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintf(out, "No images stored in %s.\n", category)
				return nil
			}

			if !yes {
				ok, err := p.confirm(fmt.Sprintf("Are you sure you want to remove all images from %s?", category))
				if err != nil || !ok {
					fmt.Fprintln(out, "Nothing removed.")
					return nil
				}
			}

			cleared, err := a.store.ClearCategory(category)
			if err != nil {
				return err
			}
			if !cleared {
				fmt.Fprintf(out, "No images stored in %s.\n", category)
				return nil
			}
			fmt.Fprintf(out, "All images from %s have been removed!\n", category)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
