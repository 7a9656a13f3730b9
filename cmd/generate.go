package cmd

import (
	"fmt"
	"log/slog"

	"github.com/lehigh-university-libraries/wardrobe/internal/outfit"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var renderPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Pick a random outfit with one item per category",
		Long: `Picks one random item from each of Tops, Bottoms and Shoes.

Fails naming the first empty category when any category has no items.
With --render the outfit is also drawn as a single image, items stacked
top to bottom with their AU size below each.`,
		Example: `  wardrobe generate
  wardrobe generate --render outfit.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := outfit.Generate(a.store.Library())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, sel := range o.Items() {
				fmt.Fprintf(out, "%-8s %s (AU Size: %s)\n", sel.Category, sel.Item.Path, sel.Item.SizeLabel())
			}

			if renderPath != "" {
				if err := a.cfg.Renderer().RenderToFile(o, renderPath); err != nil {
					return err
				}
				slog.Info("Outfit rendered", "path", renderPath)
				fmt.Fprintf(out, "Outfit saved to %s\n", renderPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&renderPath, "render", "r", "", "Also draw the outfit to this image file (.png or .jpg)")

	return cmd
}
