package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lehigh-university-libraries/wardrobe/internal/wardrobe"
	"github.com/spf13/cobra"
)

var imageExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}

func newAddCmd(a *app) *cobra.Command {
	var categoryText string
	var sizeText string

	cmd := &cobra.Command{
		Use:   "add <image>",
		Short: "Add a clothing image to the library",
		Long: `Adds a .png, .jpg or .jpeg image to the library under a category with an AU size.

Category and size are prompted for when not given as flags. Sizes are
4-18 for Tops and Bottoms and 5-13 for Shoes.`,
		Example: `  # Prompt for category and size
  wardrobe add ~/Pictures/shirt.png

  # Non-interactive
  wardrobe add boots.jpg --category shoes --size 9`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveImage(args[0])
			if err != nil {
				return err
			}

			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

			if !cmd.Flags().Changed("category") {
				categoryText, err = p.ask(fmt.Sprintf("Enter category (%s): ", wardrobe.CategoryNames()))
				if err != nil {
					return fmt.Errorf("category is required: %w", err)
				}
			}
			category, err := wardrobe.ParseCategory(categoryText)
			if err != nil {
				return err
			}

			var size int
			if cmd.Flags().Changed("size") {
				size, err = wardrobe.ParseSize(category, sizeText)
				if err != nil {
					return err
				}
			} else {
				size, err = promptSize(cmd, p, category)
				if err != nil {
					return err
				}
			}

			if err := a.store.AddItem(category, wardrobe.NewItem(path, &size)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Image added to %s (Size AU %d)!\n", category, size)
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryText, "category", "c", "", "Category (Tops, Bottoms, Shoes)")
	cmd.Flags().StringVarP(&sizeText, "size", "s", "", "AU size")

	return cmd
}

// promptSize asks until a valid size is given or input runs out
func promptSize(cmd *cobra.Command, p *prompter, category wardrobe.Category) (int, error) {
	question := fmt.Sprintf("Enter AU size (%s): ", wardrobe.SizeRangeLabel(category))
	for {
		answer, err := p.ask(question)
		if err != nil {
			return 0, fmt.Errorf("size is required: %w", err)
		}

		size, err := wardrobe.ParseSize(category, answer)
		if err == nil {
			return size, nil
		}

		switch {
		case errors.Is(err, wardrobe.ErrSizeNotNumeric):
			fmt.Fprintln(cmd.ErrOrStderr(), "Invalid input. Please enter a number.")
		default:
			fmt.Fprintf(cmd.ErrOrStderr(), "Invalid size. Please enter a valid AU size (%s).\n", wardrobe.SizeRangeLabel(category))
		}
	}
}

// resolveImage checks the file is an existing supported image and returns
// its absolute path so the library works from any directory
func resolveImage(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("unsupported image type %q (supported: .png, .jpg, .jpeg)", ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("image not found: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve image path: %w", err)
	}
	return abs, nil
}
