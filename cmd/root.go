package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lehigh-university-libraries/wardrobe/internal/config"
	"github.com/lehigh-university-libraries/wardrobe/internal/storage"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags are parsed
type app struct {
	configPath  string
	libraryPath string
	verbose     bool

	cfg   *config.Config
	store *storage.LibraryStore
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "wardrobe",
		Short: "Personal clothing library and random outfit generator",
		Long: `Wardrobe keeps a library of clothing photos tagged by category (Tops, Bottoms,
Shoes) and AU size, and picks a random outfit with one item from each category.

The library is stored as JSON in library.json unless configured otherwise.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.libraryPath != "" {
				cfg.LibraryPath = a.libraryPath
			}
			a.cfg = cfg
			a.store = storage.Open(cfg.LibraryPath)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default wardrobe.yaml, or $WARDROBE_CONFIG)")
	cmd.PersistentFlags().StringVar(&a.libraryPath, "library", "", "Path to library JSON file (default library.json, or $WARDROBE_LIBRARY)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose logging")

	// Add subcommands
	cmd.AddCommand(newAddCmd(a))
	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newClearCmd(a))
	cmd.AddCommand(newGenerateCmd(a))
	cmd.AddCommand(newExportCmd(a))
	cmd.AddCommand(newImportCmd(a))
	cmd.AddCommand(newServeCmd(a))

	return cmd
}
