// Package cli implements the catalogctl command line client.
package cli

import (
	"io"
	"log/slog"

	"github.com/abgdnv/storefront/internal/store"
	"github.com/spf13/cobra"
)

// RootOptions holds flags shared by every command.
type RootOptions struct {
	Seed    string
	Catalog string
	Verbose bool
}

// NewRootCommand creates the root command.
func NewRootCommand(version string) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "catalogctl",
		Short:         "catalogctl - browse the storefront catalog",
		Long:          "catalogctl filters, sorts and pages the storefront catalog, searches the user directory and manages favorites.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Seed, "seed", store.SeedListing, "Built-in catalog to browse (listing or extended)")
	cmd.PersistentFlags().StringVar(&opts.Catalog, "catalog", "", "YAML catalog file, overrides --seed")
	cmd.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "Log debug output to stderr")

	cmd.AddCommand(NewProductsCommand(opts))
	cmd.AddCommand(NewCategoriesCommand(opts))
	cmd.AddCommand(NewUsersCommand())
	cmd.AddCommand(NewFavoritesCommand(opts))

	return cmd
}

// itemStore opens the catalog selected by the root flags.
func (o *RootOptions) itemStore() (store.ItemStore, error) {
	if o.Catalog != "" {
		return store.NewYAMLStore(o.Catalog)
	}
	return store.NewSeededStore(o.Seed)
}

func (o *RootOptions) logger(cmd *cobra.Command) *slog.Logger {
	if !o.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}
