package cli

import (
	"errors"
	"fmt"
	"strconv"

	serrors "github.com/abgdnv/storefront/internal/errors"
	"github.com/abgdnv/storefront/internal/favorites"
	"github.com/spf13/cobra"
)

const defaultFavoritesDB = "favorites.db"

// FavoritesOptions holds options for the favorites commands.
type FavoritesOptions struct {
	DB    string
	Owner string
}

// NewFavoritesCommand creates the favorites command group.
func NewFavoritesCommand(root *RootOptions) *cobra.Command {
	opts := &FavoritesOptions{}

	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorite products",
	}
	cmd.PersistentFlags().StringVar(&opts.DB, "db", defaultFavoritesDB, "SQLite favorites file")
	cmd.PersistentFlags().StringVar(&opts.Owner, "owner", "", "Owner of the favorites")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favorite product ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadFavorites(cmd, root, opts.DB, opts.Owner)
			if err != nil {
				return err
			}
			if set.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render("No favorites yet."))
				return nil
			}
			for _, id := range set.IDs() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle ID",
		Short: "Add a product to the favorites, or remove it if present",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid product id: %s", args[0])
			}
			items, err := root.itemStore()
			if err != nil {
				return err
			}
			item, err := items.FindByID(cmd.Context(), id)
			if err != nil {
				if errors.Is(err, serrors.ErrItemNotFound) {
					return fmt.Errorf("product %d does not exist", id)
				}
				return err
			}

			kv, err := favorites.NewSQLiteStore(opts.DB)
			if err != nil {
				return err
			}
			defer kv.Close()
			_, favorite, err := favorites.NewService(kv, nil, root.logger(cmd)).Toggle(cmd.Context(), opts.Owner, id)
			if err != nil {
				return err
			}
			if favorite {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s added to favorites\n", heartStyle.Render("♥"), item.Name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s removed from favorites\n", item.Name)
			}
			return nil
		},
	})

	return cmd
}

// loadFavorites reads owner's favorites from the SQLite file at path. An empty path yields no favorites.
func loadFavorites(cmd *cobra.Command, root *RootOptions, path, owner string) (favorites.Set, error) {
	if path == "" {
		return favorites.NewSet(), nil
	}
	kv, err := favorites.NewSQLiteStore(path)
	if err != nil {
		return favorites.Set{}, err
	}
	defer kv.Close()
	return favorites.NewService(kv, nil, root.logger(cmd)).Get(cmd.Context(), owner)
}
