package cli

import (
	"encoding/json"
	"fmt"

	"github.com/abgdnv/storefront/internal/catalog"
	"github.com/abgdnv/storefront/internal/favorites"
	"github.com/abgdnv/storefront/internal/service"
	"github.com/spf13/cobra"
)

// ProductsOptions holds options for the products command.
type ProductsOptions struct {
	Category    string
	MinRating   int
	Sort        string
	Page        int
	PageSize    int
	Feed        bool
	MaxPages    int
	JSON        bool
	FavoritesDB string
	Owner       string
}

// NewProductsCommand creates the products command.
func NewProductsCommand(root *RootOptions) *cobra.Command {
	opts := &ProductsOptions{}
	defaults := catalog.DefaultViewParams()

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products",
		Long:  "List one page of products, or with --feed keep loading pages the way an infinite-scroll listing does.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProducts(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Category, "category", "c", defaults.Category, "Category to show")
	cmd.Flags().IntVarP(&opts.MinRating, "min-rating", "r", defaults.MinRating, "Minimum rating (0-5)")
	cmd.Flags().StringVarP(&opts.Sort, "sort", "s", string(defaults.Sort), "Sort order: featured, price-asc or price-desc")
	cmd.Flags().IntVarP(&opts.Page, "page", "p", defaults.Page, "Page to show")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", defaults.PageSize, "Products per page")
	cmd.Flags().BoolVar(&opts.Feed, "feed", false, "Load pages one after another until the listing is exhausted")
	cmd.Flags().IntVar(&opts.MaxPages, "max-pages", 0, "Stop the feed after this many pages (0 means no limit)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&opts.FavoritesDB, "favorites-db", "", "SQLite favorites file used to mark favorite products")
	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Owner whose favorites are marked")

	return cmd
}

func (o *ProductsOptions) params() (catalog.ViewParams, error) {
	sort, err := catalog.ParseSortKey(o.Sort)
	if err != nil {
		return catalog.ViewParams{}, err
	}
	params := catalog.ViewParams{
		Category:  o.Category,
		MinRating: o.MinRating,
		Sort:      sort,
		Page:      o.Page,
		PageSize:  o.PageSize,
	}
	return params, params.Validate()
}

func runProducts(cmd *cobra.Command, root *RootOptions, opts *ProductsOptions) error {
	params, err := opts.params()
	if err != nil {
		return err
	}
	items, err := root.itemStore()
	if err != nil {
		return err
	}
	favs, err := loadFavorites(cmd, root, opts.FavoritesDB, opts.Owner)
	if err != nil {
		return err
	}

	if opts.Feed {
		all, err := items.FindAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		return runFeed(cmd, all, params, favs, opts)
	}

	page, err := service.NewService(items).List(cmd.Context(), params, favs)
	if err != nil {
		return err
	}
	if opts.JSON {
		return writeJSON(cmd, page)
	}
	renderPage(cmd.OutOrStdout(), page)
	return nil
}

// runFeed prints every page of the feed as it is loaded.
func runFeed(cmd *cobra.Command, items []catalog.Item, params catalog.ViewParams, favs favorites.Set, opts *ProductsOptions) error {
	feed, err := catalog.NewFeed(items, params)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	shown := 0
	for {
		visible := feed.Visible()
		batch := service.Products(visible[shown:], favs)
		shown = len(visible)
		if !opts.JSON {
			renderHeader(out, fmt.Sprintf("Page %d", feed.Pages()))
			for _, p := range batch {
				renderProduct(out, p)
			}
		}
		if opts.MaxPages > 0 && feed.Pages() >= opts.MaxPages {
			break
		}
		if !feed.LoadMore() {
			break
		}
	}

	if opts.JSON {
		return writeJSON(cmd, map[string]any{
			"items":      service.Products(feed.Visible(), favs),
			"pages":      feed.Pages(),
			"totalItems": feed.TotalItems(),
			"hasMore":    feed.HasMore(),
		})
	}
	if feed.HasMore() {
		fmt.Fprintln(out, labelStyle.Render(fmt.Sprintf("Showing %d of %d products", len(feed.Visible()), feed.TotalItems())))
	} else {
		fmt.Fprintln(out, labelStyle.Render(fmt.Sprintf("End of listing, %d products", feed.TotalItems())))
	}
	return nil
}

// NewCategoriesCommand creates the categories command.
func NewCategoriesCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category filter choices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := root.itemStore()
			if err != nil {
				return err
			}
			cats, err := service.NewService(items).Categories(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range cats {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
