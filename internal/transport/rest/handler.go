// Package rest provides HTTP handlers for the storefront catalog, favorites and user directory.
package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/storefront/internal/catalog"
	"github.com/abgdnv/storefront/internal/directory"
	serrors "github.com/abgdnv/storefront/internal/errors"
	"github.com/abgdnv/storefront/internal/favorites"
	"github.com/abgdnv/storefront/internal/service"
	"github.com/abgdnv/storefront/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// FavoritesService is the part of favorites.Service the handlers depend on.
type FavoritesService interface {
	Get(ctx context.Context, owner string) (favorites.Set, error)
	Toggle(ctx context.Context, owner string, itemID int64) (favorites.Set, bool, error)
}

// DirectoryService is the part of directory.Service the handlers depend on.
type DirectoryService interface {
	Search(ctx context.Context, term string) (*directory.SearchResult, error)
}

type Handler struct {
	catalog   service.CatalogService
	favorites FavoritesService
	directory DirectoryService
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewHandler creates a new instance of Handler with the provided services.
func NewHandler(catalog service.CatalogService, favorites FavoritesService, directory DirectoryService, logger *slog.Logger) *Handler {
	return &Handler{
		catalog:   catalog,
		favorites: favorites,
		directory: directory,
		validate:  validator.New(),
		logger:    logger.With("component", "rest"),
	}
}

// listQuery holds the raw listing query parameters.
type listQuery struct {
	Category  string `validate:"required"`
	MinRating int    `validate:"gte=0,lte=5"`
	Sort      string `validate:"oneof=featured price-asc price-desc"`
	Page      int    `validate:"gte=1"`
	PageSize  int    `validate:"gte=1,lte=100"`
}

// FavoritesDto lists the favorite item ids of the caller.
type FavoritesDto struct {
	IDs []int64 `json:"ids"`
}

// ToggleDto reports the outcome of a favorite toggle.
type ToggleDto struct {
	ID       int64   `json:"id"`
	Favorite bool    `json:"favorite"`
	IDs      []int64 `json:"ids"`
}

// RegisterRoutes registers the HTTP routes for the storefront.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(web.OwnerExtractor)
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Get("/{id}", h.FindProduct)
		})
		r.Get("/categories", h.Categories)
		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", h.Favorites)
			r.Post("/{id}/toggle", h.ToggleFavorite)
		})
		r.Get("/users", h.SearchUsers)
	})

	r.Get("/healthz", h.HealthCheck)
}

// ListProducts returns one page of the catalog filtered, sorted and paginated by the query parameters.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	defaults := catalog.DefaultViewParams()
	query := listQuery{
		Category: web.QueryString(r, "category", defaults.Category),
		Sort:     web.QueryString(r, "sort", string(defaults.Sort)),
	}
	var ok bool
	if query.MinRating, ok = web.QueryInt(w, r, h.logger, "minRating", defaults.MinRating); !ok {
		return
	}
	if query.Page, ok = web.QueryInt(w, r, h.logger, "page", defaults.Page); !ok {
		return
	}
	if query.PageSize, ok = web.QueryInt(w, r, h.logger, "pageSize", defaults.PageSize); !ok {
		return
	}
	if err := h.validate.Struct(query); err != nil {
		if web.RespondValidation(w, r, h.logger, err) {
			return
		}
		h.logger.ErrorContext(r.Context(), "Error validating query", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid query")
		return
	}

	params := catalog.ViewParams{
		Category:  query.Category,
		MinRating: query.MinRating,
		Sort:      catalog.SortKey(query.Sort),
		Page:      query.Page,
		PageSize:  query.PageSize,
	}
	favs := h.ownerFavorites(r)
	h.logger.DebugContext(r.Context(), "Received request to list products", "params", params)
	page, err := h.catalog.List(r.Context(), params, favs)
	if err != nil {
		if errors.Is(err, serrors.ErrInvalidConfig) {
			h.logger.WarnContext(r.Context(), "Invalid view parameters", "error", err)
			web.RespondError(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(r.Context(), "Error listing products", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	h.logger.DebugContext(r.Context(), "Successfully listed products", "count", len(page.Items), "totalPages", page.TotalPages)
	web.RespondJSON(w, h.logger, http.StatusOK, page)
}

// FindProduct retrieves a product by its ID.
func (h *Handler) FindProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	found, err := h.catalog.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, serrors.ErrItemNotFound) {
			h.logger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondError(w, h.logger, http.StatusNotFound, fmt.Sprintf("Product with ID %d not found", id))
			return
		}
		h.logger.ErrorContext(r.Context(), "Error retrieving product", "ID", id, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve product with ID %d", id))
		return
	}
	found.Favorite = h.ownerFavorites(r).Contains(found.ID)
	web.RespondJSON(w, h.logger, http.StatusOK, found)
}

// Categories returns the category filter choices.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catalog.Categories(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error retrieving categories", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, cats)
}

// Favorites returns the favorite item ids of the caller.
func (h *Handler) Favorites(w http.ResponseWriter, r *http.Request) {
	set, err := h.favorites.Get(r.Context(), web.GetOwner(r.Context()))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error loading favorites", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to load favorites")
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, FavoritesDto{IDs: set.IDs()})
}

// ToggleFavorite adds the item to the caller's favorites, or removes it if already present.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	if _, err := h.catalog.FindByID(r.Context(), id); err != nil {
		if errors.Is(err, serrors.ErrItemNotFound) {
			h.logger.WarnContext(r.Context(), "Product not found for favorite toggle", "ID", id)
			web.RespondError(w, h.logger, http.StatusNotFound, fmt.Sprintf("Product with ID %d not found", id))
			return
		}
		h.logger.ErrorContext(r.Context(), "Error retrieving product", "ID", id, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to toggle favorite")
		return
	}

	set, favorite, err := h.favorites.Toggle(r.Context(), web.GetOwner(r.Context()), id)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error toggling favorite", "ID", id, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to toggle favorite")
		return
	}
	h.logger.InfoContext(r.Context(), "Favorite toggled", "ID", id, "favorite", favorite)
	web.RespondJSON(w, h.logger, http.StatusOK, ToggleDto{ID: id, Favorite: favorite, IDs: set.IDs()})
}

// SearchUsers filters the user directory by the q query parameter.
func (h *Handler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	term := web.QueryString(r, "q", "")
	res, err := h.directory.Search(r.Context(), term)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			h.logger.WarnContext(r.Context(), "User search cancelled", "error", err)
			web.RespondError(w, h.logger, http.StatusServiceUnavailable, "User search cancelled")
			return
		}
		h.logger.ErrorContext(r.Context(), "Error searching users", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to search users")
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, res)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ownerFavorites loads the caller's favorites; a failing store degrades to an empty set.
func (h *Handler) ownerFavorites(r *http.Request) favorites.Set {
	set, err := h.favorites.Get(r.Context(), web.GetOwner(r.Context()))
	if err != nil {
		h.logger.WarnContext(r.Context(), "Favorites unavailable, listing without them", "error", err)
		return favorites.NewSet()
	}
	return set
}
