// Package service provides the implementation of catalog-related business logic.
package service

import (
	"context"
	"fmt"

	"github.com/abgdnv/storefront/internal/catalog"
	"github.com/abgdnv/storefront/internal/favorites"
	"github.com/abgdnv/storefront/internal/store"
)

// CatalogService defines the read operations of the storefront catalog.
type CatalogService interface {
	// List returns one page of the catalog for params, marking the items in favs.
	// Returns an error wrapping ErrInvalidConfig if params are invalid.
	List(ctx context.Context, params catalog.ViewParams, favs favorites.Set) (*ProductPageDto, error)

	// FindByID retrieves a single item by its unique identifier.
	// Returns ErrItemNotFound if no item exists with the given ID.
	FindByID(ctx context.Context, id int64) (*ProductDto, error)

	// Categories returns the category filter choices, starting with "All".
	Categories(ctx context.Context) ([]string, error)
}

// Service implements CatalogService on top of an ItemStore.
type Service struct {
	repository store.ItemStore
}

// NewService creates a new instance of CatalogService with the provided repository.
func NewService(repo store.ItemStore) *Service {
	return &Service{
		repository: repo,
	}
}

// ProductDto is the rendering-layer view of an item.
type ProductDto struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	Price      int64         `json:"price"`
	Categories []string      `json:"categories"`
	Rating     int           `json:"rating"`
	Stars      []bool        `json:"stars"`
	Image      catalog.Image `json:"image"`
	Favorite   bool          `json:"favorite"`
}

// ProductPageDto is one page of the listing plus the data needed to draw its pagination.
type ProductPageDto struct {
	Items       []ProductDto       `json:"items"`
	TotalPages  int                `json:"totalPages"`
	TotalItems  int                `json:"totalItems"`
	Page        int                `json:"page"`
	PageSize    int                `json:"pageSize"`
	PageNumbers []int              `json:"pageNumbers"`
	Params      catalog.ViewParams `json:"params"`
}

// List loads the catalog and processes it with params.
func (s *Service) List(ctx context.Context, params catalog.ViewParams, favs favorites.Set) (*ProductPageDto, error) {
	items, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}
	res, err := catalog.Process(items, params)
	if err != nil {
		return nil, err
	}

	return &ProductPageDto{
		Items:       Products(res.Items, favs),
		TotalPages:  res.TotalPages,
		TotalItems:  res.TotalItems,
		Page:        res.Page,
		PageSize:    res.PageSize,
		PageNumbers: catalog.PageNumbers(res.TotalPages),
		Params:      params,
	}, nil
}

// FindByID retrieves an item by its ID and returns it as a ProductDto.
func (s *Service) FindByID(ctx context.Context, id int64) (*ProductDto, error) {
	item, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch item by ID %d: %w", id, err)
	}
	return toDto(item, favorites.Set{}), nil
}

// Categories derives the category filter choices from the current catalog.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	items, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}
	return catalog.Categories(items), nil
}

// Products converts items into DTOs, marking the members of favs.
func Products(items []catalog.Item, favs favorites.Set) []ProductDto {
	dtos := make([]ProductDto, len(items))
	for i := range items {
		dtos[i] = *toDto(&items[i], favs)
	}
	return dtos
}

// Stars returns which of the rating stars are filled.
func Stars(rating int) []bool {
	stars := make([]bool, catalog.MaxRating)
	for i := range stars {
		stars[i] = i < rating
	}
	return stars
}

// toDto converts a catalog.Item to a ProductDto.
func toDto(item *catalog.Item, favs favorites.Set) *ProductDto {
	return &ProductDto{
		ID:         item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Categories: item.Categories,
		Rating:     item.Rating,
		Stars:      Stars(item.Rating),
		Image:      item.Thumbnail(),
		Favorite:   favs.Contains(item.ID),
	}
}
