package catalog

import (
	"fmt"

	serrors "github.com/abgdnv/storefront/internal/errors"
)

// SortKey selects the order of the filtered items.
type SortKey string

const (
	// SortFeatured keeps the source order.
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

const (
	DefaultPageSize = 6
	MaxRating       = 5
)

// ParseSortKey converts s into a SortKey, rejecting unknown values.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortFeatured, SortPriceAsc, SortPriceDesc:
		return k, nil
	default:
		return "", fmt.Errorf("%w: unknown sort key %q", serrors.ErrInvalidConfig, s)
	}
}

// ViewParams drive a single render of a listing.
type ViewParams struct {
	Category  string  `json:"category"`
	MinRating int     `json:"minRating"`
	Sort      SortKey `json:"sort"`
	Page      int     `json:"page"`
	PageSize  int     `json:"pageSize"`
}

// DefaultViewParams returns the parameters of a freshly opened listing.
func DefaultViewParams() ViewParams {
	return ViewParams{
		Category:  AllCategories,
		MinRating: 0,
		Sort:      SortFeatured,
		Page:      1,
		PageSize:  DefaultPageSize,
	}
}

// Validate reports the first contract violation as an error wrapping ErrInvalidConfig.
func (p ViewParams) Validate() error {
	if p.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive, got %d", serrors.ErrInvalidConfig, p.PageSize)
	}
	if p.Page < 1 {
		return fmt.Errorf("%w: page must be at least 1, got %d", serrors.ErrInvalidConfig, p.Page)
	}
	if p.MinRating < 0 || p.MinRating > MaxRating {
		return fmt.Errorf("%w: minimum rating must be within 0..%d, got %d", serrors.ErrInvalidConfig, MaxRating, p.MinRating)
	}
	if p.Category == "" {
		return fmt.Errorf("%w: category filter is empty", serrors.ErrInvalidConfig)
	}
	if _, err := ParseSortKey(string(p.Sort)); err != nil {
		return err
	}
	return nil
}
