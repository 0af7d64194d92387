package catalog

import (
	"cmp"
	"slices"
)

// ViewResult is the visible page of a listing plus pagination metadata.
type ViewResult struct {
	Items      []Item `json:"items"`
	TotalPages int    `json:"totalPages"`
	TotalItems int    `json:"totalItems"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
}

// Process filters, sorts and paginates items. The input slice is not modified.
//
// A page past the last one yields an empty Items slice; it is not an error.
// Invalid params are rejected with an error wrapping ErrInvalidConfig.
func Process(items []Item, params ViewParams) (ViewResult, error) {
	if err := params.Validate(); err != nil {
		return ViewResult{}, err
	}
	filtered := filterAndSort(items, params)
	return paginate(filtered, params.Page, params.PageSize), nil
}

// filterAndSort returns a new slice holding the matching items in display order.
func filterAndSort(items []Item, params ViewParams) []Item {
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if matches(item, params) {
			filtered = append(filtered, item)
		}
	}

	switch params.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(filtered, func(a, b Item) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(filtered, func(a, b Item) int { return cmp.Compare(b.Price, a.Price) })
	}
	return filtered
}

func matches(item Item, params ViewParams) bool {
	if params.Category != AllCategories && !item.HasCategory(params.Category) {
		return false
	}
	return item.Rating >= params.MinRating
}

func paginate(filtered []Item, page, pageSize int) ViewResult {
	total := len(filtered)
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	res := ViewResult{
		Items:      []Item{},
		TotalPages: pages,
		TotalItems: total,
		Page:       page,
		PageSize:   pageSize,
	}
	if page > res.TotalPages {
		return res
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	res.Items = filtered[start:end:end]
	return res
}

// PageNumbers lists the page buttons to render. A single page needs no buttons.
func PageNumbers(totalPages int) []int {
	if totalPages <= 1 {
		return []int{}
	}
	pages := make([]int, totalPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}
