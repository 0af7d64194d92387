// Package catalog turns a fixed collection of items and a set of view parameters
// into the visible page of a storefront listing.
package catalog

import "slices"

// AllCategories disables category filtering.
const AllCategories = "All"

const (
	PlaceholderImage = "/placeholder.svg"
	thumbnailSize    = 200
)

// Item is a product record. Items are treated as immutable once loaded.
type Item struct {
	ID         int64    `json:"id"         yaml:"id"         validate:"required,gt=0"`
	Name       string   `json:"name"       yaml:"name"       validate:"required,max=100"`
	Price      int64    `json:"price"      yaml:"price"      validate:"gte=0"` // Price in cents
	Categories []string `json:"categories" yaml:"categories" validate:"required,min=1,dive,required"`
	Rating     int      `json:"rating"     yaml:"rating"     validate:"gte=0,lte=5"`
	Image      string   `json:"image"      yaml:"image"`
}

// HasCategory reports whether label is one of the item's categories.
func (i Item) HasCategory(label string) bool {
	return slices.Contains(i.Categories, label)
}

// Image describes how an item picture is displayed.
type Image struct {
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Thumbnail returns the card image of the item, using the placeholder when the item has none.
func (i Item) Thumbnail() Image {
	src := i.Image
	if src == "" {
		src = PlaceholderImage
	}
	return Image{Src: src, Alt: i.Name, Width: thumbnailSize, Height: thumbnailSize}
}

// Categories lists AllCategories followed by every label of items in order of first appearance.
func Categories(items []Item) []string {
	seen := make(map[string]struct{})
	out := []string{AllCategories}
	for _, item := range items {
		for _, label := range item.Categories {
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			out = append(out, label)
		}
	}
	return out
}
