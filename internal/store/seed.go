package store

import (
	"fmt"
	"slices"

	"github.com/abgdnv/storefront/internal/catalog"
)

const (
	SeedListing  = "listing"
	SeedExtended = "extended"
)

// Seed returns a copy of the named mock catalog.
func Seed(name string) ([]catalog.Item, error) {
	switch name {
	case SeedListing:
		return cloneItems(listingSeed), nil
	case SeedExtended:
		return cloneItems(extendedSeed), nil
	default:
		return nil, fmt.Errorf("unknown catalog seed %q", name)
	}
}

func cloneItems(items []catalog.Item) []catalog.Item {
	out := make([]catalog.Item, len(items))
	for i, item := range items {
		item.Categories = slices.Clone(item.Categories)
		out[i] = item
	}
	return out
}

const placeholder = "/placeholder.svg?height=200&width=200"

var listingSeed = []catalog.Item{
	{ID: 1, Name: "Classic White Sneakers", Price: 8999, Categories: []string{"Footwear"}, Rating: 4, Image: placeholder},
	{ID: 2, Name: "Leather Backpack", Price: 12999, Categories: []string{"Accessories"}, Rating: 5, Image: placeholder},
	{ID: 3, Name: "Denim Jacket", Price: 14999, Categories: []string{"Outerwear"}, Rating: 4, Image: placeholder},
	{ID: 4, Name: "Cotton T-Shirt", Price: 2499, Categories: []string{"Clothing"}, Rating: 3, Image: placeholder},
	{ID: 5, Name: "Running Shoes", Price: 11999, Categories: []string{"Footwear"}, Rating: 5, Image: placeholder},
	{ID: 6, Name: "Wool Scarf", Price: 3499, Categories: []string{"Accessories"}, Rating: 4, Image: placeholder},
}

// extendedSeed backs the infinite-scroll listing: three pages at the default page size.
var extendedSeed = []catalog.Item{
	{ID: 1, Name: "Classic White Sneakers", Price: 8999, Categories: []string{"Footwear"}, Rating: 4, Image: placeholder},
	{ID: 2, Name: "Leather Backpack", Price: 12999, Categories: []string{"Accessories"}, Rating: 5, Image: placeholder},
	{ID: 3, Name: "Denim Jacket", Price: 14999, Categories: []string{"Outerwear", "Clothing"}, Rating: 4, Image: placeholder},
	{ID: 4, Name: "Cotton T-Shirt", Price: 2499, Categories: []string{"Clothing"}, Rating: 3, Image: placeholder},
	{ID: 5, Name: "Running Shoes", Price: 11999, Categories: []string{"Footwear"}, Rating: 5, Image: placeholder},
	{ID: 6, Name: "Wool Scarf", Price: 3499, Categories: []string{"Accessories"}, Rating: 4, Image: placeholder},
	{ID: 7, Name: "Canvas Tote", Price: 2999, Categories: []string{"Accessories"}, Rating: 3, Image: placeholder},
	{ID: 8, Name: "Hiking Boots", Price: 15999, Categories: []string{"Footwear", "Outerwear"}, Rating: 5, Image: placeholder},
	{ID: 9, Name: "Rain Parka", Price: 18999, Categories: []string{"Outerwear"}, Rating: 4, Image: placeholder},
	{ID: 10, Name: "Linen Shirt", Price: 4999, Categories: []string{"Clothing"}, Rating: 4, Image: placeholder},
	{ID: 11, Name: "Leather Belt", Price: 3999, Categories: []string{"Accessories"}, Rating: 2, Image: placeholder},
	{ID: 12, Name: "Slip-On Loafers", Price: 9999, Categories: []string{"Footwear"}, Rating: 3, Image: placeholder},
	{ID: 13, Name: "Quilted Vest", Price: 8499, Categories: []string{"Outerwear", "Clothing"}, Rating: 4, Image: placeholder},
	{ID: 14, Name: "Chino Trousers", Price: 5999, Categories: []string{"Clothing"}, Rating: 5, Image: placeholder},
	{ID: 15, Name: "Aviator Sunglasses", Price: 7999, Categories: []string{"Accessories"}, Rating: 4, Image: placeholder},
	{ID: 16, Name: "Trail Sandals", Price: 6499, Categories: []string{"Footwear"}, Rating: 3, Image: placeholder},
	{ID: 17, Name: "Wool Overcoat", Price: 24999, Categories: []string{"Outerwear"}, Rating: 5, Image: placeholder},
	{ID: 18, Name: "Knit Beanie", Price: 1999, Categories: []string{"Accessories", "Clothing"}, Rating: 4, Image: placeholder},
}
