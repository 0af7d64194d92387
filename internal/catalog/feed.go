package catalog

// Feed accumulates consecutive pages of a listing, the way an infinite-scroll
// view appends the next page when its end marker becomes visible.
// A Feed is not safe for concurrent use.
type Feed struct {
	items    []Item
	params   ViewParams
	filtered []Item
	loaded   int
	pages    int
}

// NewFeed validates params and loads the first page. params.Page is ignored.
func NewFeed(items []Item, params ViewParams) (*Feed, error) {
	f := &Feed{items: items}
	if err := f.Reset(params); err != nil {
		return nil, err
	}
	return f, nil
}

// Reset restarts the feed from the first page with new params.
func (f *Feed) Reset(params ViewParams) error {
	params.Page = 1
	if err := params.Validate(); err != nil {
		return err
	}
	f.params = params
	f.filtered = filterAndSort(f.items, params)
	f.pages = 0
	f.loaded = 0
	f.LoadMore()
	return nil
}

// LoadMore appends the next page and reports whether any item was added.
func (f *Feed) LoadMore() bool {
	if !f.HasMore() {
		return false
	}
	f.pages++
	f.loaded = min(f.pages*f.params.PageSize, len(f.filtered))
	return true
}

// HasMore reports whether another page can be loaded.
func (f *Feed) HasMore() bool {
	return f.loaded < len(f.filtered)
}

// Visible returns every loaded item in display order.
func (f *Feed) Visible() []Item {
	return f.filtered[:f.loaded:f.loaded]
}

// Pages returns how many pages have been loaded.
func (f *Feed) Pages() int {
	return f.pages
}

// Params returns the params the feed was last reset with.
func (f *Feed) Params() ViewParams {
	return f.params
}

// TotalItems returns the number of items matching the feed params.
func (f *Feed) TotalItems() int {
	return len(f.filtered)
}
