package dto

// PageQuery holds common pagination query params.
type PageQuery struct {
	Page     int    `form:"page"`      // optional, defaults to 1
	PageSize int    `form:"page_size"` // optional, defaults to 10
	Search   string `form:"search"`    // optional keyword search
	Ordering string `form:"ordering"`  // optional sort field, "-" prefix for descending
}

// GetPage returns the page number, never below 1.
func (p *PageQuery) GetPage() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

// GetPageSize returns the page size, clamped to [1, 100].
func (p *PageQuery) GetPageSize() int {
	if p.PageSize < 1 {
		return 10
	}
	if p.PageSize > 100 {
		return 100
	}
	return p.PageSize
}

// GetOffset returns the row offset for the current page.
func (p *PageQuery) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}
