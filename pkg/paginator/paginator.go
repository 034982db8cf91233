package paginator

import "math"

// Adjust replaces out-of-range values with the defaults and caps Limit at MaxLimit.
func (p *PaginateQuery) Adjust() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}

	if p.Limit < 1 {
		p.Limit = DefaultLimit
	} else if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset is the number of rows before the current page. It saturates at
// math.MaxInt64 instead of wrapping for absurd page numbers.
func (p PaginateQuery) Offset() int64 {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	pages := int64(p.Page - 1)
	if pages > math.MaxInt64/p.Limit {
		return math.MaxInt64
	}
	return pages * p.Limit
}

// TotalPages is zero for an empty listing.
func (p Paginator) TotalPages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(p.PerPage)))
}

func (p Paginator) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages()
}

func (p Paginator) HasPreviousPage() bool {
	return p.CurrentPage > 1
}

// ToResponse adds the navigation fields.
func (p Paginator) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Paginator:  p,
		TotalPages: p.TotalPages(),
		HasNext:    p.HasNextPage(),
		HasPrev:    p.HasPreviousPage(),
	}
}

// Window returns the [start, end) bounds of the current page over a slice of total items.
// Call Adjust first.
func (p PaginateQuery) Window(total int) (start, end int) {
	if total <= 0 {
		return 0, 0
	}
	start = int(min(p.Offset(), int64(total)))
	end = start + int(min(max(p.Limit, 0), int64(total-start)))
	return start, end
}

// For builds the metadata of the current page over total items.
func (p PaginateQuery) For(total int64, count int) Paginator {
	return Paginator{
		Total:       total,
		Count:       int64(count),
		PerPage:     p.Limit,
		CurrentPage: p.Page,
	}
}
