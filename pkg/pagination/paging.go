package pagination

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxPage keeps the offset (page-1)*limit far from overflowing.
	MaxPage = 100000
)

type Pager struct {
	page  int
	limit int
	total int64
}

type PageInfo struct {
	TotalRows   int64 `json:"total_rows"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	Limit       int   `json:"limit"`
} // @name pagination.PageInfo

func NewPager(page, limit int) *Pager {
	if page < 1 {
		page = DefaultPage
	}

	if page > MaxPage {
		page = MaxPage
	}

	if limit < 1 {
		limit = DefaultLimit
	}

	if limit > MaxLimit {
		limit = MaxLimit
	}

	return &Pager{page: page, limit: limit}
}

func (p *Pager) SetTotal(total int64) {
	p.total = total
}

// Do returns the offset and limit to apply to the query.
func (p *Pager) Do() (int, int) {
	return (p.page - 1) * p.limit, p.limit
}

func (p *Pager) PageInfo() PageInfo {
	return PageInfo{
		TotalRows:   p.total,
		TotalPages:  int(math.Ceil(float64(p.total) / float64(p.limit))),
		CurrentPage: p.page,
		Limit:       p.limit,
	}
}
