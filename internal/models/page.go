package models

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// PageParams holds normalized pagination parameters.
type PageParams struct {
	Page    int
	PerPage int
}

// NewPageParams normalizes raw page/per-page values: page is forced to at
// least 1, and per-page outside [1, MaxPerPage] falls back to DefaultPerPage.
func NewPageParams(page, perPage int) PageParams {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > MaxPerPage {
		perPage = DefaultPerPage
	}
	return PageParams{Page: page, PerPage: perPage}
}

// Offset returns the zero-based row offset for the page.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// TotalPages returns ceil(totalCount / perPage); zero rows yield zero pages.
func (p PageParams) TotalPages(totalCount int64) int {
	return int((totalCount + int64(p.PerPage) - 1) / int64(p.PerPage))
}
