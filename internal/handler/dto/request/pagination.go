package request

import "shareit/internal/usecase/queries"

type Pagination struct {
	From *int `form:"from"`
	Size *int `form:"size"`
}

// Page applies defaults and converts the offset window to a page.
func (p Pagination) Page(defaultSize int) (queries.Page, error) {
	from := 0
	if p.From != nil {
		from = *p.From
	}
	size := defaultSize
	if size <= 0 {
		size = queries.DefaultPageSize
	}
	if p.Size != nil {
		size = *p.Size
	}
	return queries.PageFromOffset(from, size)
}
