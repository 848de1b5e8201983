package queries

import (
	"math"

	"shareit/internal/pkg/errs"
)

const DefaultPageSize = 10

var ErrInvalidPage = errs.NewBadRequest("from must be >= 0 and size must be > 0")

// Page is a zero-based page of fixed size.
type Page struct {
	Index int
	Size  int
}

// PageFromOffset converts a from/size pair to a page; from is rounded down to
// a page boundary.
func PageFromOffset(from, size int) (Page, error) {
	if from < 0 || size <= 0 {
		return Page{}, ErrInvalidPage
	}
	return Page{Index: from / size, Size: size}, nil
}

// Limit is the SQL LIMIT. Sizes beyond int32 are clamped; no table holds that many rows.
func (p Page) Limit() int32 {
	return clampInt32(int64(p.Size))
}

// Offset is the SQL OFFSET, clamped to int32. Callers check Beyond first.
func (p Page) Offset() int32 {
	return clampInt32(p.offset())
}

// Beyond reports whether the page starts past any offset the store can address.
// Such a page is empty.
func (p Page) Beyond() bool {
	return p.offset() > math.MaxInt32
}

// offset cannot overflow int64: Index*Size never exceeds the original from.
func (p Page) offset() int64 {
	return int64(p.Index) * int64(p.Size)
}

func clampInt32(v int64) int32 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	default:
		return int32(v)
	}
}
