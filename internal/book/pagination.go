package book

import (
	"math"
	"strconv"
)

// MaxOffset bounds offsets so offset+limit cannot overflow.
const MaxOffset = math.MaxInt32

// Page describes where a listing page sits within the matching titles.
type Page struct {
	Offset     int
	Limit      int
	Total      int
	PrevOffset int
	NextOffset int
	Beginning  bool
	End        bool
}

// Paginate computes the neighbouring offsets for a page. The previous offset
// never drops below zero and the next offset never exceeds total.
func Paginate(offset, limit, total int) Page {
	offset = min(max(offset, 0), MaxOffset)
	return Page{
		Offset:     offset,
		Limit:      limit,
		Total:      total,
		PrevOffset: max(0, offset-limit),
		NextOffset: min(total, offset+limit),
		Beginning:  offset == 0,
		End:        offset+limit >= total,
	}
}

// ParseOffset reads an offset query value. Missing, malformed or negative
// values yield 0; larger values are capped at MaxOffset.
func ParseOffset(raw string) int {
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0
	}
	return min(offset, MaxOffset)
}
