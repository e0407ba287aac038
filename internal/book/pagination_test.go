package book

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		total  int
		want   Page
	}{
		{
			name:   "first page of many",
			offset: 0,
			total:  15,
			want:   Page{Offset: 0, Limit: 10, Total: 15, PrevOffset: 0, NextOffset: 10, Beginning: true, End: false},
		},
		{
			name:   "last partial page",
			offset: 10,
			total:  15,
			want:   Page{Offset: 10, Limit: 10, Total: 15, PrevOffset: 0, NextOffset: 15, Beginning: false, End: true},
		},
		{
			name:   "exact boundary",
			offset: 10,
			total:  20,
			want:   Page{Offset: 10, Limit: 10, Total: 20, PrevOffset: 0, NextOffset: 20, Beginning: false, End: true},
		},
		{
			name:   "middle page",
			offset: 25,
			total:  100,
			want:   Page{Offset: 25, Limit: 10, Total: 100, PrevOffset: 15, NextOffset: 35, Beginning: false, End: false},
		},
		{
			name:   "no matches",
			offset: 0,
			total:  0,
			want:   Page{Offset: 0, Limit: 10, Total: 0, PrevOffset: 0, NextOffset: 0, Beginning: true, End: true},
		},
		{
			name:   "offset past total",
			offset: 50,
			total:  12,
			want:   Page{Offset: 50, Limit: 10, Total: 12, PrevOffset: 40, NextOffset: 12, Beginning: false, End: true},
		},
		{
			name:   "negative offset",
			offset: -5,
			total:  30,
			want:   Page{Offset: 0, Limit: 10, Total: 30, PrevOffset: 0, NextOffset: 10, Beginning: true, End: false},
		},
		{
			name:   "huge offset is capped",
			offset: math.MaxInt,
			total:  15,
			want:   Page{Offset: MaxOffset, Limit: 10, Total: 15, PrevOffset: MaxOffset - 10, NextOffset: 15, Beginning: false, End: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(tt.offset, PageSize, tt.total))
		})
	}
}

func TestPaginate_Invariants(t *testing.T) {
	for total := 0; total <= 45; total += 7 {
		for offset := 0; offset <= 60; offset++ {
			p := Paginate(offset, PageSize, total)
			assert.Equal(t, max(0, offset-PageSize), p.PrevOffset)
			assert.Equal(t, min(total, offset+PageSize), p.NextOffset)
			assert.Equal(t, offset == 0, p.Beginning)
			assert.Equal(t, offset+PageSize >= total, p.End)
		}
	}
}

func TestParseOffset(t *testing.T) {
	assert.Equal(t, 0, ParseOffset(""))
	assert.Equal(t, 0, ParseOffset("abc"))
	assert.Equal(t, 0, ParseOffset("-10"))
	assert.Equal(t, 0, ParseOffset("1.5"))
	assert.Equal(t, 30, ParseOffset("30"))
	assert.Equal(t, MaxOffset, ParseOffset("9223372036854775807"))

	p := Paginate(ParseOffset("9223372036854775807"), PageSize, 15)
	assert.Equal(t, 15, p.NextOffset)
	assert.True(t, p.End)
}
