package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shabadOnPage(page int, writer string) ShabadView {
	return ShabadView{
		Writer: writer,
		Lines:  []LineView{{PageNo: page}},
	}
}

func TestPaginateShabads_GroupsByFirstLinePage(t *testing.T) {
	// The second shabad starts on page 1 but runs onto page 2; its first
	// line decides its page.
	spillover := ShabadView{
		Writer: "b",
		Lines:  []LineView{{PageNo: 1}, {PageNo: 2}},
	}
	set := PaginateShabads([]ShabadView{
		shabadOnPage(1, "a"),
		spillover,
		shabadOnPage(2, "c"),
	})

	require.Len(t, set.Pages, 2)
	assert.Equal(t, 1, set.Pages[0].Number)
	require.Len(t, set.Pages[0].Shabads, 2)
	assert.Equal(t, "a", set.Pages[0].Shabads[0].Writer)
	assert.Equal(t, "b", set.Pages[0].Shabads[1].Writer)
	require.Len(t, set.Pages[1].Shabads, 1)
	assert.Equal(t, "c", set.Pages[1].Shabads[0].Writer)
}

func TestPaginateShabads_EveryShabadInExactlyOnePage(t *testing.T) {
	shabads := []ShabadView{
		shabadOnPage(3, "a"),
		shabadOnPage(7, "b"),
		shabadOnPage(3, "c"),
		shabadOnPage(42, "d"),
	}

	set := PaginateShabads(shabads)

	total := 0
	for _, page := range set.Pages {
		total += len(page.Shabads)
	}
	assert.Equal(t, len(shabads), total)
}

func TestPaginateShabads_WidthFromMaxPage(t *testing.T) {
	set := PaginateShabads([]ShabadView{
		shabadOnPage(3, "a"),
		shabadOnPage(42, "b"),
	})

	assert.Equal(t, 2, set.Width)
	assert.Equal(t, "03", set.Pages[0].Label)
	assert.Equal(t, "42", set.Pages[1].Label)
}

func TestPaginateShabads_ThreeDigitSpread(t *testing.T) {
	set := PaginateShabads([]ShabadView{
		shabadOnPage(1, "a"),
		shabadOnPage(120, "b"),
	})

	assert.Equal(t, 3, set.Width)
	assert.Equal(t, "001", set.Pages[0].Label)
	assert.Equal(t, "120", set.Pages[1].Label)
}

func TestPaginateShabads_PagesAscendRegardlessOfInputOrder(t *testing.T) {
	set := PaginateShabads([]ShabadView{
		shabadOnPage(9, "a"),
		shabadOnPage(2, "b"),
		shabadOnPage(5, "c"),
	})

	require.Len(t, set.Pages, 3)
	assert.Equal(t, []int{2, 5, 9}, []int{set.Pages[0].Number, set.Pages[1].Number, set.Pages[2].Number})
}

func TestPaginateShabads_SkipsShabadWithoutLines(t *testing.T) {
	set := PaginateShabads([]ShabadView{
		{Writer: "empty"},
		shabadOnPage(1, "a"),
	})

	require.Len(t, set.Pages, 1)
	require.Len(t, set.Pages[0].Shabads, 1)
	assert.Equal(t, "a", set.Pages[0].Shabads[0].Writer)
}

func TestPaginateShabads_NoShabads(t *testing.T) {
	set := PaginateShabads(nil)

	assert.Empty(t, set.Pages)
	assert.Equal(t, 1, set.Width)
}

func TestPageLabelWidth(t *testing.T) {
	tests := []struct {
		name     string
		maxPage  int
		expected int
	}{
		{name: "single digit", maxPage: 9, expected: 1},
		{name: "two digits", maxPage: 42, expected: 2},
		{name: "three digits", maxPage: 120, expected: 3},
		{name: "ang count of the granth", maxPage: 1430, expected: 4},
		{name: "zero falls back to one", maxPage: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PageLabelWidth(tt.maxPage))
		})
	}
}

func TestPageLabel(t *testing.T) {
	assert.Equal(t, "007", PageLabel(7, 3))
	assert.Equal(t, "1430", PageLabel(1430, 4))
}
