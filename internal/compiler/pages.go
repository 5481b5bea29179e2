package compiler

import (
	"fmt"
	"sort"
	"strconv"
)

// Page is one page group of shabads within a source.
type Page struct {
	Number  int
	Label   string
	Shabads []ShabadView
}

// PageSet is one source's shabads grouped by page, ascending, with labels
// zero-padded to the width of the highest page number.
type PageSet struct {
	Width int
	Pages []Page
}

// PaginateShabads groups a source's compiled shabads by the page of each
// shabad's first line. Shabad order within a page is preserved from the
// input, which arrives in sequence order. Every shabad with at least one
// line lands in exactly one page group.
func PaginateShabads(shabads []ShabadView) PageSet {
	byNumber := make(map[int]*Page)
	pages := make([]*Page, 0)
	maxPage := 0

	for _, shabad := range shabads {
		if len(shabad.Lines) == 0 {
			continue
		}
		number := shabad.Lines[0].PageNo
		page, ok := byNumber[number]
		if !ok {
			page = &Page{Number: number}
			byNumber[number] = page
			pages = append(pages, page)
		}
		page.Shabads = append(page.Shabads, shabad)
		if number > maxPage {
			maxPage = number
		}
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Number < pages[j].Number })

	width := PageLabelWidth(maxPage)
	set := PageSet{Width: width, Pages: make([]Page, 0, len(pages))}
	for _, page := range pages {
		page.Label = PageLabel(page.Number, width)
		set.Pages = append(set.Pages, *page)
	}
	return set
}

// PageLabelWidth is the digit count of the highest page number.
func PageLabelWidth(maxPage int) int {
	if maxPage < 1 {
		return 1
	}
	return len(strconv.Itoa(maxPage))
}

// PageLabel zero-pads a page number to the given width.
func PageLabel(page, width int) string {
	return fmt.Sprintf("%0*d", width, page)
}
