package views

import (
	"net/url"
	"strconv"
)

// Pager describes one page of a client-side paginated list.
type Pager struct {
	Page  int
	Pages int
	Size  int
	Total int

	param string
	query url.Values
}

// Paginate clamps page into range. Lists never have fewer than one page.
func Paginate(total, page, size int, param string, query url.Values) Pager {
	if size < 1 {
		size = 1
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	return Pager{Page: page, Pages: pages, Size: size, Total: total, param: param, query: query}
}

// Bounds are the slice indexes of the current page.
func (pager Pager) Bounds() (int, int) {
	start := (pager.Page - 1) * pager.Size
	end := start + pager.Size
	if start > pager.Total {
		start = pager.Total
	}
	if end > pager.Total {
		end = pager.Total
	}
	return start, end
}

// Visible reports whether pagination controls are needed.
func (pager Pager) Visible() bool {
	return pager.Total > pager.Size
}

func (pager Pager) Numbers() []int {
	numbers := make([]int, pager.Pages)
	for index := range numbers {
		numbers[index] = index + 1
	}
	return numbers
}

func (pager Pager) HasPrev() bool { return pager.Page > 1 }

func (pager Pager) HasNext() bool { return pager.Page < pager.Pages }

// Href links to page number, keeping the other query parameters.
func (pager Pager) Href(number int) string {
	query := url.Values{}
	for key, values := range pager.query {
		query[key] = append([]string(nil), values...)
	}
	query.Set(pager.param, strconv.Itoa(number))
	return "?" + query.Encode()
}

// PageOf returns the items of the pager's current page.
func PageOf[T any](items []T, pager Pager) []T {
	start, end := pager.Bounds()
	if start >= len(items) {
		return nil
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
