// Package table implements the searchable, paginated results listing shown on
// the public results page. It works on an in-memory snapshot and holds no
// state beyond a single View.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bhagyamlottery/agency-backend/internal/utils"
)

// PageSizes are the selectable entries-per-page values
var PageSizes = []int{10, 25, 50, 100}

// DefaultPageSize is used when no valid page size is given
const DefaultPageSize = 10

// maxPageButtons bounds the numbered page links shown at once
const maxPageButtons = 5

// Entry is one result as the table sees it
type Entry struct {
	ID       string
	Name     string
	Code     string
	DrawDate string // YYYY-MM-DD
	Link     string
}

// Row is an entry placed on a page
type Row struct {
	Entry
	SerialNo int // 1-based position in the filtered list
}

// Title renders the "name-date (code)" label used in the listing
func (r Row) Title() string {
	return fmt.Sprintf("%s-%s (%s)", r.Name, r.DrawDate, r.Code)
}

// DisplayDate renders the draw date as DD-MM-YYYY
func (r Row) DisplayDate() string {
	return utils.DisplayDate(r.DrawDate)
}

// Filter returns the entries whose name, code or draw date contains search, ignoring case.
// An empty search matches everything.
func Filter(entries []Entry, search string) []Entry {
	needle := strings.ToLower(search)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), needle) ||
			strings.Contains(strings.ToLower(e.Code), needle) ||
			strings.Contains(strings.ToLower(e.DrawDate), needle) {
			out = append(out, e)
		}
	}
	return out
}

// TotalPages is ceil(count/pageSize)
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// PageWindow returns the numbered page links for current out of total.
// The window starts at page 1 until current passes 3 (with more than 5 pages),
// then starts at current-2; pages beyond total are left out.
func PageWindow(current, total int) []int {
	n := total
	if n > maxPageButtons {
		n = maxPageButtons
	}
	pages := make([]int, 0, n)
	for i := 0; i < n; i++ {
		page := i + 1
		if total > maxPageButtons && current > 3 {
			page = current - 2 + i
		}
		if page > total {
			break
		}
		pages = append(pages, page)
	}
	return pages
}

// ValidPageSize reports whether size is one of PageSizes
func ValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// ParsePageSize reads an entries value, falling back to DefaultPageSize
func ParsePageSize(value string) int {
	size, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || !ValidPageSize(size) {
		return DefaultPageSize
	}
	return size
}

// View is the state of one rendered table: the snapshot, the search term,
// the page size and the current page.
type View struct {
	entries  []Entry
	filtered []Entry
	search   string
	pageSize int
	page     int
}

// NewView creates a view on page 1 with no search and the default page size
func NewView(entries []Entry) *View {
	v := &View{
		entries:  entries,
		pageSize: DefaultPageSize,
		page:     1,
	}
	v.filtered = Filter(entries, "")
	return v
}

// SetSearch changes the search term and returns to page 1
func (v *View) SetSearch(search string) {
	v.search = search
	v.filtered = Filter(v.entries, search)
	v.page = 1
}

// SetPageSize changes the page size and returns to page 1. Unknown sizes become DefaultPageSize.
func (v *View) SetPageSize(size int) {
	if !ValidPageSize(size) {
		size = DefaultPageSize
	}
	v.pageSize = size
	v.page = 1
}

// SetPage moves to page, clamped to the available pages
func (v *View) SetPage(page int) {
	total := v.TotalPages()
	if page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}
	v.page = page
}

// Next moves forward one page if possible
func (v *View) Next() { v.SetPage(v.page + 1) }

// Prev moves back one page if possible
func (v *View) Prev() { v.SetPage(v.page - 1) }

// Search returns the current search term
func (v *View) Search() string { return v.search }

// PageSize returns the current page size
func (v *View) PageSize() int { return v.pageSize }

// CurrentPage returns the current 1-based page
func (v *View) CurrentPage() int { return v.page }

// FilteredCount is the number of entries matching the search
func (v *View) FilteredCount() int { return len(v.filtered) }

// TotalPages is the number of pages for the filtered entries
func (v *View) TotalPages() int { return TotalPages(len(v.filtered), v.pageSize) }

// Page is a rendered page of the view
type Page struct {
	Rows        []Row
	Search      string
	PageSize    int
	CurrentPage int
	TotalPages  int
	Start       int // 1-based index of the first row, 0 when empty
	End         int // 1-based index of the last row, 0 when empty
	Total       int // filtered count
	Buttons     []int
	HasPrev     bool
	HasNext     bool
}

// Empty reports the "no results" state
func (p Page) Empty() bool { return len(p.Rows) == 0 }

// Summary renders the "Showing S to E of C entries" line
func (p Page) Summary() string {
	return fmt.Sprintf("Showing %d to %d of %d entries", p.Start, p.End, p.Total)
}

// Page computes the rows and navigation for the current page
func (v *View) Page() Page {
	total := v.TotalPages()
	p := Page{
		Search:      v.search,
		PageSize:    v.pageSize,
		CurrentPage: v.page,
		TotalPages:  total,
		Total:       len(v.filtered),
		Buttons:     PageWindow(v.page, total),
		HasPrev:     v.page > 1,
		HasNext:     v.page < total,
	}

	start := (v.page - 1) * v.pageSize
	if start >= len(v.filtered) {
		return p
	}
	end := start + v.pageSize
	if end > len(v.filtered) {
		end = len(v.filtered)
	}

	p.Rows = make([]Row, 0, end-start)
	for i := start; i < end; i++ {
		p.Rows = append(p.Rows, Row{Entry: v.filtered[i], SerialNo: i + 1})
	}
	p.Start = start + 1
	p.End = end
	return p
}
