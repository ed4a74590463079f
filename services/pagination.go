package services

import (
	"strconv"
	"strings"

	"github.com/rpupo63/content-site-backend/errs"
)

const (
	// PerPage is the number of posts on one listing page
	PerPage = 9
	// LastPage asks for the final page of a listing, whatever its number
	LastPage = -1
)

// Pagination describes one page of a listing
type Pagination struct {
	Number      int   `json:"number"`
	PerPage     int   `json:"perPage"`
	Count       int64 `json:"count"`
	NumPages    int   `json:"numPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}

// ParsePageNumber reads the "page" query value. Empty means the first page and
// "last" means LastPage; anything that is not a positive integer is not found.
func ParsePageNumber(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "":
		return 1, nil
	case "last":
		return LastPage, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errs.NewNotFoundWithDetails("page", "invalid page number "+strconv.Quote(raw))
	}
	return n, nil
}

// paginate resolves number against count. When allowEmpty is false an empty
// listing or a page past the end is not found; otherwise a page past the end
// comes back with inRange false and the caller returns no posts.
func paginate(number int, count int64, perPage int, allowEmpty bool) (p Pagination, inRange bool, err error) {
	numPages := 0
	if count > 0 {
		numPages = int((count + int64(perPage) - 1) / int64(perPage))
	} else if allowEmpty {
		numPages = 1
	}

	if numPages == 0 {
		return Pagination{}, false, errs.NewNotFoundWithDetails("page", "empty listing")
	}
	if number == LastPage {
		number = numPages
	}
	if number < 1 {
		return Pagination{}, false, errs.NewNotFoundWithDetails("page", "page number is less than 1")
	}
	if number > numPages && !allowEmpty {
		return Pagination{}, false, errs.NewNotFoundWithDetails("page", "page "+strconv.Itoa(number)+" contains no results")
	}

	p = Pagination{
		Number:      number,
		PerPage:     perPage,
		Count:       count,
		NumPages:    numPages,
		HasNext:     number < numPages,
		HasPrevious: number > 1,
	}
	return p, number <= numPages, nil
}

func (p Pagination) offset() int {
	return (p.Number - 1) * p.PerPage
}
