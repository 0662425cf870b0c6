package utils

import (
	"errors"
	"strconv"
	"strings"
)

// MaxPage bounds page numbers so that offsets stay far below int32, the
// width Firestore uses for query offsets.
const MaxPage = 1_000_000

// ParsePage reads a 1-based page number. Anything unparsable or below 1 is
// page 1; anything above MaxPage is MaxPage.
func ParsePage(raw string) int {
	raw = strings.TrimSpace(raw)
	p, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		return MaxPage
	}
	if err != nil || p < 1 {
		return 1
	}
	return ClampPage(p)
}

// ClampPage forces page into [1, MaxPage].
func ClampPage(page int) int {
	switch {
	case page < 1:
		return 1
	case page > MaxPage:
		return MaxPage
	}
	return page
}

// Offset is the number of items before page.
func Offset(page, size int) int {
	if size <= 0 {
		return 0
	}
	return (ClampPage(page) - 1) * size
}

// TotalPages is ceil(total/size); zero when there is nothing to show.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Window returns the [lo, hi) bounds of page within a slice of n items.
func Window(n, page, size int) (int, int) {
	lo := Offset(page, size)
	if lo > n {
		lo = n
	}
	hi := lo + size
	if hi > n {
		hi = n
	}
	return lo, hi
}
