package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@fit.test", NormalizeEmail("  Jane@Fit.TEST "))
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		haystack, needle string
		want             bool
	}{
		{"Morning Yoga", "yoga", true},
		{"Morning Yoga", "YOGA", true},
		{"Morning Yoga", "", true},
		{"Morning Yoga", "pilates", false},
		{"HIIT (advanced)", "(adv", true},
		{"Ｙｏｇａ", "yoga", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContainsFold(tt.haystack, tt.needle), "%q in %q", tt.needle, tt.haystack)
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "cafe-crossfit", Slugify("Café  CrossFit"))
	assert.Equal(t, "monday", Slugify("Monday"))
	assert.Equal(t, "profile-photo-png", Slugify("profile photo.png"))
	assert.Equal(t, "", Slugify("   "))
}

func TestPaging(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 3, ParsePage("3"))

	assert.Equal(t, 0, TotalPages(0, 6))
	assert.Equal(t, 1, TotalPages(6, 6))
	assert.Equal(t, 2, TotalPages(10, 6))

	lo, hi := Window(10, 2, 6)
	assert.Equal(t, 6, lo)
	assert.Equal(t, 10, hi)

	lo, hi = Window(10, 5, 6)
	assert.Equal(t, lo, hi)
}

func TestPagingLargeValues(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"1537228672809129303", MaxPage},
		{"99999999999999999999999", MaxPage},
		{"-9999999999999999999999", 1},
		{" 7 ", 7},
		{"-3", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePage(tt.raw), tt.raw)
	}

	assert.Equal(t, 0, Offset(1, 6))
	assert.Equal(t, 6, Offset(2, 6))
	assert.Equal(t, (MaxPage-1)*6, Offset(1<<62, 6))
	assert.Equal(t, 0, Offset(-5, 6))
	assert.Equal(t, 0, Offset(3, 0))

	lo, hi := Window(10, 1<<62, 6)
	assert.Equal(t, 10, lo)
	assert.Equal(t, 10, hi)
}
