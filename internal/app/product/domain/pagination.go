package domain

import "time"

const (
	// DefaultPageSize is the catalog page size when none is configured.
	DefaultPageSize = 12
	// MaxPageSize bounds a single catalog page.
	MaxPageSize = 100

	// BoughtWindow is how long a purchase stays in the buyer's bought view
	// after the cart was validated.
	BoughtWindow = 7 * 24 * time.Hour
)

// NormalizePageSize clamps a requested page size into [1, MaxPageSize].
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// PagesCount returns ceil(total / pageSize); 0 when nothing matches.
func PagesCount(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}

// Offset returns the number of rows before page.
func Offset(page, pageSize int) int64 {
	return int64(normalizePage(page)-1) * int64(pageSize)
}

// BoughtSince returns the oldest cart date still inside the bought window:
// a purchase is visible while now < cartDate + BoughtWindow.
func BoughtSince(now time.Time) time.Time {
	return now.Add(-BoughtWindow)
}
