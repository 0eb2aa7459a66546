package services

import (
	"time"

	"tradepost/internal/domain"
)

// MonthBucket is one month of a seller's completed-order earnings.
type MonthBucket struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Label string  `json:"label"` // e.g. "March 2026"
	Total float64 `json:"total"`
}

// MonthlyEarnings buckets a seller's completed order lines by the calendar
// month of their last update, over the six months ending at now. All six
// buckets are emitted in chronological order; months with no completed
// orders stay at zero. Pure function over the snapshot it is given.
func MonthlyEarnings(now time.Time, lines []domain.OrderLine) []MonthBucket {
	type key struct{ y, m int }

	// Step from the first of the month: AddDate on a day-29..31 "now" would
	// normalize through nonexistent dates and skip or repeat months.
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	buckets := make([]MonthBucket, 0, 6)
	index := make(map[key]int, 6)
	for i := 5; i >= 0; i-- {
		t := base.AddDate(0, -i, 0)
		k := key{t.Year(), int(t.Month())}
		index[k] = len(buckets)
		buckets = append(buckets, MonthBucket{
			Year:  k.y,
			Month: k.m,
			Label: t.Month().String() + " " + t.Format("2006"),
		})
	}

	cutoff := base.AddDate(0, -5, 0) // start of the oldest bucket's month
	for _, l := range lines {
		if !l.IsCompleted() {
			continue
		}
		t, ok := parseStoredTime(l.UpdatedAt)
		if !ok || t.Before(cutoff) {
			continue
		}
		if i, ok := index[key{t.Year(), int(t.Month())}]; ok {
			buckets[i].Total += l.ItemPrice * float64(l.ItemQuantity)
		}
	}
	return buckets
}

// parseStoredTime accepts both formats that land in the timestamp columns:
// RFC3339 written by the repos and sqlite's CURRENT_TIMESTAMP default.
func parseStoredTime(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
