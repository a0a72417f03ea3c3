package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used on the wire and in month buckets.
const DateLayout = "2006-01-02"

// MonthLayout is the "YYYY-MM" bucket format accepted by date filters.
const MonthLayout = "2006-01"

// Timestamps holds the audit times every owned record carries.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonthRange converts a "YYYY-MM" bucket into the half-open interval
// [first day of month, first day of next month).
func MonthRange(bucket string) (time.Time, time.Time, error) {
	start, err := time.Parse(MonthLayout, bucket)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month bucket %q: %w", bucket, err)
	}
	return start, start.AddDate(0, 1, 0), nil
}
