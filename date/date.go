package date

import (
	"fmt"
	"time"
)

// Represents a pure date, with no effects from time zones, or time.
// Represented in UTC time at 00:00:00
type Date struct {
	time time.Time
}

func New(year uint32, month time.Month, day uint32) Date {
	return Date{time.Date(int(year), month, int(day), 0, 0, 0, 0, time.UTC)}
}

// NewFromTime drops the time of day (and zone) from t, keeping the calendar
// date as it reads in t's own location.
func NewFromTime(t time.Time) Date {
	return New(uint32(t.Year()), t.Month(), uint32(t.Day()))
}

// Before reports whether the date instant d is before u.
func (d Date) Before(u Date) bool {
	return d.time.Before(u.time)
}

// String renders the date as yyyy-MM-dd, the same layout the feed
// timestamps use.
func (d Date) String() string {
	year, month, day := d.time.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
