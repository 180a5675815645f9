package date_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/RiveriRiv/payments-aggregator/date"
)

func TestDate(t *testing.T) {
	rq := require.New(t)

	d1 := date.New(2025, 2, 14)
	rq.Equal(d1, date.NewFromTime(time.Date(2025, 2, 14, 10, 0, 0, 0, time.UTC)))
	rq.Equal("2025-02-14", d1.String())

	// Years are padded to four digits, matching yyyy-MM-dd input.
	rq.Equal("0999-01-01", date.New(999, time.January, 1).String())
	rq.Equal("0001-01-01", date.Date{}.String())

	defaultDate := date.Date{}
	rq.Equal(defaultDate, date.New(1, time.January, 1))
}

func TestNewFromTimeDropsTimeOfDay(t *testing.T) {
	rq := require.New(t)

	morning := time.Date(2025, 2, 14, 0, 0, 1, 0, time.UTC)
	evening := time.Date(2025, 2, 14, 23, 59, 59, 0, time.UTC)
	rq.Equal(date.NewFromTime(morning), date.NewFromTime(evening))
	rq.NotEqual(date.NewFromTime(evening), date.NewFromTime(evening.Add(time.Second)))

	// Usable as a map key.
	m := map[date.Date]int{}
	m[date.NewFromTime(morning)]++
	m[date.NewFromTime(evening)]++
	rq.Equal(2, m[date.New(2025, 2, 14)])
}

func TestDateOrdering(t *testing.T) {
	rq := require.New(t)

	dates := []date.Date{date.New(2025, 3, 1), date.New(2024, 12, 31), date.New(2025, 2, 14)}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	rq.Equal([]date.Date{date.New(2024, 12, 31), date.New(2025, 2, 14), date.New(2025, 3, 1)}, dates)
	rq.False(dates[2].Before(dates[1]))
	rq.False(dates[1].Before(dates[1]))
}
