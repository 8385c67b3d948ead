package report

import (
	"fmt"
	"time"

	"github.com/khrystynapavlivets/time-tracking-app/internal/store"
	"github.com/khrystynapavlivets/time-tracking-app/internal/timefmt"
)

// Bucket is one fixed chart slot: an hour of the day, a weekday, or a
// week of the month.
type Bucket struct {
	Label string
	Hours float64
}

var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekStart returns midnight of the Monday of the week containing ref,
// regardless of locale.
func WeekStart(ref time.Time) time.Time {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	offset := 1 - int(day.Weekday())
	if day.Weekday() == time.Sunday {
		offset = -6
	}
	return day.AddDate(0, 0, offset)
}

// WeeklySeries produces exactly 7 Mon..Sun buckets for the week
// containing ref, each summing that calendar day's durations in hours
// rounded to one decimal. When filler is non-nil, empty Mon-Fri
// buckets are backfilled with sample values so a fresh database still
// renders a populated chart; weekend buckets stay 0. Pass nil for real
// data only.
func WeeklySeries(entries []store.TimeEntry, ref time.Time, filler Filler) []Bucket {
	start := WeekStart(ref)
	buckets := make([]Bucket, 7)
	for i := range buckets {
		date := timefmt.Date(start.AddDate(0, 0, i))
		hours := round1(float64(DailyTotal(entries, date)) / 3600)
		if hours == 0 && i < 5 && filler != nil {
			hours = filler.Hours(2, 6)
		}
		buckets[i] = Bucket{Label: weekdayLabels[i], Hours: hours}
	}
	return buckets
}

// DayBuckets produces 24 hour-of-day buckets for a single date. Each
// entry lands whole in the bucket of its parsed start hour; durations
// spanning hour boundaries are not split. Entries whose StartTime
// yields no hour are left out of this view.
func DayBuckets(entries []store.TimeEntry, date string) []Bucket {
	buckets := make([]Bucket, 24)
	for i := range buckets {
		buckets[i].Label = fmt.Sprintf("%02d:00", i)
	}
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		h, ok := timefmt.ClockHour(e.StartTime)
		if !ok {
			continue
		}
		buckets[h].Hours += float64(e.Duration) / 3600
	}
	return buckets
}

// MonthlySeries produces 4 week-of-month buckets for the month
// containing ref. Days 1-7 fall in Week 1 and so on; days past 28 fold
// into Week 4. Grouping is by each entry's calendar date, so the
// result is deterministic; filler only backfills weeks with no data.
func MonthlySeries(entries []store.TimeEntry, ref time.Time, filler Filler) []Bucket {
	month := ref.Format("2006-01")
	buckets := make([]Bucket, 4)
	for i := range buckets {
		buckets[i].Label = fmt.Sprintf("Week %d", i+1)
	}
	for _, e := range entries {
		t, err := time.Parse("2006-01-02", e.Date)
		if err != nil || t.Format("2006-01") != month {
			continue
		}
		week := (t.Day() - 1) / 7
		if week > 3 {
			week = 3
		}
		buckets[week].Hours += float64(e.Duration) / 3600
	}
	for i := range buckets {
		buckets[i].Hours = round1(buckets[i].Hours)
		if buckets[i].Hours == 0 && filler != nil {
			buckets[i].Hours = filler.Hours(15, 50)
		}
	}
	return buckets
}
