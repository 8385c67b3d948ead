// Package report is the aggregation engine: pure functions that turn a
// snapshot of time entries into display-ready statistics. Every
// function accepts an empty entry set and returns zero-valued results,
// and every project reference is treated as possibly dangling.
package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/khrystynapavlivets/time-tracking-app/internal/store"
)

// ProjectLookup resolves a project ID against the current project set.
// ok is false when the project has been deleted.
type ProjectLookup func(id string) (*store.Project, bool)

// UnknownProject is the display label for entries whose project no
// longer exists.
const UnknownProject = "Unknown"

// DailyTotal returns total tracked seconds for the given date.
func DailyTotal(entries []store.TimeEntry, date string) int64 {
	var total int64
	for _, e := range entries {
		if e.Date == date {
			total += e.Duration
		}
	}
	return total
}

// BillableTotal returns total billable seconds, restricted to date when
// date is non-empty.
func BillableTotal(entries []store.TimeEntry, date string) int64 {
	var total int64
	for _, e := range entries {
		if !e.Billable {
			continue
		}
		if date != "" && e.Date != date {
			continue
		}
		total += e.Duration
	}
	return total
}

// TotalDuration returns the sum of all entry durations in seconds.
func TotalDuration(entries []store.TimeEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Duration
	}
	return total
}

// AverageDailyHours divides total tracked hours by the number of
// distinct dates present. The divisor is floored at 1 so an empty
// entry set yields 0 rather than NaN.
func AverageDailyHours(entries []store.TimeEntry) float64 {
	dates := make(map[string]struct{})
	for _, e := range entries {
		dates[e.Date] = struct{}{}
	}
	days := len(dates)
	if days < 1 {
		days = 1
	}
	return float64(TotalDuration(entries)) / 3600 / float64(days)
}

// Summary holds the report-page scalars, fixed to one decimal place.
type Summary struct {
	TotalHours    string
	BillableHours string
	AvgDaily      string
}

func Summarize(entries []store.TimeEntry) Summary {
	return Summary{
		TotalHours:    fmt.Sprintf("%.1f", float64(TotalDuration(entries))/3600),
		BillableHours: fmt.Sprintf("%.1f", float64(BillableTotal(entries, ""))/3600),
		AvgDaily:      fmt.Sprintf("%.1f", AverageDailyHours(entries)),
	}
}

// DailyStats holds the stats-card scalars for a single date. WeekHours
// covers the whole entry snapshot, which the store scopes to the
// period of interest.
type DailyStats struct {
	TodayHours    string
	TaskCount     int
	BillableHours string
	WeekHours     string
}

func StatsForDate(entries []store.TimeEntry, date string) DailyStats {
	count := 0
	for _, e := range entries {
		if e.Date == date {
			count++
		}
	}
	return DailyStats{
		TodayHours:    fmt.Sprintf("%.1f", float64(DailyTotal(entries, date))/3600),
		TaskCount:     count,
		BillableHours: fmt.Sprintf("%.1f", float64(BillableTotal(entries, date))/3600),
		WeekHours:     fmt.Sprintf("%.1f", float64(TotalDuration(entries))/3600),
	}
}

// BreakdownRow is one project's share of the tracked total. Percentages
// are rounded independently and need not sum to exactly 100.
type BreakdownRow struct {
	ProjectID    string
	TotalSeconds int64
	Percentage   int
}

// ProjectBreakdown groups entries by project, sorted by descending
// total. Ties keep first-seen order.
func ProjectBreakdown(entries []store.TimeEntry) []BreakdownRow {
	totals := make(map[string]int64)
	var order []string
	for _, e := range entries {
		if _, seen := totals[e.ProjectID]; !seen {
			order = append(order, e.ProjectID)
		}
		totals[e.ProjectID] += e.Duration
	}

	var grand int64
	for _, secs := range totals {
		grand += secs
	}

	rows := make([]BreakdownRow, 0, len(order))
	for _, pid := range order {
		secs := totals[pid]
		pct := 0
		if grand > 0 {
			pct = int(math.Round(float64(secs) / float64(grand) * 100))
		}
		rows = append(rows, BreakdownRow{ProjectID: pid, TotalSeconds: secs, Percentage: pct})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalSeconds > rows[j].TotalSeconds
	})
	return rows
}

// ProjectGroup is the grouped daily activity view for one project.
// Project is nil when the lookup fails; render UnknownProject then.
type ProjectGroup struct {
	ProjectID    string
	Project      *store.Project
	Entries      []store.TimeEntry
	TotalSeconds int64
}

// GroupByProjectForDate filters entries to date, groups them by
// project, and resolves each group through lookup. Groups keep the
// order projects first appear in the entry sequence.
func GroupByProjectForDate(entries []store.TimeEntry, date string, lookup ProjectLookup) []ProjectGroup {
	byProject := make(map[string]*ProjectGroup)
	var groups []*ProjectGroup
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		g, ok := byProject[e.ProjectID]
		if !ok {
			g = &ProjectGroup{ProjectID: e.ProjectID}
			if lookup != nil {
				if p, found := lookup(e.ProjectID); found {
					g.Project = p
				}
			}
			byProject[e.ProjectID] = g
			groups = append(groups, g)
		}
		g.Entries = append(g.Entries, e)
		g.TotalSeconds += e.Duration
	}

	out := make([]ProjectGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	return out
}

// ProjectHours returns the derived hour total for one project, rounded
// to one decimal. Replaces any cached per-project counter so totals
// cannot drift from the entries themselves.
func ProjectHours(entries []store.TimeEntry, projectID string) float64 {
	var secs int64
	for _, e := range entries {
		if e.ProjectID == projectID {
			secs += e.Duration
		}
	}
	return round1(float64(secs) / 3600)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
