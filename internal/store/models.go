package store

import "time"

// Project statuses.
const (
	StatusActive    = "Active"
	StatusCompleted = "Completed"
	StatusOnHold    = "On Hold"
)

type Project struct {
	ID        string
	Name      string
	Client    string
	HexColor  string
	Status    string // Active, Completed, On Hold
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TimeEntry is one recorded span of tracked time. ProjectID is a weak
// reference: the project may have been deleted since the entry was
// recorded, so lookups must tolerate a miss.
type TimeEntry struct {
	ID        string
	Task      string
	ProjectID string
	Duration  int64  // seconds
	StartTime string // display clock, e.g. "09:00 AM"
	EndTime   string
	Date      string // YYYY-MM-DD
	Billable  bool
	CreatedAt time.Time
}

type Setting struct {
	Key   string
	Value string
}

// EntryFilter is used to filter time entries in queries.
type EntryFilter struct {
	ProjectID *string
	Date      *string
	From      *string // inclusive YYYY-MM-DD
	To        *string // exclusive YYYY-MM-DD
	Billable  *bool
	Limit     int
}
