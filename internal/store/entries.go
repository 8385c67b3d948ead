package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewEntry holds the fields of an entry about to be recorded. Entries
// are only created once a timer stops with positive elapsed time, so
// there is no "running" row in the table.
type NewEntry struct {
	Task      string
	ProjectID string
	Duration  int64
	StartTime string
	EndTime   string
	Date      string
	Billable  bool
}

func (s *Store) CreateEntry(e NewEntry) (*TimeEntry, error) {
	if e.Duration < 0 {
		return nil, fmt.Errorf("create entry: negative duration %d", e.Duration)
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return nil, fmt.Errorf("create entry: bad date %q: %w", e.Date, err)
	}
	id := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO time_entries (id, task, project_id, duration, start_time, end_time, date, billable, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, e.Task, e.ProjectID, e.Duration, e.StartTime, e.EndTime, e.Date, boolToInt(e.Billable), now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}
	return s.GetEntry(id)
}

func (s *Store) GetEntry(id string) (*TimeEntry, error) {
	e := &TimeEntry{}
	var billable int
	var createdAt string
	err := s.db.QueryRow(
		`SELECT id, task, project_id, duration, start_time, end_time, date, billable, created_at
		 FROM time_entries WHERE id = ?`, id,
	).Scan(&e.ID, &e.Task, &e.ProjectID, &e.Duration, &e.StartTime, &e.EndTime, &e.Date, &billable, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("get entry %s: %w", id, err)
	}
	e.Billable = billable == 1
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return e, nil
}

func (s *Store) ListEntries(f EntryFilter) ([]TimeEntry, error) {
	query := `SELECT id, task, project_id, duration, start_time, end_time, date, billable, created_at FROM time_entries WHERE 1=1`
	var args []any

	if f.ProjectID != nil {
		query += ` AND project_id = ?`
		args = append(args, *f.ProjectID)
	}
	if f.Date != nil {
		query += ` AND date = ?`
		args = append(args, *f.Date)
	}
	if f.From != nil {
		query += ` AND date >= ?`
		args = append(args, *f.From)
	}
	if f.To != nil {
		query += ` AND date < ?`
		args = append(args, *f.To)
	}
	if f.Billable != nil {
		query += ` AND billable = ?`
		args = append(args, boolToInt(*f.Billable))
	}
	query += ` ORDER BY date DESC, created_at DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []TimeEntry
	for rows.Next() {
		var e TimeEntry
		var billable int
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Task, &e.ProjectID, &e.Duration, &e.StartTime, &e.EndTime, &e.Date, &billable, &createdAt); err != nil {
			return nil, err
		}
		e.Billable = billable == 1
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// EntryUpdate carries the inline-editable fields. Nil means leave the
// field as it is.
type EntryUpdate struct {
	Task      *string
	ProjectID *string
	Duration  *int64
	Billable  *bool
}

func (s *Store) UpdateEntry(id string, u EntryUpdate) (*TimeEntry, error) {
	if u.Duration != nil && *u.Duration < 0 {
		return nil, fmt.Errorf("update entry: negative duration %d", *u.Duration)
	}

	query := `UPDATE time_entries SET id = id`
	var args []any
	if u.Task != nil {
		query += `, task = ?`
		args = append(args, *u.Task)
	}
	if u.ProjectID != nil {
		query += `, project_id = ?`
		args = append(args, *u.ProjectID)
	}
	if u.Duration != nil {
		query += `, duration = ?`
		args = append(args, *u.Duration)
	}
	if u.Billable != nil {
		query += `, billable = ?`
		args = append(args, boolToInt(*u.Billable))
	}
	query += ` WHERE id = ?`
	args = append(args, id)

	if _, err := s.db.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("update entry %s: %w", id, err)
	}
	return s.GetEntry(id)
}

func (s *Store) DeleteEntry(id string) error {
	_, err := s.db.Exec(`DELETE FROM time_entries WHERE id = ?`, id)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
