package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/khrystynapavlivets/time-tracking-app/internal/store"
	"github.com/khrystynapavlivets/time-tracking-app/internal/timefmt"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Entries    []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	ID          string `json:"id"`
	Task        string `json:"task"`
	Project     string `json:"project"`
	ProjectID   string `json:"project_id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	DurationSec int64  `json:"duration_seconds"`
	Duration    string `json:"duration"`
	Billable    bool   `json:"billable"`
}

func ToJSON(entries []store.TimeEntry, lookup ProjectLookup, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(entries),
	}

	for _, e := range entries {
		projectName := "Unknown"
		if lookup != nil {
			if p, ok := lookup(e.ProjectID); ok {
				projectName = p.Name
			}
		}

		export.Entries = append(export.Entries, jsonEntry{
			ID:          e.ID,
			Task:        e.Task,
			Project:     projectName,
			ProjectID:   e.ProjectID,
			Date:        e.Date,
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
			DurationSec: e.Duration,
			Duration:    timefmt.Duration(e.Duration),
			Billable:    e.Billable,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
