package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/khrystynapavlivets/time-tracking-app/internal/store"
)

// ProjectLookup resolves an entry's project; ok is false for deleted
// projects, which export as "Unknown".
type ProjectLookup func(id string) (*store.Project, bool)

// WriteCSV writes the time report with header
// Task,Project,Duration (h),Date,Billable. encoding/csv quotes fields
// containing commas, quotes, or newlines, so free-text task
// descriptions survive a round trip.
func WriteCSV(w io.Writer, entries []store.TimeEntry, lookup ProjectLookup) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"Task", "Project", "Duration (h)", "Date", "Billable"}); err != nil {
		return err
	}

	for _, e := range entries {
		projectName := "Unknown"
		if lookup != nil {
			if p, ok := lookup(e.ProjectID); ok {
				projectName = p.Name
			}
		}
		billable := "No"
		if e.Billable {
			billable = "Yes"
		}
		row := []string{
			e.Task,
			projectName,
			fmt.Sprintf("%.2f", float64(e.Duration)/3600),
			e.Date,
			billable,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}

// ToCSV writes the report to a file at path.
func ToCSV(entries []store.TimeEntry, lookup ProjectLookup, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()
	return WriteCSV(f, entries, lookup)
}
