package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/khrystynapavlivets/time-tracking-app/internal/store"
)

func testLookup() ProjectLookup {
	projects := map[string]*store.Project{
		"p1": {ID: "p1", Name: "Website Redesign"},
	}
	return func(id string) (*store.Project, bool) {
		p, ok := projects[id]
		return p, ok
	}
}

// ============================================================
// CSV
// ============================================================

func TestWriteCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil, testLookup()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	want := "Task,Project,Duration (h),Date,Billable\n"
	if buf.String() != want {
		t.Fatalf("empty export = %q, want %q", buf.String(), want)
	}
}

func TestWriteCSVRows(t *testing.T) {
	entries := []store.TimeEntry{
		{ID: "e1", Task: "Design audit", ProjectID: "p1", Duration: 5400, Date: "2024-01-01", Billable: true},
		{ID: "e2", Task: "Standup", ProjectID: "gone", Duration: 900, Date: "2024-01-02", Billable: false},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, entries, testLookup()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[1] != "Design audit,Website Redesign,1.50,2024-01-01,Yes" {
		t.Fatalf("row 1 = %q", lines[1])
	}
	// Deleted project falls back to Unknown.
	if lines[2] != "Standup,Unknown,0.25,2024-01-02,No" {
		t.Fatalf("row 2 = %q", lines[2])
	}
}

func TestWriteCSVQuotesSpecialCharacters(t *testing.T) {
	entries := []store.TimeEntry{
		{ID: "e1", Task: `Review "final, really final" draft`, ProjectID: "p1", Duration: 3600, Date: "2024-01-01", Billable: true},
		{ID: "e2", Task: "Line one\nline two", ProjectID: "p1", Duration: 1800, Date: "2024-01-02", Billable: false},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, entries, testLookup()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	// The output must parse back to the same field values.
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-reading export: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[1][0] != `Review "final, really final" draft` {
		t.Fatalf("task with comma and quotes mangled: %q", records[1][0])
	}
	if records[2][0] != "Line one\nline two" {
		t.Fatalf("task with newline mangled: %q", records[2][0])
	}
}

func TestWriteCSVNilLookup(t *testing.T) {
	entries := []store.TimeEntry{
		{ID: "e1", Task: "Work", ProjectID: "p1", Duration: 3600, Date: "2024-01-01"},
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, entries, nil); err != nil {
		t.Fatalf("WriteCSV with nil lookup: %v", err)
	}
	if !strings.Contains(buf.String(), "Unknown") {
		t.Fatalf("nil lookup should export Unknown: %q", buf.String())
	}
}

func TestToCSVWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	entries := []store.TimeEntry{
		{ID: "e1", Task: "Work", ProjectID: "p1", Duration: 3600, Date: "2024-01-01", Billable: true},
	}

	if err := ToCSV(entries, testLookup(), path); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.HasPrefix(string(data), "Task,Project,Duration (h),Date,Billable\n") {
		t.Fatalf("file missing header: %q", string(data))
	}
}

// ============================================================
// JSON
// ============================================================

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	entries := []store.TimeEntry{
		{ID: "e1", Task: "Design audit", ProjectID: "p1", Duration: 5400, StartTime: "09:00 AM", Date: "2024-01-01", Billable: true},
		{ID: "e2", Task: "Standup", ProjectID: "gone", Duration: 900, Date: "2024-01-02", Billable: false},
	}

	if err := ToJSON(entries, testLookup(), path); err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}

	var got jsonExport
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if got.Count != 2 || len(got.Entries) != 2 {
		t.Fatalf("count = %d, entries = %d", got.Count, len(got.Entries))
	}
	if got.ExportedAt == "" {
		t.Fatal("exported_at missing")
	}

	first := got.Entries[0]
	if first.Project != "Website Redesign" || first.DurationSec != 5400 || first.Duration != "1h 30m" {
		t.Fatalf("first entry = %+v", first)
	}
	if got.Entries[1].Project != "Unknown" {
		t.Fatalf("deleted project should export as Unknown: %+v", got.Entries[1])
	}
}

func TestToJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := ToJSON(nil, testLookup(), path); err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	var got jsonExport
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if got.Count != 0 {
		t.Fatalf("count = %d, want 0", got.Count)
	}
}
