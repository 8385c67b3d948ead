package tui

import (
	"testing"
	"time"

	"github.com/khrystynapavlivets/time-tracking-app/internal/store"
	"github.com/khrystynapavlivets/time-tracking-app/internal/timefmt"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("NewMemory: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Timer state machine
// ============================================================

func TestTimerStartStates(t *testing.T) {
	tm := newTimerModel(newTestStore(t))
	if tm.running() {
		t.Fatal("new timer should not be running")
	}

	tm.start("Design audit", "p1", "Website Redesign", true)
	if !tm.running() || tm.paused() {
		t.Fatalf("after start: running=%v paused=%v", tm.running(), tm.paused())
	}

	tm.pause()
	if !tm.running() || !tm.paused() {
		t.Fatalf("after pause: running=%v paused=%v", tm.running(), tm.paused())
	}

	tm.resume()
	if !tm.running() || tm.paused() {
		t.Fatalf("after resume: running=%v paused=%v", tm.running(), tm.paused())
	}
}

func TestTimerToggle(t *testing.T) {
	tm := newTimerModel(newTestStore(t))

	// Toggling a stopped timer does nothing.
	tm.toggle()
	if tm.running() {
		t.Fatal("toggle must not start a stopped timer")
	}

	tm.start("", "p1", "", false)
	tm.toggle()
	if !tm.paused() {
		t.Fatal("toggle should pause a running timer")
	}
	tm.toggle()
	if tm.paused() {
		t.Fatal("toggle should resume a paused timer")
	}
}

func TestTimerPauseOnlyWhenRunning(t *testing.T) {
	tm := newTimerModel(newTestStore(t))
	tm.pause()
	if tm.running() {
		t.Fatal("pause must not start a stopped timer")
	}
	tm.resume()
	if tm.running() {
		t.Fatal("resume must not start a stopped timer")
	}
}

// ============================================================
// Stop and commit
// ============================================================

func TestTimerStopWhenStopped(t *testing.T) {
	tm := newTimerModel(newTestStore(t))
	entry, err := tm.stop()
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if entry != nil {
		t.Fatalf("stop on a stopped timer must record nothing, got %+v", entry)
	}
}

func TestTimerStopZeroElapsedRecordsNothing(t *testing.T) {
	s := newTestStore(t)
	tm := newTimerModel(s)
	tm.start("Quick tap", "p1", "Website Redesign", true)

	entry, err := tm.stop()
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if entry != nil {
		t.Fatalf("sub-second span must record nothing, got %+v", entry)
	}
	if tm.running() {
		t.Fatal("timer should be stopped")
	}

	entries, err := s.ListEntries(store.EntryFilter{})
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("store should be empty, got %d entries", len(entries))
	}
}

func TestTimerStopCommitsEntry(t *testing.T) {
	s := newTestStore(t)
	tm := newTimerModel(s)
	tm.start("Design audit", "p1", "Website Redesign", true)
	// Backdate the start so the span has measurable length.
	tm.startedAt = time.Now().Add(-90 * time.Second)

	entry, err := tm.stop()
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if entry == nil {
		t.Fatal("expected a committed entry")
	}
	if entry.Task != "Design audit" || entry.ProjectID != "p1" || !entry.Billable {
		t.Fatalf("entry = %+v", entry)
	}
	if entry.Duration < 90 || entry.Duration > 92 {
		t.Fatalf("duration = %d, want about 90", entry.Duration)
	}
	if entry.Date != timefmt.Date(time.Now()) {
		t.Fatalf("date = %q, want today", entry.Date)
	}
	if entry.StartTime == "" || entry.EndTime == "" {
		t.Fatalf("clock fields missing: %+v", entry)
	}

	got, err := s.GetEntry(entry.ID)
	if err != nil {
		t.Fatalf("entry not persisted: %v", err)
	}
	if got.Duration != entry.Duration {
		t.Fatalf("persisted duration = %d, want %d", got.Duration, entry.Duration)
	}
}

func TestTimerStopDefaultsTaskName(t *testing.T) {
	s := newTestStore(t)
	tm := newTimerModel(s)
	tm.start("", "p1", "Website Redesign", false)
	tm.startedAt = time.Now().Add(-time.Minute)

	entry, err := tm.stop()
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if entry.Task != "Untitled Task" {
		t.Fatalf("task = %q, want Untitled Task", entry.Task)
	}
}

func TestTimerPauseGapExcludedFromElapsed(t *testing.T) {
	s := newTestStore(t)
	tm := newTimerModel(s)
	tm.start("Work", "p1", "", false)
	tm.startedAt = time.Now().Add(-10 * time.Minute)
	tm.pauseGap = 4 * time.Minute

	elapsed := int64(tm.currentElapsed().Seconds())
	if elapsed < 359 || elapsed > 361 {
		t.Fatalf("elapsed = %ds, want about 360", elapsed)
	}

	entry, err := tm.stop()
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if entry.Duration < 359 || entry.Duration > 361 {
		t.Fatalf("duration = %d, want about 360", entry.Duration)
	}
}

func TestTimerElapsedFrozenWhilePaused(t *testing.T) {
	tm := newTimerModel(newTestStore(t))
	tm.start("Work", "p1", "", false)
	tm.startedAt = time.Now().Add(-5 * time.Minute)
	tm.pause()
	tm.pausedAt = time.Now().Add(-2 * time.Minute)

	elapsed := int64(tm.currentElapsed().Seconds())
	if elapsed < 179 || elapsed > 181 {
		t.Fatalf("paused elapsed = %ds, want about 180", elapsed)
	}
}

// ============================================================
// Start form defaults
// ============================================================

func TestStartDefaultBillableFromSetting(t *testing.T) {
	s := newTestStore(t)
	d := newDashboardModel(s)

	if got := d.defaultBillable(); got != true {
		t.Fatalf("seeded billable_default is on, got %v", got)
	}

	if err := s.SetSetting("billable_default", "off"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if got := d.defaultBillable(); got != false {
		t.Fatalf("billable_default off, got %v", got)
	}
}
