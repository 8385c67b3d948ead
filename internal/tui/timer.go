package tui

import (
	"time"

	"github.com/khrystynapavlivets/time-tracking-app/internal/store"
	"github.com/khrystynapavlivets/time-tracking-app/internal/timefmt"
)

// timerState tracks the current state of the timer.
type timerState int

const (
	timerStopped timerState = iota
	timerRunning
	timerPaused
)

// timerModel is the ephemeral running timer. Nothing is written to the
// store until stop() fires with positive elapsed time, at which point
// the span becomes a TimeEntry.
type timerModel struct {
	store *store.Store

	state     timerState
	startedAt time.Time
	pausedAt  time.Time // when paused, to compute pause gap
	pauseGap  time.Duration

	task        string
	projectID   string
	projectName string
	billable    bool
}

func newTimerModel(s *store.Store) timerModel {
	return timerModel{
		store: s,
		state: timerStopped,
	}
}

func (t *timerModel) start(task, projectID, projectName string, billable bool) {
	t.state = timerRunning
	t.startedAt = time.Now()
	t.pauseGap = 0
	t.task = task
	t.projectID = projectID
	t.projectName = projectName
	t.billable = billable
}

// stop ends the timer and commits a TimeEntry when at least one full
// second elapsed. A zero-length span records nothing.
func (t *timerModel) stop() (*store.TimeEntry, error) {
	if t.state == timerStopped {
		return nil, nil
	}
	elapsed := int64(t.currentElapsed().Seconds())
	startedAt := t.startedAt
	t.state = timerStopped
	t.pauseGap = 0

	if elapsed <= 0 {
		return nil, nil
	}

	task := t.task
	if task == "" {
		task = "Untitled Task"
	}
	now := time.Now()
	return t.store.CreateEntry(store.NewEntry{
		Task:      task,
		ProjectID: t.projectID,
		Duration:  elapsed,
		StartTime: timefmt.ClockTime(startedAt),
		EndTime:   timefmt.ClockTime(now),
		Date:      timefmt.Date(now),
		Billable:  t.billable,
	})
}

func (t *timerModel) pause() {
	if t.state != timerRunning {
		return
	}
	t.state = timerPaused
	t.pausedAt = time.Now()
}

func (t *timerModel) resume() {
	if t.state != timerPaused {
		return
	}
	t.pauseGap += time.Since(t.pausedAt)
	t.state = timerRunning
}

func (t *timerModel) toggle() {
	switch t.state {
	case timerRunning:
		t.pause()
	case timerPaused:
		t.resume()
	}
}

func (t timerModel) running() bool {
	return t.state != timerStopped
}

func (t timerModel) paused() bool {
	return t.state == timerPaused
}

func (t timerModel) currentElapsed() time.Duration {
	if t.state == timerStopped {
		return 0
	}
	if t.state == timerPaused {
		return time.Since(t.startedAt) - t.pauseGap - time.Since(t.pausedAt)
	}
	return time.Since(t.startedAt) - t.pauseGap
}
