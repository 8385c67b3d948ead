package tui

import (
	"time"

	"github.com/khrystynapavlivets/time-tracking-app/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewProjects
	viewReports
	viewSettings
)

var viewNames = []string{"Dashboard", "Projects", "Reports", "Settings"}

// --- Messages ---

type timerStartedMsg struct{}

type timerStoppedMsg struct {
	entry *store.TimeEntry
}

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type exportDoneMsg struct {
	path string
}
