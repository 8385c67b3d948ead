package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/khrystynapavlivets/time-tracking-app/internal/report"
	"github.com/khrystynapavlivets/time-tracking-app/internal/store"
	"github.com/khrystynapavlivets/time-tracking-app/internal/timefmt"
)

type dashboardModel struct {
	store  *store.Store
	timer  timerModel
	width  int
	height int

	entries  []store.TimeEntry
	projects []store.Project
	groups   []report.ProjectGroup
	stats    report.DailyStats
	cursor   int // over today's entries, in group order

	formActive bool
	form       *huh.Form
	formType   string // "start", "edit"
	editingID  string

	// Form field pointers (survive value copies)
	formTask      *string
	formProjectID *string
	formDuration  *string
	formBillable  *bool
}

func newDashboardModel(s *store.Store) dashboardModel {
	task, projectID, duration := "", "", ""
	billable := true
	return dashboardModel{
		store:         s,
		timer:         newTimerModel(s),
		formTask:      &task,
		formProjectID: &projectID,
		formDuration:  &duration,
		formBillable:  &billable,
	}
}

func (d dashboardModel) Init() tea.Cmd {
	return d.loadData()
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d dashboardModel) isRunning() bool { return d.timer.running() }
func (d dashboardModel) isPaused() bool  { return d.timer.paused() }
func (d dashboardModel) elapsed() time.Duration {
	return d.timer.currentElapsed()
}

type dashboardDataMsg struct {
	entries  []store.TimeEntry
	projects []store.Project
}

func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		entries, _ := d.store.ListEntries(store.EntryFilter{})
		projects, _ := d.store.ListProjects()
		return dashboardDataMsg{entries: entries, projects: projects}
	}
}

func (d dashboardModel) projectLookup() report.ProjectLookup {
	byID := make(map[string]*store.Project, len(d.projects))
	for i := range d.projects {
		byID[d.projects[i].ID] = &d.projects[i]
	}
	return func(id string) (*store.Project, bool) {
		p, ok := byID[id]
		return p, ok
	}
}

// todayEntries flattens the grouped activity view in display order, so
// the cursor walks entries the way they are rendered.
func (d dashboardModel) todayEntries() []store.TimeEntry {
	var out []store.TimeEntry
	for _, g := range d.groups {
		out = append(out, g.Entries...)
	}
	return out
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if d.formActive && d.form != nil {
		return d.updateForm(msg)
	}

	switch msg := msg.(type) {
	case dashboardDataMsg:
		d.entries = msg.entries
		d.projects = msg.projects
		today := timefmt.Date(time.Now())
		d.groups = report.GroupByProjectForDate(d.entries, today, d.projectLookup())
		d.stats = report.StatsForDate(d.entries, today)
		if n := len(d.todayEntries()); d.cursor >= n {
			d.cursor = max(0, n-1)
		}
		return d, nil

	case tickMsg:
		return d, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			if d.timer.running() {
				return d, nil
			}
			if len(d.projects) == 0 {
				return d, func() tea.Msg {
					return statusMsg{text: "No projects yet. Press 2 to go to Projects and create one.", isError: true}
				}
			}
			return d.showStartForm()

		case key.Matches(msg, keys.Stop):
			return d.stopTimer()

		case key.Matches(msg, keys.Pause):
			d.timer.toggle()
			return d, nil

		case key.Matches(msg, keys.Up):
			if d.cursor > 0 {
				d.cursor--
			}
		case key.Matches(msg, keys.Down):
			if d.cursor < len(d.todayEntries())-1 {
				d.cursor++
			}
		case key.Matches(msg, keys.Edit):
			if entries := d.todayEntries(); len(entries) > 0 {
				return d.showEditForm(entries[d.cursor])
			}
		case key.Matches(msg, keys.Delete):
			if entries := d.todayEntries(); len(entries) > 0 {
				d.store.DeleteEntry(entries[d.cursor].ID)
				return d, d.loadData()
			}
		}
	}
	return d, nil
}

func (d dashboardModel) stopTimer() (dashboardModel, tea.Cmd) {
	entry, err := d.timer.stop()
	if err != nil {
		return d, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
	}
	return d, tea.Batch(
		d.loadData(),
		func() tea.Msg { return timerStoppedMsg{entry: entry} },
	)
}

// defaultBillable reads the billable_default setting for the start form.
func (d dashboardModel) defaultBillable() bool {
	v, err := d.store.GetSetting("billable_default")
	if err != nil {
		return true
	}
	return v == "on"
}

func (d dashboardModel) projectOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(d.projects))
	for i, p := range d.projects {
		opts[i] = huh.NewOption(p.Name, p.ID)
	}
	return opts
}

func (d dashboardModel) showStartForm() (dashboardModel, tea.Cmd) {
	*d.formTask = ""
	*d.formProjectID = d.projects[0].ID
	*d.formBillable = d.defaultBillable()
	d.formType = "start"

	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("What are you working on?").Value(d.formTask),
			huh.NewSelect[string]().Title("Project").Options(d.projectOptions()...).Value(d.formProjectID),
			huh.NewConfirm().Title("Billable").Value(d.formBillable),
		),
	).WithShowHelp(true).WithShowErrors(true)

	d.formActive = true
	return d, d.form.Init()
}

func (d dashboardModel) showEditForm(e store.TimeEntry) (dashboardModel, tea.Cmd) {
	*d.formTask = e.Task
	*d.formProjectID = e.ProjectID
	*d.formDuration = timefmt.DurationInput(e.Duration)
	*d.formBillable = e.Billable
	d.formType = "edit"
	d.editingID = e.ID

	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task").Value(d.formTask),
			huh.NewSelect[string]().Title("Project").Options(d.projectOptions()...).Value(d.formProjectID),
			huh.NewInput().Title("Duration (H:MM or 1h 30m)").Value(d.formDuration),
			huh.NewConfirm().Title("Billable").Value(d.formBillable),
		),
	).WithShowHelp(true).WithShowErrors(true)

	d.formActive = true
	return d, d.form.Init()
}

func (d dashboardModel) updateForm(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			d.formActive = false
			d.form = nil
			return d, nil
		}
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	if d.form.State == huh.StateCompleted {
		d.formActive = false
		switch d.formType {
		case "start":
			name := ""
			for _, p := range d.projects {
				if p.ID == *d.formProjectID {
					name = p.Name
					break
				}
			}
			d.timer.start(*d.formTask, *d.formProjectID, name, *d.formBillable)
			return d, func() tea.Msg { return timerStartedMsg{} }

		case "edit":
			update := store.EntryUpdate{
				Task:      d.formTask,
				ProjectID: d.formProjectID,
				Billable:  d.formBillable,
			}
			var warn tea.Cmd
			if secs, ok := timefmt.ParseDurationInput(*d.formDuration); ok {
				update.Duration = &secs
			} else {
				warn = func() tea.Msg {
					return statusMsg{text: "Could not parse duration — duration left unchanged", isError: true}
				}
			}
			d.store.UpdateEntry(d.editingID, update)
			return d, tea.Batch(d.loadData(), warn)
		}
	}

	return d, cmd
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4

	if d.formActive && d.form != nil {
		title := titleStyle.Render("Start Timer")
		if d.formType == "edit" {
			title = titleStyle.Render("Edit Entry")
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", d.form.View())
		return panelStyle.Width(contentWidth).Render(content)
	}

	timerPanel := d.renderTimerPanel(contentWidth)
	statsRow := d.renderStatsCards(contentWidth)
	activityPanel := d.renderActivityPanel(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, timerPanel, statsRow, activityPanel)
}

func (d dashboardModel) renderTimerPanel(w int) string {
	if d.timer.running() {
		elapsed := int64(d.timer.currentElapsed().Seconds())
		timeStr := timefmt.Clock(elapsed)

		var timeDisplay, indicator string
		if d.timer.paused() {
			timeDisplay = timerPausedStyle.Width(w - 6).Render(timeStr)
			indicator = warningStyle.Render("⏸  PAUSED")
		} else {
			timeDisplay = timerRunningStyle.Width(w - 6).Render(timeStr)
			indicator = successStyle.Render("●  RUNNING")
		}

		taskLine := highlightStyle.Render(d.timer.projectName)
		if d.timer.task != "" {
			taskLine += mutedStyle.Render(" / " + d.timer.task)
		}

		content := lipgloss.JoinVertical(lipgloss.Center,
			timeDisplay,
			indicator,
			taskLine,
		)
		return activePanelStyle.Width(w).Render(content)
	}

	timeDisplay := timerStyle.Width(w - 6).Render("00:00:00")
	indicator := mutedStyle.Render("■  STOPPED")
	hint := mutedStyle.Render("Press s to start tracking")

	content := lipgloss.JoinVertical(lipgloss.Center,
		timeDisplay,
		indicator,
		hint,
	)
	return panelStyle.Width(w).Render(content)
}

func (d dashboardModel) renderStatsCards(w int) string {
	cardWidth := w/4 - 2
	if cardWidth < 12 {
		cardWidth = 12
	}

	card := func(label, value, subtitle string) string {
		return statCardStyle.Width(cardWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				mutedStyle.Render(label),
				titleStyle.Render(value),
				mutedStyle.Render(subtitle),
			),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Today", d.stats.TodayHours+"h", "Hours tracked"),
		card("Tasks", fmt.Sprintf("%d", d.stats.TaskCount), "Completed today"),
		card("Billable", d.stats.BillableHours+"h", "Billable today"),
		card("Total", d.stats.WeekHours+"h", "All tracked"),
	)
}

func (d dashboardModel) renderActivityPanel(w int) string {
	title := titleStyle.Render("Today's Activity")

	if len(d.groups) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("No time entries yet. Start the timer to begin tracking."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	idx := 0
	for _, g := range d.groups {
		name := report.UnknownProject
		color := colorMuted
		if g.Project != nil {
			name = g.Project.Name
			color = lipgloss.Color(g.Project.HexColor)
		}
		dot := lipgloss.NewStyle().Foreground(color).Render("●")
		rows = append(rows, fmt.Sprintf("%s %s  %s",
			dot, titleStyle.Render(name), mutedStyle.Render(timefmt.Duration(g.TotalSeconds)),
		))

		for _, e := range g.Entries {
			cursor := "  "
			style := normalItemStyle
			if idx == d.cursor {
				cursor = "> "
				style = selectedItemStyle
			}
			badge := " "
			if e.Billable {
				badge = successStyle.Render("$")
			}
			span := ""
			if e.StartTime != "" && e.EndTime != "" {
				span = mutedStyle.Render(fmt.Sprintf("%s – %s  ", e.StartTime, e.EndTime))
			}
			rows = append(rows, style.Render(fmt.Sprintf("%s%-32s", cursor, e.Task))+
				fmt.Sprintf("  %s%s %s", span, timefmt.Duration(e.Duration), badge))
			idx++
		}
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  e: edit  d: delete  ↑/↓: select"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
