package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/khrystynapavlivets/time-tracking-app/internal/report"
	"github.com/khrystynapavlivets/time-tracking-app/internal/store"
	"github.com/khrystynapavlivets/time-tracking-app/internal/timefmt"
)

type reportMode int

const (
	reportDay reportMode = iota
	reportWeek
	reportMonth
)

var reportModeNames = []string{"Day", "Week", "Month"}

type reportsModel struct {
	store  *store.Store
	width  int
	height int

	mode     reportMode
	offset   int // days/weeks/months back from today (0 = current)
	entries  []store.TimeEntry
	projects []store.Project
	filler   report.Filler // non-nil only when sample filler is enabled

	summary   report.Summary
	breakdown []report.BreakdownRow
	buckets   []report.Bucket

	chart barchart.Model
}

func newReportsModel(s *store.Store) reportsModel {
	return reportsModel{
		store: s,
		mode:  reportWeek,
		chart: barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

type reportsDataMsg struct {
	entries  []store.TimeEntry
	projects []store.Project
	fillerOn bool
}

func (r reportsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		entries, _ := r.store.ListEntries(store.EntryFilter{})
		projects, _ := r.store.ListProjects()
		fillerVal, _ := r.store.GetSetting("sample_filler")
		return reportsDataMsg{
			entries:  entries,
			projects: projects,
			fillerOn: fillerVal == "on",
		}
	}
}

// refDate is the anchor date for the current mode and offset.
func (r reportsModel) refDate() time.Time {
	now := time.Now()
	switch r.mode {
	case reportDay:
		return now.AddDate(0, 0, -r.offset)
	case reportMonth:
		return now.AddDate(0, -r.offset, 0)
	default:
		return now.AddDate(0, 0, -7*r.offset)
	}
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsDataMsg:
		r.entries = msg.entries
		r.projects = msg.projects
		r.filler = nil
		if msg.fillerOn {
			// Seed from the anchor day so the same view always draws
			// the same placeholder chart.
			r.filler = report.NewSampleFiller(r.refDate().Unix() / 86400)
		}
		r.recompute()
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			r.offset++
			return r, r.refresh()
		case key.Matches(msg, keys.Right):
			if r.offset > 0 {
				r.offset--
			}
			return r, r.refresh()
		case key.Matches(msg, keys.Tab):
			r.mode = (r.mode + 1) % 3
			r.offset = 0
			return r, r.refresh()
		}
	}
	return r, nil
}

func (r *reportsModel) recompute() {
	r.summary = report.Summarize(r.entries)
	r.breakdown = report.ProjectBreakdown(r.entries)

	ref := r.refDate()
	switch r.mode {
	case reportDay:
		r.buckets = report.DayBuckets(r.entries, timefmt.Date(ref))
	case reportMonth:
		r.buckets = report.MonthlySeries(r.entries, ref, r.filler)
	default:
		r.buckets = report.WeeklySeries(r.entries, ref, r.filler)
	}
	r.buildChart()
}

func (r *reportsModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	style := lipgloss.NewStyle().Foreground(colorPrimary)
	var bars []barchart.BarData
	for _, b := range r.buckets {
		bars = append(bars, barchart.BarData{
			Label: b.Label,
			Values: []barchart.BarValue{
				{Name: b.Label, Value: b.Hours, Style: style},
			},
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportsModel) projectLookup() report.ProjectLookup {
	byID := make(map[string]*store.Project, len(r.projects))
	for i := range r.projects {
		byID[r.projects[i].ID] = &r.projects[i]
	}
	return func(id string) (*store.Project, bool) {
		p, ok := byID[id]
		return p, ok
	}
}

func (r reportsModel) view() string {
	w := r.width - 4

	// Mode tabs
	var tabs []string
	for i, name := range reportModeNames {
		if reportMode(i) == r.mode {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	modeTabs := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	dateLabel := mutedStyle.Render(r.rangeLabel())

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Reports"), "  ", modeTabs, "  ", dateLabel,
	)

	chartView := r.chart.View()
	summaryView := r.renderSummary()
	breakdownView := r.renderBreakdown(w)

	nav := mutedStyle.Render("  ←/→: navigate  tab: switch mode  E: export")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", summaryView, "", chartView, "", breakdownView, "", nav,
		),
	)
}

func (r reportsModel) rangeLabel() string {
	ref := r.refDate()
	switch r.mode {
	case reportDay:
		return ref.Format("Mon, Jan 02 2006")
	case reportMonth:
		return ref.Format("January 2006")
	default:
		start := report.WeekStart(ref)
		end := start.AddDate(0, 0, 6)
		return fmt.Sprintf("%s — %s", start.Format("Jan 02"), end.Format("Jan 02, 2006"))
	}
}

func (r reportsModel) renderSummary() string {
	item := func(label, value string) string {
		return fmt.Sprintf("%s %s", mutedStyle.Render(label), highlightStyle.Render(value+"h"))
	}
	return "  " + strings.Join([]string{
		item("Total:", r.summary.TotalHours),
		item("Billable:", r.summary.BillableHours),
		item("Avg daily:", r.summary.AvgDaily),
	}, "   ")
}

func (r reportsModel) renderBreakdown(w int) string {
	if len(r.breakdown) == 0 {
		return mutedStyle.Render("  No data for this period")
	}

	lookup := r.projectLookup()
	barWidth := min(w-50, 30)
	if barWidth < 10 {
		barWidth = 10
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Project Breakdown"))
	for _, row := range r.breakdown {
		name := report.UnknownProject
		color := colorMuted
		if p, ok := lookup(row.ProjectID); ok {
			name = p.Name
			color = lipgloss.Color(p.HexColor)
		}
		dot := lipgloss.NewStyle().Foreground(color).Render("●")
		filled := row.Percentage * barWidth / 100
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
			mutedStyle.Render(strings.Repeat("░", barWidth-filled))
		rows = append(rows, fmt.Sprintf("  %s %-20s %6.1fh %4d%%  %s",
			dot, name, float64(row.TotalSeconds)/3600, row.Percentage, bar,
		))
	}

	return strings.Join(rows, "\n")
}
