package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/khrystynapavlivets/time-tracking-app/internal/report"
	"github.com/khrystynapavlivets/time-tracking-app/internal/store"
)

var projectColors = []string{"#6366F1", "#2DD4BF", "#FACC15", "#EF4444", "#2ECC71", "#9B59B6", "#3498DB", "#F39C12"}
var projectStatuses = []string{store.StatusActive, store.StatusCompleted, store.StatusOnHold}

type projectsModel struct {
	store  *store.Store
	width  int
	height int

	projects []store.Project
	entries  []store.TimeEntry // for derived hour totals
	cursor   int

	formActive bool
	form       *huh.Form
	formType   string // "project", "edit_project"

	// Form field pointers (survive value copies)
	formName   *string
	formClient *string
	formColor  *string
	formStatus *string

	editingID string
}

func newProjectsModel(s *store.Store) projectsModel {
	name, client, color, status := "", "", projectColors[0], store.StatusActive
	return projectsModel{
		store:      s,
		formName:   &name,
		formClient: &client,
		formColor:  &color,
		formStatus: &status,
	}
}

func (p *projectsModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

type projectsDataMsg struct {
	projects []store.Project
	entries  []store.TimeEntry
}

func (p projectsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		projects, _ := p.store.ListProjects()
		entries, _ := p.store.ListEntries(store.EntryFilter{})
		return projectsDataMsg{projects: projects, entries: entries}
	}
}

func (p projectsModel) update(msg tea.Msg) (projectsModel, tea.Cmd) {
	if p.formActive && p.form != nil {
		return p.updateForm(msg)
	}

	switch msg := msg.(type) {
	case projectsDataMsg:
		p.projects = msg.projects
		p.entries = msg.entries
		if p.cursor >= len(p.projects) {
			p.cursor = max(0, len(p.projects)-1)
		}
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, keys.Down):
			if p.cursor < len(p.projects)-1 {
				p.cursor++
			}
		case key.Matches(msg, keys.New):
			return p.showProjectForm("", nil)
		case key.Matches(msg, keys.Edit):
			if len(p.projects) > 0 {
				proj := p.projects[p.cursor]
				return p.showProjectForm(proj.ID, &proj)
			}
		case key.Matches(msg, keys.Delete):
			if len(p.projects) > 0 {
				// Entries keep their projectId and show as Unknown.
				p.store.DeleteProject(p.projects[p.cursor].ID)
				return p, p.refresh()
			}
		}
	}
	return p, nil
}

func (p projectsModel) showProjectForm(editID string, proj *store.Project) (projectsModel, tea.Cmd) {
	if proj != nil {
		*p.formName = proj.Name
		*p.formClient = proj.Client
		*p.formColor = proj.HexColor
		*p.formStatus = proj.Status
		p.formType = "edit_project"
	} else {
		*p.formName = ""
		*p.formClient = ""
		*p.formColor = projectColors[0]
		*p.formStatus = store.StatusActive
		p.formType = "project"
	}
	p.editingID = editID

	colorOptions := make([]huh.Option[string], len(projectColors))
	for i, c := range projectColors {
		colorOptions[i] = huh.NewOption(fmt.Sprintf("● %s", c), c)
	}
	statusOptions := make([]huh.Option[string], len(projectStatuses))
	for i, s := range projectStatuses {
		statusOptions[i] = huh.NewOption(s, s)
	}

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Project Name").Value(p.formName),
			huh.NewInput().Title("Client").Value(p.formClient),
			huh.NewSelect[string]().Title("Color").Options(colorOptions...).Value(p.formColor),
			huh.NewSelect[string]().Title("Status").Options(statusOptions...).Value(p.formStatus),
		),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func (p projectsModel) updateForm(msg tea.Msg) (projectsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			p.formActive = false
			p.form = nil
			return p, nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.formActive = false
		switch p.formType {
		case "project":
			if *p.formName != "" {
				p.store.CreateProject(*p.formName, *p.formClient, *p.formColor, *p.formStatus)
			}
			return p, p.refresh()
		case "edit_project":
			if *p.formName != "" {
				p.store.UpdateProject(p.editingID, *p.formName, *p.formClient, *p.formColor, *p.formStatus)
			}
			return p, p.refresh()
		}
	}

	return p, cmd
}

func (p projectsModel) view() string {
	w := p.width - 4

	if p.formActive && p.form != nil {
		title := titleStyle.Render("New Project")
		if p.formType == "edit_project" {
			title = titleStyle.Render("Edit Project")
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", p.form.View())
		return panelStyle.Width(w).Render(content)
	}

	title := titleStyle.Render("Projects")

	if len(p.projects) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No projects yet. Press n to create one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-3s %-24s %-16s %-11s %8s", "", "Name", "Client", "Status", "Hours"))
	rows = append(rows, header)

	for i, proj := range p.projects {
		colorDot := lipgloss.NewStyle().Foreground(lipgloss.Color(proj.HexColor)).Render("●")
		cursor := "  "
		style := normalItemStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		hours := report.ProjectHours(p.entries, proj.ID)
		row := style.Render(fmt.Sprintf("%s%s %-24s %-16s %-11s %7.1fh",
			cursor, colorDot, proj.Name, proj.Client, proj.Status, hours))
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  e: edit  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
