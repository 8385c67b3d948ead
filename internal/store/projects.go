package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func (s *Store) CreateProject(name, client, hexColor, status string) (*Project, error) {
	if name == "" {
		return nil, fmt.Errorf("create project: name must not be empty")
	}
	if status == "" {
		status = StatusActive
	}
	id := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO projects (id, name, client, hex_color, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, name, client, hexColor, status, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return s.GetProject(id)
}

func (s *Store) GetProject(id string) (*Project, error) {
	p := &Project{}
	var createdAt, updatedAt string
	err := s.db.QueryRow(
		`SELECT id, name, client, hex_color, status, created_at, updated_at FROM projects WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Client, &p.HexColor, &p.Status, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return p, nil
}

func (s *Store) ListProjects() ([]Project, error) {
	rows, err := s.db.Query(
		`SELECT id, name, client, hex_color, status, created_at, updated_at FROM projects ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		var createdAt, updatedAt string
		if err := rows.Scan(&p.ID, &p.Name, &p.Client, &p.HexColor, &p.Status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *Store) UpdateProject(id, name, client, hexColor, status string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`UPDATE projects SET name = ?, client = ?, hex_color = ?, status = ?, updated_at = ? WHERE id = ?`,
		name, client, hexColor, status, now, id,
	)
	return err
}

// DeleteProject removes the project row only. Its time entries are kept
// and resolve to "Unknown" in views from then on.
func (s *Store) DeleteProject(id string) error {
	_, err := s.db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	return err
}

// ProjectLookup returns a lookup func over the current project set,
// suitable for the report and export layers.
func (s *Store) ProjectLookup() (func(id string) (*Project, bool), error) {
	projects, err := s.ListProjects()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*Project, len(projects))
	for i := range projects {
		byID[projects[i].ID] = &projects[i]
	}
	return func(id string) (*Project, bool) {
		p, ok := byID[id]
		return p, ok
	}, nil
}
