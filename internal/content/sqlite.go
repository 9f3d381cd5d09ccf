package content

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/louisbranch/datalab/internal/platform/storage/sqlitemigrate"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// SQLiteSource reads content from a SQLite database so the site can be
// pointed at live data without changing any rendering code.
type SQLiteSource struct {
	DB *sql.DB
}

// OpenSQLite opens dsn and ensures the content schema exists.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sqlitemigrate.Open(ctx, dsn, migrationFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open content db: %w", err)
	}
	return db, nil
}

// Load reads every content table in display order.
func (s SQLiteSource) Load(ctx context.Context) (Snapshot, error) {
	if s.DB == nil {
		return Snapshot{}, errors.New("sqlite source db is required")
	}
	projects, err := s.loadProjects(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	members, err := s.loadMembers(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	department, err := s.loadDepartment(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Projects: projects, Members: members, Department: department}, nil
}

func (s SQLiteSource) loadProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, title, category, summary, description, thumbnail, status, date
FROM projects ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	index := map[string]int{}
	for rows.Next() {
		var p Project
		var status string
		if err := rows.Scan(&p.ID, &p.Title, &p.Category, &p.Summary, &p.Description, &p.Thumbnail, &status, &p.Date); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p.Status = Status(status)
		index[p.ID] = len(projects)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	tagRows, err := s.DB.QueryContext(ctx, `SELECT project_id, tag FROM project_tags ORDER BY project_id, position`)
	if err != nil {
		return nil, fmt.Errorf("query project tags: %w", err)
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var projectID, tag string
		if err := tagRows.Scan(&projectID, &tag); err != nil {
			return nil, fmt.Errorf("scan project tag: %w", err)
		}
		if idx, ok := index[projectID]; ok {
			projects[idx].Tags = append(projects[idx].Tags, tag)
		}
	}
	if err := tagRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project tags: %w", err)
	}
	return projects, nil
}

func (s SQLiteSource) loadMembers(ctx context.Context) ([]Member, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT name, role, major, image, description FROM members ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.Name, &m.Role, &m.Major, &m.Image, &m.Description); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return members, nil
}

func (s SQLiteSource) loadDepartment(ctx context.Context) (Department, error) {
	var d Department
	err := s.DB.QueryRowContext(ctx, `SELECT title, description, url FROM department WHERE id = 1`).
		Scan(&d.Title, &d.Description, &d.URL)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Department{}, fmt.Errorf("query department: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT name, title, research, description, image FROM professors ORDER BY position`)
	if err != nil {
		return Department{}, fmt.Errorf("query professors: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p Professor
		if err := rows.Scan(&p.Name, &p.Title, &p.Research, &p.Description, &p.Image); err != nil {
			return Department{}, fmt.Errorf("scan professor: %w", err)
		}
		d.Professors = append(d.Professors, p)
	}
	if err := rows.Err(); err != nil {
		return Department{}, fmt.Errorf("iterate professors: %w", err)
	}
	return d, nil
}

// Import replaces the database content with snapshot in one transaction.
func Import(ctx context.Context, db *sql.DB, snapshot Snapshot) error {
	if db == nil {
		return errors.New("content db is required")
	}
	snapshot = snapshot.normalize()
	if err := snapshot.Validate(); err != nil {
		return fmt.Errorf("validate content: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	if err := importTx(ctx, tx, snapshot); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func importTx(ctx context.Context, tx *sql.Tx, snapshot Snapshot) error {
	for _, table := range []string{"project_tags", "projects", "members", "professors", "department"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	for pos, p := range snapshot.Projects {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO projects (id, position, title, category, summary, description, thumbnail, status, date)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, pos, p.Title, p.Category, p.Summary, p.Description, p.Thumbnail, string(p.Status), p.Date,
		); err != nil {
			return fmt.Errorf("insert project %q: %w", p.ID, err)
		}
		for tagPos, tag := range p.Tags {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO project_tags (project_id, position, tag) VALUES (?, ?, ?)`,
				p.ID, tagPos, tag,
			); err != nil {
				return fmt.Errorf("insert tag for %q: %w", p.ID, err)
			}
		}
	}
	for pos, m := range snapshot.Members {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO members (position, name, role, major, image, description) VALUES (?, ?, ?, ?, ?, ?)`,
			pos, m.Name, m.Role, m.Major, m.Image, m.Description,
		); err != nil {
			return fmt.Errorf("insert member %q: %w", m.Name, err)
		}
	}
	d := snapshot.Department
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO department (id, title, description, url) VALUES (1, ?, ?, ?)`,
		d.Title, d.Description, d.URL,
	); err != nil {
		return fmt.Errorf("insert department: %w", err)
	}
	for pos, p := range d.Professors {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO professors (position, name, title, research, description, image) VALUES (?, ?, ?, ?, ?, ?)`,
			pos, p.Name, p.Title, p.Research, p.Description, p.Image,
		); err != nil {
			return fmt.Errorf("insert professor %q: %w", p.Name, err)
		}
	}
	return nil
}
