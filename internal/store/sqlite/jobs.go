package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/domain"
)

const jobColumns = "id, job_title, company, description, status, applied_date, url"

// Create inserts a new application. Status is forced to "Applied" and the
// applied date to now (UTC); callers cannot override either at creation.
func (s *Store) Create(ctx context.Context, title string, company, description, url *string) (domain.JobApplication, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO job_applications (job_title, company, description, status, applied_date, url)
		VALUES (?, ?, ?, ?, ?, ?)`,
		title, company, description, domain.StatusApplied, now.Format(time.RFC3339Nano), url,
	)
	if err != nil {
		return domain.JobApplication{}, fmt.Errorf("insert job application: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.JobApplication{}, fmt.Errorf("read inserted id: %w", err)
	}
	return s.Get(ctx, id)
}

// Get fetches one application by id.
func (s *Store) Get(ctx context.Context, id int64) (domain.JobApplication, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+jobColumns+` FROM job_applications WHERE id = ?`, id)
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.JobApplication{}, ErrNotFound
	}
	if err != nil {
		return domain.JobApplication{}, fmt.Errorf("get job application %d: %w", id, err)
	}
	return job, nil
}

// List returns applications ordered by applied date descending, optionally
// restricted to the given statuses.
func (s *Store) List(ctx context.Context, statuses ...string) ([]domain.JobApplication, error) {
	query := `SELECT ` + jobColumns + ` FROM job_applications`
	args := make([]any, 0, len(statuses))
	if len(statuses) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(statuses)), ", ")
		query += ` WHERE status IN (` + placeholders + `)`
		for _, st := range statuses {
			args = append(args, st)
		}
	}
	// datetime() keeps ordering correct across the mixed timestamp formats;
	// id breaks ties for rows created within the same second.
	query += ` ORDER BY datetime(applied_date) DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var jobs []domain.JobApplication
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job application: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Update reads the current record, applies the patch to an immutable copy
// and persists the result. Absent fields are left untouched; concurrent
// updates are last-write-wins with no conflict detection.
func (s *Store) Update(ctx context.Context, id int64, patch domain.Patch) (domain.JobApplication, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return domain.JobApplication{}, err
	}
	if patch.Empty() {
		return current, nil
	}

	updated := domain.Apply(current, patch)
	_, err = s.db.ExecContext(ctx, `
		UPDATE job_applications
		SET job_title = ?, company = ?, description = ?, status = ?, url = ?
		WHERE id = ?`,
		updated.JobTitle, updated.Company, updated.Description, updated.Status, updated.URL, id,
	)
	if err != nil {
		return domain.JobApplication{}, fmt.Errorf("update job application %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes one application by id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM job_applications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete job application %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete job application %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanJob(row scannable) (domain.JobApplication, error) {
	var (
		job     domain.JobApplication
		applied sql.NullString
	)
	err := row.Scan(&job.ID, &job.JobTitle, &job.Company, &job.Description,
		&job.Status, &applied, &job.URL)
	if err != nil {
		return domain.JobApplication{}, err
	}
	if applied.Valid {
		job.AppliedDate = parseTimestamp(applied.String)
	}
	return job, nil
}
