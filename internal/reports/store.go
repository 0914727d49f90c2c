package reports

import (
	"context"
	"database/sql"
	"time"
)

const queryTimeout = 10 * time.Second

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Insert writes one report row. created_at is assigned by the database at
// write time and scanned back; callers must not set it.
func (s *Store) Insert(ctx context.Context, r *Report) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	const q = `
		INSERT INTO reports
		(teacher_name, subordinate_teacher_name, hostel_name,
		 general_comments, maintenance_required, complaints, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`
	row := s.db.QueryRowContext(ctx, q,
		r.TeacherName,
		r.SubordinateTeacherName,
		r.HostelName,
		r.GeneralComments,
		r.MaintenanceRequired,
		r.Complaints,
		r.ImageURL,
	)
	return row.Scan(&r.ID, &r.CreatedAt)
}

func (s *Store) List(ctx context.Context) ([]Report, error) {
	const q = selectColumns + ` FROM reports ORDER BY created_at ASC`
	return s.query(ctx, q)
}

// ListCreatedSince returns rows with created_at in [since, now), oldest first.
func (s *Store) ListCreatedSince(ctx context.Context, since time.Time) ([]Report, error) {
	const q = selectColumns + ` FROM reports WHERE created_at >= $1 ORDER BY created_at ASC`
	return s.query(ctx, q, since)
}

const selectColumns = `
	SELECT id, teacher_name, subordinate_teacher_name, hostel_name,
	       general_comments, maintenance_required, complaints, image_url, created_at`

func (s *Store) query(ctx context.Context, query string, args ...interface{}) ([]Report, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Report
	for rows.Next() {
		var r Report
		if err := rows.Scan(&r.ID, &r.TeacherName, &r.SubordinateTeacherName, &r.HostelName,
			&r.GeneralComments, &r.MaintenanceRequired, &r.Complaints, &r.ImageURL, &r.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	const q = `DELETE FROM reports WHERE id = $1`
	_, err := s.db.ExecContext(ctx, q, id)
	return err
}
