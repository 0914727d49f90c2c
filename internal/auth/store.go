package auth

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const queryTimeout = 5 * time.Second

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials are matched as stored. The deployed frontend and the existing
// tables hold plain passwords, so the comparison stays literal.

func (s *Store) AuthenticateTeacher(ctx context.Context, name, password string) error {
	const q = `SELECT name FROM teachers WHERE name = $1 AND password = $2`
	return s.authenticate(ctx, q, name, password)
}

func (s *Store) AuthenticateAdmin(ctx context.Context, name, password string) error {
	const q = `SELECT name FROM admins WHERE name = $1 AND password = $2`
	return s.authenticate(ctx, q, name, password)
}

func (s *Store) authenticate(ctx context.Context, query, name, password string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	var matched string
	if err := s.db.QueryRowContext(ctx, query, name, password).Scan(&matched); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidCredentials
		}
		return err
	}
	return nil
}

func (s *Store) ListTeachers(ctx context.Context) ([]Account, error) {
	const q = `SELECT id, name FROM teachers ORDER BY id`
	return s.list(ctx, q)
}

func (s *Store) ListAdmins(ctx context.Context) ([]Account, error) {
	const q = `SELECT id, name FROM admins ORDER BY id`
	return s.list(ctx, q)
}

func (s *Store) list(ctx context.Context, query string) ([]Account, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	accounts := []Account{}
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (s *Store) CreateTeacher(ctx context.Context, name, password string) error {
	const q = `INSERT INTO teachers (name, password) VALUES ($1, $2)`
	return s.exec(ctx, q, name, password)
}

func (s *Store) CreateAdmin(ctx context.Context, name, password string) error {
	const q = `INSERT INTO admins (name, password) VALUES ($1, $2)`
	return s.exec(ctx, q, name, password)
}

func (s *Store) DeleteTeacher(ctx context.Context, id int64) error {
	const q = `DELETE FROM teachers WHERE id = $1`
	return s.exec(ctx, q, id)
}

func (s *Store) DeleteAdmin(ctx context.Context, id int64) error {
	const q = `DELETE FROM admins WHERE id = $1`
	return s.exec(ctx, q, id)
}

func (s *Store) exec(ctx context.Context, query string, args ...interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

type seedFile struct {
	Teachers []seedAccount `yaml:"teachers"`
	Admins   []seedAccount `yaml:"admins"`
}

type seedAccount struct {
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}

// SeedFromFile inserts bootstrap accounts, skipping names that already exist.
// A missing file surfaces as os.ErrNotExist so the caller can treat it as
// "nothing to seed".
func (s *Store) SeedFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return err
	}
	const teacherQ = `INSERT INTO teachers (name, password) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`
	for _, a := range sf.Teachers {
		if a.Name == "" || a.Password == "" {
			continue
		}
		if err := s.exec(ctx, teacherQ, a.Name, a.Password); err != nil {
			return err
		}
	}
	const adminQ = `INSERT INTO admins (name, password) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`
	for _, a := range sf.Admins {
		if a.Name == "" || a.Password == "" {
			continue
		}
		if err := s.exec(ctx, adminQ, a.Name, a.Password); err != nil {
			return err
		}
	}
	return nil
}
