package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amandalowe/creditcoach/internal/domain"
)

// ErrSnapshotNotFound is returned when a snapshot id does not exist.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SQLiteSnapshotRepo implements SnapshotRepo using a SQLite database.
type SQLiteSnapshotRepo struct {
	db *sql.DB
}

// NewSQLiteSnapshotRepo creates a new SQLiteSnapshotRepo.
func NewSQLiteSnapshotRepo(db *sql.DB) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: db}
}

func (r *SQLiteSnapshotRepo) Create(ctx context.Context, s *Snapshot) error {
	planJSON, err := json.Marshal(s.Plan)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}

	query := `INSERT INTO plan_snapshots (id, created_at, catalog_version, score, tier, week_count, module_count, total_minutes, plan_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.CreatedAt.UTC().Format(time.RFC3339),
		s.CatalogVersion,
		s.Score,
		string(s.Tier),
		s.WeekCount,
		s.ModuleCount,
		s.TotalMinutes,
		string(planJSON),
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteSnapshotRepo) GetByID(ctx context.Context, id string) (*Snapshot, error) {
	query := `SELECT id, created_at, catalog_version, score, tier, week_count, module_count, total_minutes, plan_json
		FROM plan_snapshots WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	return s, err
}

func (r *SQLiteSnapshotRepo) List(ctx context.Context, limit int) ([]*Snapshot, error) {
	query := `SELECT id, created_at, catalog_version, score, tier, week_count, module_count, total_minutes, plan_json
		FROM plan_snapshots ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

func (r *SQLiteSnapshotRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plan_snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*Snapshot, error) {
	var (
		s         Snapshot
		createdAt string
		tier      string
		planJSON  string
	)
	err := row.Scan(&s.ID, &createdAt, &s.CatalogVersion, &s.Score, &tier,
		&s.WeekCount, &s.ModuleCount, &s.TotalMinutes, &planJSON)
	if err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot timestamp: %w", err)
	}
	s.CreatedAt = t
	s.Tier = domain.Tier(tier)

	var plan domain.Plan
	if err := json.Unmarshal([]byte(planJSON), &plan); err != nil {
		return nil, fmt.Errorf("decoding stored plan: %w", err)
	}
	s.Plan = &plan

	return &s, nil
}
