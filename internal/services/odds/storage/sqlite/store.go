// Package sqlite provides the SQLite-backed battle record store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/riskodds/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/riskodds/internal/services/odds/storage"
	"github.com/louisbranch/riskodds/internal/services/odds/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const recordColumns = `attackers, defenders, schedule_key, win_probability, expected_loss, hits, created_at, updated_at`

// Store persists battle records in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the store at path and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutBattleRecord upserts a record keyed by attackers, defenders and schedule.
func (s *Store) PutBattleRecord(ctx context.Context, record storage.BattleRecord) (storage.BattleRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.BattleRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.BattleRecord{}, fmt.Errorf("storage is not configured")
	}
	if record.Attackers < 0 || record.Defenders < 0 {
		return storage.BattleRecord{}, fmt.Errorf("unit counts must be non-negative")
	}
	now := toMillis(s.now())

	row := s.sqlDB.QueryRowContext(ctx,
		`INSERT INTO battle_records (
		   record_key, attackers, defenders, schedule_key,
		   win_probability, expected_loss, hits, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)
		 ON CONFLICT(record_key) DO UPDATE SET
		   win_probability = excluded.win_probability,
		   expected_loss = excluded.expected_loss,
		   hits = battle_records.hits + 1,
		   updated_at = excluded.updated_at
		 RETURNING `+recordColumns,
		record.Key(),
		record.Attackers,
		record.Defenders,
		record.ScheduleKey,
		record.WinProbability,
		record.ExpectedLoss,
		now,
		now,
	)
	stored, err := scanRecord(row)
	if err != nil {
		if isBusy(err) {
			return storage.BattleRecord{}, fmt.Errorf("put battle record: database busy: %w", err)
		}
		return storage.BattleRecord{}, fmt.Errorf("put battle record: %w", err)
	}
	return stored, nil
}

// GetBattleRecord returns one record or storage.ErrNotFound.
func (s *Store) GetBattleRecord(ctx context.Context, attackers, defenders int, scheduleKey string) (storage.BattleRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.BattleRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.BattleRecord{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM battle_records WHERE record_key = ?`,
		storage.RecordKey(attackers, defenders, scheduleKey),
	)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.BattleRecord{}, storage.ErrNotFound
		}
		return storage.BattleRecord{}, fmt.Errorf("get battle record: %w", err)
	}
	return record, nil
}

// ListBattleRecords returns one page of records in key order.
func (s *Store) ListBattleRecords(ctx context.Context, req storage.ListBattleRecordsRequest) (storage.BattleRecordPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.BattleRecordPage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.BattleRecordPage{}, fmt.Errorf("storage is not configured")
	}
	if req.PageSize <= 0 {
		return storage.BattleRecordPage{}, fmt.Errorf("page size must be greater than zero")
	}

	var (
		where  []string
		params []any
	)
	if req.AfterKey != "" {
		where = append(where, "record_key > ?")
		params = append(params, req.AfterKey)
	}
	if req.FilterClause != "" {
		where = append(where, req.FilterClause)
		params = append(params, req.FilterParams...)
	}
	query := `SELECT ` + recordColumns + ` FROM battle_records`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY record_key ASC LIMIT ?"
	params = append(params, req.PageSize+1)

	rows, err := s.sqlDB.QueryContext(ctx, query, params...)
	if err != nil {
		return storage.BattleRecordPage{}, fmt.Errorf("list battle records: %w", err)
	}
	defer rows.Close()

	page := storage.BattleRecordPage{Records: make([]storage.BattleRecord, 0, req.PageSize)}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return storage.BattleRecordPage{}, fmt.Errorf("list battle records: %w", err)
		}
		page.Records = append(page.Records, record)
	}
	if err := rows.Err(); err != nil {
		return storage.BattleRecordPage{}, fmt.Errorf("list battle records: %w", err)
	}
	if len(page.Records) > req.PageSize {
		page.Records = page.Records[:req.PageSize]
		page.NextKey = page.Records[req.PageSize-1].Key()
	}
	return page, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (storage.BattleRecord, error) {
	var (
		record    storage.BattleRecord
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(
		&record.Attackers,
		&record.Defenders,
		&record.ScheduleKey,
		&record.WinProbability,
		&record.ExpectedLoss,
		&record.Hits,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.BattleRecord{}, err
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

func isBusy(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
			return true
		}
	}
	return false
}

var _ storage.BattleRecordStore = (*Store)(nil)
