// Package storage defines persistence contracts for the battle record log.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound indicates a requested battle record is missing.
var ErrNotFound = errors.New("record not found")

// BattleRecord is one computed battle and how often it was requested.
type BattleRecord struct {
	Attackers      int
	Defenders      int
	ScheduleKey    string
	WinProbability float64
	ExpectedLoss   float64
	Hits           int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Key returns the record identity, e.g. "10:5:1,1".
func (r BattleRecord) Key() string {
	return RecordKey(r.Attackers, r.Defenders, r.ScheduleKey)
}

// RecordKey builds the identity of a battle record.
func RecordKey(attackers, defenders int, scheduleKey string) string {
	return fmt.Sprintf("%d:%d:%s", attackers, defenders, scheduleKey)
}

// ListBattleRecordsRequest selects one page of records ordered by key.
type ListBattleRecordsRequest struct {
	PageSize int
	// AfterKey resumes after the record with this key.
	AfterKey string
	// FilterClause is an optional SQL WHERE clause fragment.
	FilterClause string
	FilterParams []any
}

// BattleRecordPage is one page of records. NextKey is empty on the last page.
type BattleRecordPage struct {
	Records []BattleRecord
	NextKey string
}

// BattleRecordStore persists battle records.
type BattleRecordStore interface {
	// PutBattleRecord inserts the record or, when the key exists, refreshes
	// its values and increments Hits. It returns the stored record.
	PutBattleRecord(ctx context.Context, record BattleRecord) (BattleRecord, error)
	GetBattleRecord(ctx context.Context, attackers, defenders int, scheduleKey string) (BattleRecord, error)
	ListBattleRecords(ctx context.Context, req ListBattleRecordsRequest) (BattleRecordPage, error)
}
