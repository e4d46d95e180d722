package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mathdash/mathdash/internal/config"
	"github.com/mathdash/mathdash/internal/curriculum"
	"github.com/mathdash/mathdash/internal/mastery"
)

type factRepo struct {
	db *sql.DB
}

func (r *factRepo) RecordAttempt(ctx context.Context, profileID, fact string, op curriculum.Operation, correct bool, responseMs int, at time.Time, th config.Mastery) (mastery.FactRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mastery.FactRecord{}, fmt.Errorf("record attempt: %w", err)
	}
	defer tx.Rollback()

	rec := mastery.NewFactRecord(profileID, fact, op)
	var lastAt int64
	err = tx.QueryRowContext(ctx,
		`SELECT attempts, correct, avg_response_ms, last_attempt_at, status, weight
		 FROM fact_records WHERE profile_id = ? AND fact = ? AND operation = ?`,
		profileID, fact, string(op),
	).Scan(&rec.Attempts, &rec.Correct, &rec.AvgResponseMs, &lastAt, &rec.Status, &rec.Weight)
	if err != nil && err != sql.ErrNoRows {
		return mastery.FactRecord{}, err
	}
	if lastAt > 0 {
		rec.LastAttemptAt = time.UnixMilli(lastAt).UTC()
	}

	rec.Apply(correct, responseMs, at.UTC(), th)

	_, err = tx.ExecContext(ctx,
		`INSERT INTO fact_records
		     (profile_id, fact, operation, attempts, correct, avg_response_ms, last_attempt_at, status, weight)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(profile_id, fact, operation) DO UPDATE SET
		     attempts = excluded.attempts,
		     correct = excluded.correct,
		     avg_response_ms = excluded.avg_response_ms,
		     last_attempt_at = excluded.last_attempt_at,
		     status = excluded.status,
		     weight = excluded.weight`,
		profileID, fact, string(op),
		rec.Attempts, rec.Correct, rec.AvgResponseMs, rec.LastAttemptAt.UnixMilli(),
		string(rec.Status), rec.Weight,
	)
	if err != nil {
		return mastery.FactRecord{}, err
	}

	if err := tx.Commit(); err != nil {
		return mastery.FactRecord{}, err
	}
	return rec, nil
}

func (r *factRepo) ForProfile(ctx context.Context, profileID string) ([]mastery.FactRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT fact, operation, attempts, correct, avg_response_ms, last_attempt_at, status, weight
		 FROM fact_records WHERE profile_id = ?`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []mastery.FactRecord
	for rows.Next() {
		rec := mastery.FactRecord{ProfileID: profileID}
		var op string
		var lastAt int64
		if err := rows.Scan(&rec.Fact, &op, &rec.Attempts, &rec.Correct, &rec.AvgResponseMs, &lastAt, &rec.Status, &rec.Weight); err != nil {
			return nil, err
		}
		rec.Operation = curriculum.Operation(op)
		if lastAt > 0 {
			rec.LastAttemptAt = time.UnixMilli(lastAt).UTC()
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *factRepo) Reset(ctx context.Context, profileID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM fact_records WHERE profile_id = ?`, profileID)
	return err
}
