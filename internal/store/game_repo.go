package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type gameRepo struct {
	db *sql.DB
}

func (r *gameRepo) Save(ctx context.Context, g *GameResult) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.PlayedAt.IsZero() {
		g.PlayedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO games (id, profile_id, mode, skill_id, questions, correct, best_streak, duration_ms, played_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.ProfileID, g.Mode, g.SkillID,
		g.Questions, g.Correct, g.BestStreak, g.DurationMs, g.PlayedAt.UnixMilli(),
	)
	return err
}

func (r *gameRepo) Recent(ctx context.Context, profileID string, limit int) ([]GameResult, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, profile_id, mode, skill_id, questions, correct, best_streak, duration_ms, played_at
		 FROM games WHERE profile_id = ?
		 ORDER BY played_at DESC LIMIT ?`,
		profileID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []GameResult
	for rows.Next() {
		var g GameResult
		var playedAt int64
		if err := rows.Scan(&g.ID, &g.ProfileID, &g.Mode, &g.SkillID, &g.Questions, &g.Correct, &g.BestStreak, &g.DurationMs, &playedAt); err != nil {
			return nil, err
		}
		g.PlayedAt = time.UnixMilli(playedAt).UTC()
		games = append(games, g)
	}
	return games, rows.Err()
}

var (
	_ ProfileRepo = (*profileRepo)(nil)
	_ FactRepo    = (*factRepo)(nil)
	_ GameRepo    = (*gameRepo)(nil)
)
