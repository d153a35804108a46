package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// RunResult is one finished session.
type RunResult struct {
	ID        uuid.UUID
	GameID    string
	Kills     int
	Shots     int
	Ticks     int
	CreatedAt time.Time
}

// Survived converts the run length to wall time at the given tick rate.
func (r RunResult) Survived(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	return time.Duration(r.Ticks) * time.Second / time.Duration(tickRate)
}

// SaveRun records a finished run under a fresh id.
func (s *Store) SaveRun(ctx context.Context, gameID string, stats core.RunStats) (RunResult, error) {
	run := RunResult{
		ID:        uuid.New(),
		GameID:    gameID,
		Kills:     stats.Kills,
		Shots:     stats.Shots,
		Ticks:     stats.Ticks,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, game_id, kills, shots, ticks, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID.String(), run.GameID, run.Kills, run.Shots, run.Ticks, run.CreatedAt,
	)
	if err != nil {
		return RunResult{}, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run, nil
}

// RecentRuns returns the latest runs for a game, newest first.
func (s *Store) RecentRuns(ctx context.Context, gameID string, limit int) ([]RunResult, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(ctx,
		`SELECT id, game_id, kills, shots, ticks, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

// BestRuns returns the runs with the most kills, longest survival breaking ties.
func (s *Store) BestRuns(ctx context.Context, gameID string, limit int) ([]RunResult, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(ctx,
		`SELECT id, game_id, kills, shots, ticks, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY kills DESC, ticks DESC, rowid ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) queryRuns(ctx context.Context, query string, args ...any) ([]RunResult, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunResult
	for rows.Next() {
		var (
			r         RunResult
			id        string
			createdAt any
		)
		if err := rows.Scan(&id, &r.GameID, &r.Kills, &r.Shots, &r.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("storage: bad run id %q: %w", id, err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}
