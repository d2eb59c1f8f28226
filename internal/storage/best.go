package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// ErrCorruptBestScore is returned when a stored best score cannot be read
// back as a non-negative integer.
var ErrCorruptBestScore = errors.New("storage: corrupt best score")

// BestScore returns the best-score record for the game.
// A game with no record has a best score of 0.
func (s *Store) BestScore(ctx context.Context, gameID string) (int, error) {
	var raw sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT score FROM best_scores WHERE game_id = ?",
		gameID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	score, err := strconv.Atoi(raw.String)
	if !raw.Valid || err != nil || score < 0 {
		return 0, fmt.Errorf("%w for %s: %q", ErrCorruptBestScore, gameID, raw.String)
	}
	return score, nil
}

// SetBestScore replaces the best-score record for the game.
func (s *Store) SetBestScore(ctx context.Context, gameID string, score int) error {
	if score < 0 {
		return fmt.Errorf("storage: negative best score %d", score)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO best_scores (game_id, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// ClearBestScore deletes the best-score record for the game.
func (s *Store) ClearBestScore(ctx context.Context, gameID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM best_scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear best score: %w", err)
	}
	return nil
}

// BestScores binds a Store to one game ID. It satisfies t2048.BestScoreStore.
type BestScores struct {
	store  *Store
	gameID string
}

// BestScoresFor returns the best-score record of gameID.
func (s *Store) BestScoresFor(gameID string) *BestScores {
	return &BestScores{store: s, gameID: gameID}
}

// LoadBestScore returns the stored best score, 0 when none is stored.
func (b *BestScores) LoadBestScore(ctx context.Context) (int, error) {
	return b.store.BestScore(ctx, b.gameID)
}

// SaveBestScore stores score as the new best.
func (b *BestScores) SaveBestScore(ctx context.Context, score int) error {
	return b.store.SetBestScore(ctx, b.gameID, score)
}

// ClearBestScore erases the record.
func (b *BestScores) ClearBestScore(ctx context.Context) error {
	return b.store.ClearBestScore(ctx, b.gameID)
}
