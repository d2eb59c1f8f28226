package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestBestScoreMissingIsZero(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore(context.Background(), "2048")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("best = %d, want 0", best)
	}
}

func TestBestScoreSetAndClear(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if err := store.SetBestScore(ctx, "2048", 1024); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	if err := store.SetBestScore(ctx, "2048", 4096); err != nil {
		t.Fatalf("SetBestScore() overwrite failed: %v", err)
	}
	if err := store.SetBestScore(ctx, "2048_5x5", 64); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}

	if best, _ := store.BestScore(ctx, "2048"); best != 4096 {
		t.Errorf("best = %d, want 4096", best)
	}

	if err := store.ClearBestScore(ctx, "2048"); err != nil {
		t.Fatalf("ClearBestScore() failed: %v", err)
	}
	if best, _ := store.BestScore(ctx, "2048"); best != 0 {
		t.Errorf("best after clear = %d, want 0", best)
	}
	if best, _ := store.BestScore(ctx, "2048_5x5"); best != 64 {
		t.Errorf("other variant best = %d, want 64", best)
	}

	if err := store.SetBestScore(ctx, "2048", -1); err == nil {
		t.Error("negative best score accepted")
	}
}

func TestBestScoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.BestScoresFor("2048").SaveBestScore(ctx, 2048); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	best, err := reopened.BestScoresFor("2048").LoadBestScore(ctx)
	if err != nil {
		t.Fatalf("LoadBestScore() failed: %v", err)
	}
	if best != 2048 {
		t.Errorf("best after reopen = %d, want 2048", best)
	}
}

func TestBestScoreCorrupt(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	tests := []struct {
		name  string
		value any
	}{
		{"text", "not a number"},
		{"negative", -5},
		{"fraction", 12.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.db.Exec(
				`INSERT INTO best_scores (game_id, score) VALUES ('2048', ?)
				 ON CONFLICT(game_id) DO UPDATE SET score = excluded.score`,
				tt.value,
			)
			if err != nil {
				t.Fatalf("seeding corrupt value: %v", err)
			}

			_, err = store.BestScore(ctx, "2048")
			if !errors.Is(err, ErrCorruptBestScore) {
				t.Errorf("BestScore() error = %v, want ErrCorruptBestScore", err)
			}
		})
	}
}

func TestBestScoresAdapter(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	best := store.BestScoresFor("2048_6x6")

	if err := best.SaveBestScore(ctx, 300); err != nil {
		t.Fatal(err)
	}
	if got, _ := best.LoadBestScore(ctx); got != 300 {
		t.Errorf("LoadBestScore() = %d, want 300", got)
	}
	if err := best.ClearBestScore(ctx); err != nil {
		t.Fatal(err)
	}
	if got, _ := best.LoadBestScore(ctx); got != 0 {
		t.Errorf("LoadBestScore() after clear = %d, want 0", got)
	}
}
