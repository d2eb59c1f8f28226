package tui

import (
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// BindBestScores makes every 2048 board created from now on keep its best
// score in the given store. A nil store leaves boards with an in-memory best.
func BindBestScores(store *storage.Store) {
	if store == nil {
		t2048.SetBestScoreSource(nil)
		return
	}
	t2048.SetBestScoreSource(func(gameID string) t2048.BestScoreStore {
		return store.BestScoresFor(gameID)
	})
}
