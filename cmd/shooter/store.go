package main

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/highscore"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// High score backends
const (
	storeJSON   = "json"
	storeSQLite = "sqlite"
)

// resettableStore is a high score store that can also be cleared.
type resettableStore interface {
	highscore.Store
	Reset() error
}

// openStore opens the backend selected by --store. The returned func
// releases it.
func openStore() (resettableStore, func(), error) {
	switch flagStore {
	case storeJSON, "":
		return highscore.NewFileStore(flagHighScoreFile), func() {}, nil
	case storeSQLite:
		db, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, nil, err
		}
		return highscore.NewSQLStore(db, shooter.GameID), func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (want %s or %s)", flagStore, storeJSON, storeSQLite)
	}
}
