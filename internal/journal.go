package internal

import (
	"fmt"
	"log/slog"
	"message-producer/errors"
	"message-producer/repositories"

	"github.com/dgraph-io/badger/v4"
)

// OpenJournal opens the BadgerDB journal described by the config.
// The caller owns the returned database and must close it.
func OpenJournal(config Config, log *slog.Logger, readOnly bool) (*badger.DB, repositories.EmissionRepository, error) {
	if !config.JournalEnabled() {
		return nil, repositories.EmissionRepository{}, errors.ErrJournalDisabled
	}
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING)
	if readOnly {
		opts = opts.WithReadOnly(true).WithBypassLockGuard(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, repositories.EmissionRepository{}, fmt.Errorf("journal opening failed: %w", err)
	}
	return db, repositories.NewEmissionRepository(db, log, config.LimitEmissions), nil
}
