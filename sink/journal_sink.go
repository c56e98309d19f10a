package sink

import (
	"context"
	"fmt"
	"log/slog"
	"message-producer/contract"
	"message-producer/domain"
)

type JournalSink struct {
	repository contract.IEmissionRepository
	log        *slog.Logger
}

func NewJournalSink(repository contract.IEmissionRepository, log *slog.Logger) JournalSink {
	return JournalSink{repository: repository, log: log}
}

func (j JournalSink) Consume(_ context.Context, e domain.Emission) error {
	if err := j.repository.StoreEmission(e); err != nil {
		return fmt.Errorf("journal store failed: %w", err)
	}
	j.log.Debug("Emission journaled", "id", e.ID, "sequence", e.Sequence)
	return nil
}
