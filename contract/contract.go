//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"message-producer/domain"
)

type Producer interface {
	Produce() string
}

// EmissionSink receives every emission of a run, in sequence order.
type EmissionSink interface {
	Consume(ctx context.Context, e domain.Emission) error
}

// Flusher is implemented by sinks that buffer until the end of a run.
type Flusher interface {
	Flush() error
}

type IEmissionRepository interface {
	StoreEmission(emission domain.Emission) error
	GetEmissions(cursor *string) ([]domain.Emission, *string, error)
}
