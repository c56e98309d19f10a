package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"message-producer/contract"
	"message-producer/domain"
	"message-producer/errors"
	"sync"
	"time"

	"github.com/samber/lo"
)

// Emitter invokes a producer many times and hands every result to its sinks.
//
// Production runs on a fixed pool of goroutines. Delivery happens afterwards,
// in sequence order, so sinks never see emissions out of order and never
// need to be safe for concurrent use.
type Emitter struct {
	log         *slog.Logger
	producer    contract.Producer
	workers     int
	sinkTimeout time.Duration
	sinks       []contract.EmissionSink
	now         func() time.Time
}

func NewEmitter(log *slog.Logger, producer contract.Producer, workers int,
	sinkTimeout time.Duration, sinks ...contract.EmissionSink) *Emitter {
	return &Emitter{
		log:         log,
		producer:    producer,
		workers:     max(workers, 1),
		sinkTimeout: sinkTimeout,
		sinks:       sinks,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Emit produces count emissions numbered 1..count and delivers them.
// A count of zero or less is a no-op.
func (e *Emitter) Emit(ctx context.Context, count int) ([]domain.Emission, error) {
	if count <= 0 {
		return nil, nil
	}
	emissions, err := e.produce(ctx, count)
	if err != nil {
		return nil, err
	}
	e.log.Debug("Emissions produced", "count", len(emissions), "workers", e.workers)

	for _, emission := range emissions {
		for _, sink := range e.sinks {
			if err := e.deliver(ctx, sink, emission); err != nil {
				return nil, fmt.Errorf("delivery of emission %d failed: %w", emission.Sequence, err)
			}
		}
	}
	for _, flusher := range lo.FilterMap(e.sinks, func(s contract.EmissionSink, _ int) (contract.Flusher, bool) {
		f, ok := s.(contract.Flusher)
		return f, ok
	}) {
		if err := flusher.Flush(); err != nil {
			return nil, fmt.Errorf("flush failed: %w", err)
		}
	}
	return emissions, nil
}

func (e *Emitter) produce(ctx context.Context, count int) ([]domain.Emission, error) {
	jobs := make(chan int)
	emissions := make([]domain.Emission, count)

	var wg sync.WaitGroup
	for range min(e.workers, count) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sequence := range jobs {
				emissions[sequence-1] = domain.NewEmission(sequence, e.producer.Produce(), e.now())
			}
		}()
	}

	err := ctx.Err()
	if err == nil {
	loop:
		for _, sequence := range lo.RangeFrom(1, count) {
			select {
			case jobs <- sequence:
			case <-ctx.Done():
				err = ctx.Err()
				break loop
			}
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		e.log.Debug("Context done, stopping production", "error", err)
		return nil, err
	}
	return emissions, nil
}

// deliver bounds a single Consume by sinkTimeout whether or not the sink
// watches its context. A sink still running past the deadline is abandoned
// and the run stops, so it is never called again.
func (e *Emitter) deliver(ctx context.Context, sink contract.EmissionSink, emission domain.Emission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sinkCtx, cancel := context.WithTimeout(ctx, e.sinkTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- sink.Consume(sinkCtx, emission)
	}()

	select {
	case err := <-done:
		if err != nil && ctx.Err() == nil && sinkCtx.Err() == context.DeadlineExceeded {
			return e.timeout(emission)
		}
		return err
	case <-sinkCtx.Done():
		if err := ctx.Err(); err != nil {
			return err
		}
		return e.timeout(emission)
	}
}

func (e *Emitter) timeout(emission domain.Emission) error {
	e.log.Warn("Sink timeout", "sequence", emission.Sequence, "timeout", e.sinkTimeout)
	return errors.ErrSinkTimeout
}
