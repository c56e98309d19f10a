package grpc

import (
	"context"
	"log/slog"
	"message-producer/contract"
	"message-producer/domain"
	"sync/atomic"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type ProducerServer struct {
	producer contract.Producer
	journal  contract.EmissionSink
	sequence atomic.Int64
	log      *slog.Logger
}

// NewProducerServer serves the producer remotely.
// journal may be nil, in which case calls are not recorded.
func NewProducerServer(log *slog.Logger, producer contract.Producer, journal contract.EmissionSink) *ProducerServer {
	return &ProducerServer{producer: producer, journal: journal, log: log}
}

func (s *ProducerServer) Produce(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	content := s.producer.Produce()
	sequence := int(s.sequence.Add(1))
	if s.journal != nil {
		emission := domain.NewEmission(sequence, content, time.Now().UTC())
		if err := s.journal.Consume(ctx, emission); err != nil {
			s.log.Error("Journal failed", "sequence", sequence, "error", err)
			return nil, status.Error(codes.Internal, "journal failed")
		}
	}
	s.log.Debug("Message produced", "sequence", sequence)
	return wrapperspb.String(content), nil
}
