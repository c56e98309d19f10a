package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"message-producer/domain"
	"message-producer/mocks"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestProducerServer_Produce_Without_Journal(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	server := NewProducerServer(log, domain.AnotherMessageProducer, nil)

	response, err := server.Produce(context.Background(), &emptypb.Empty{})

	req.NoError(err)
	req.Equal(domain.AnotherMessage, response.GetValue())
}

func TestProducerServer_Produce_Journals_Each_Call(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	journal := mocks.NewMockEmissionSink(ctrl)

	var sequences []int
	journal.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e domain.Emission) error {
			req.Equal(domain.AnotherMessage, e.Content)
			sequences = append(sequences, e.Sequence)
			return nil
		}).Times(2)

	server := NewProducerServer(log, domain.AnotherMessageProducer, journal)
	for range 2 {
		_, err := server.Produce(context.Background(), &emptypb.Empty{})
		req.NoError(err)
	}

	req.Equal([]int{1, 2}, sequences)
}

func TestProducerServer_Produce_Journal_Failure(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	journal := mocks.NewMockEmissionSink(ctrl)
	journal.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(fmt.Errorf("disk full")).Times(1)

	server := NewProducerServer(log, domain.AnotherMessageProducer, journal)
	_, err := server.Produce(context.Background(), &emptypb.Empty{})

	req.Equal(codes.Internal, status.Code(err))
}
