package client

import (
	"context"
	grpc2 "message-producer/grpc"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type ProducerClient struct {
	conn grpc.ClientConnInterface
}

func NewProducerClient(conn grpc.ClientConnInterface) *ProducerClient {
	return &ProducerClient{conn: conn}
}

// Produce asks the producer behind conn for its message.
func Produce(ctx context.Context, conn grpc.ClientConnInterface) (string, error) {
	return NewProducerClient(conn).Produce(ctx)
}

func (c *ProducerClient) Produce(ctx context.Context) (string, error) {
	out := new(wrapperspb.StringValue)
	if err := c.conn.Invoke(ctx, grpc2.ProduceFullMethod, &emptypb.Empty{}, out); err != nil {
		return "", err
	}
	return out.GetValue(), nil
}
