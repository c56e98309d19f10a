package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The service only carries well-known protobuf types, so its descriptor is
// declared here instead of being generated from a .proto file.
const (
	ProducerServiceName = "producer.v1.ProducerService"
	ProduceFullMethod   = "/" + ProducerServiceName + "/Produce"
)

type ProducerServiceServer interface {
	Produce(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

func RegisterProducerServiceServer(s grpc.ServiceRegistrar, srv ProducerServiceServer) {
	s.RegisterService(&ProducerServiceDesc, srv)
}

var ProducerServiceDesc = grpc.ServiceDesc{
	ServiceName: ProducerServiceName,
	HandlerType: (*ProducerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Produce",
			Handler:    produceHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "producer/v1/producer.proto",
}

func produceHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProducerServiceServer).Produce(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProduceFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProducerServiceServer).Produce(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}
