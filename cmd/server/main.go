package main

import (
	"context"
	"fmt"
	"log/slog"
	"message-producer/contract"
	"message-producer/domain"
	grpc2 "message-producer/grpc"
	"message-producer/internal"
	"message-producer/sink"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Optional journal
	var journal contract.EmissionSink
	if config.JournalEnabled() {
		db, repository, err := internal.OpenJournal(config, log, false)
		if err != nil {
			return err
		}
		defer func() {
			log.Info("Closing journal...")
			_ = db.Close()
		}()
		journal = sink.NewJournalSink(repository, log)
	}

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. gRPC Server Setup
	address := config.Address()
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	return serve(ctx, log, listener, journal)
}

// serve runs the producer service on listener until ctx is done or Serve fails.
func serve(ctx context.Context, log *slog.Logger, listener net.Listener, journal contract.EmissionSink) error {
	s := grpc.NewServer()
	grpc2.RegisterProducerServiceServer(s, grpc2.NewProducerServer(log, domain.AnotherMessageProducer, journal))

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", listener.Addr().String(), "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 5. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		s.Stop()
		return err
	}

	s.GracefulStop()
	log.Info("Program stopped cleanly")
	return nil
}
