package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"message-producer/contract"
	"message-producer/domain"
	"message-producer/internal"
	"message-producer/runtime"
	"message-producer/sink"
	"os"
	"os/signal"
	"syscall"

	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run keeps every defer inside a function that returns, so the journal is
// closed before the process exits.
func run() error {
	config, err := internal.LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return emit(ctx, config, log, os.Stdout)
}

func emit(ctx context.Context, config internal.Config, log *slog.Logger, stdout io.Writer) error {
	output, err := sink.New(sink.Format(config.OutputFormat), stdout, config.Colours)
	if err != nil {
		return err
	}
	sinks := []contract.EmissionSink{output}

	if config.JournalEnabled() {
		db, repository, err := internal.OpenJournal(config, log, false)
		if err != nil {
			return err
		}
		defer func() {
			log.Info("Closing journal...")
			_ = db.Close()
		}()
		sinks = append(sinks, sink.NewJournalSink(repository, log))
	}

	emitter := runtime.NewEmitter(log, domain.AnotherMessageProducer,
		config.NumberOfWorkers, config.SinkTimeout, sinks...)
	emissions, err := emitter.Emit(ctx, config.EmitCount)
	if err != nil {
		return fmt.Errorf("emission failed: %w", err)
	}
	log.Info("Emission done", "count", len(emissions), "format", config.OutputFormat)
	return nil
}
