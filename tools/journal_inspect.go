package main

import (
	"flag"
	"fmt"
	"io"
	"message-producer/domain"
	"message-producer/internal"
	"message-producer/sink"
	"os"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

func main() {
	dbPath := flag.String("db", "", "Path to the journal, BADGER_FILEPATH from the environment when empty")
	all := flag.Bool("all", false, "Follow the cursor until the journal is exhausted")
	flag.Parse()

	if err := run(os.Stdout, *dbPath, *all); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run reads the environment only when no path is given on the command line.
func run(stdout io.Writer, dbPath string, all bool) error {
	config, err := inspectConfig(dbPath)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// Read-only so that a running producer keeps its lock
	db, repository, err := internal.OpenJournal(config, log, true)
	if err != nil {
		return fmt.Errorf("error while opening journal: %w", err)
	}
	defer db.Close()

	var rows [][]string
	var cursor *string
	for {
		emissions, next, err := repository.GetEmissions(cursor)
		if err != nil {
			return fmt.Errorf("error while reading journal: %w", err)
		}
		rows = append(rows, lo.Map(emissions, func(e domain.Emission, _ int) []string {
			return sink.EmissionRow(e)
		})...)
		if !all || len(emissions) == 0 || config.LimitEmissions == nil {
			break
		}
		cursor = next
	}

	sink.RenderTable(stdout, rows)
	_, err = fmt.Fprintf(stdout, "\n%d emission(s)\n", len(rows))
	return err
}

func inspectConfig(dbPath string) (internal.Config, error) {
	if dbPath == "" {
		return internal.LoadConfig()
	}
	config, err := internal.DefaultConfig()
	if err != nil {
		return internal.Config{}, err
	}
	config.BadgerFilepath = dbPath
	return config, nil
}
