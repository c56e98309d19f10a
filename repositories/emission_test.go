package repositories

import (
	"log/slog"
	"message-producer/domain"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func storedEmissions(t *testing.T, repository EmissionRepository) []domain.Emission {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	emissions := []domain.Emission{
		domain.NewEmission(1, domain.Produce(), at),
		domain.NewEmission(2, domain.Produce(), at.Add(1*time.Minute)),
		domain.NewEmission(3, domain.Produce(), at.Add(2*time.Minute)),
	}
	for _, e := range emissions {
		require.NoError(t, repository.StoreEmission(e))
	}
	return emissions
}

func Test_Store_Multiple_Emissions(t *testing.T) {
	req := require.New(t)
	repository := NewEmissionRepository(openDB(t), slog.Default(), nil)
	emissions := storedEmissions(t, repository)

	fetched, cursor, err := repository.GetEmissions(nil)

	req.NoError(err)
	req.NotNil(cursor)
	req.Equal(lo.Reverse(emissions), fetched)
}

func Test_Store_Multiple_Emissions_And_Paginate(t *testing.T) {
	req := require.New(t)
	limit := 2
	repository := NewEmissionRepository(openDB(t), slog.Default(), &limit)
	emissions := storedEmissions(t, repository)

	// When the first page is read
	firstPage, cursor, err := repository.GetEmissions(nil)
	req.NoError(err)
	req.Len(firstPage, limit)
	req.Equal(emissions[2], firstPage[0])
	req.Equal(emissions[1], firstPage[1])

	// Then the cursor leads to the remaining emission
	secondPage, _, err := repository.GetEmissions(cursor)
	req.NoError(err)
	req.Equal([]domain.Emission{emissions[0]}, secondPage)
}

func Test_Get_Emissions_Empty_Journal(t *testing.T) {
	req := require.New(t)
	repository := NewEmissionRepository(openDB(t), slog.Default(), nil)

	fetched, _, err := repository.GetEmissions(nil)

	req.NoError(err)
	req.Empty(fetched)
}

func Test_Store_Emissions_Before_Epoch_Keep_Order(t *testing.T) {
	req := require.New(t)
	repository := NewEmissionRepository(openDB(t), slog.Default(), nil)

	// Given emissions dated before 1970 and one after
	older := domain.NewEmission(1, domain.Produce(), time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC))
	old := domain.NewEmission(2, domain.Produce(), time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC))
	recent := domain.NewEmission(3, domain.Produce(), time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	for _, e := range []domain.Emission{older, old, recent} {
		req.NoError(repository.StoreEmission(e))
	}

	// When the journal is read
	fetched, _, err := repository.GetEmissions(nil)

	// Then it is still newest first
	req.NoError(err)
	req.Equal([]domain.Emission{recent, old, older}, fetched)
}
