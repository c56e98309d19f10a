package repositories

import (
	"fmt"
	"log/slog"
	"message-producer/domain"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const emissionPrefix = "emission:"

type EmissionRepository struct {
	db             *badger.DB
	log            *slog.Logger
	limitEmissions *int
}

func NewEmissionRepository(db *badger.DB, log *slog.Logger, limitEmissions *int) EmissionRepository {
	return EmissionRepository{db: db, log: log, limitEmissions: limitEmissions}
}

// StoreEmission persists an emission in BadgerDB.
// The key is formatted as "emission:{timestamp_padded}:{sequence_padded}:{uuid}" so that
// a lexicographical scan is chronological, with the uuid breaking ties.
// Timestamps before 1970 are stored as 0 and then ordered by sequence.
func (r EmissionRepository) StoreEmission(emission domain.Emission) error {
	key := fmt.Sprintf("%s%019d:%010d:%s",
		emissionPrefix,
		max(emission.ProducedAt.UnixNano(), 0),
		emission.Sequence,
		emission.ID,
	)
	value, err := fromEmission(emission)
	if err != nil {
		return err
	}
	bytes, err := proto.Marshal(value)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetEmissions returns emissions newest first.
// The returned cursor can be passed back to continue after the last emission of the page.
func (r EmissionRepository) GetEmissions(cursor *string) ([]domain.Emission, *string, error) {
	var values [][]byte
	var lastKey string
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(emissionPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			seekKey = append([]byte(emissionPrefix), []byte("9999999999999999999")...)
		default:
			seekKey = append([]byte(emissionPrefix), []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limitEmissions != nil && len(values) == *r.limitEmissions {
				r.log.Debug(fmt.Sprintf("Maximum of %d emissions reached", *r.limitEmissions))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefix):])
			err := item.Value(func(value []byte) error {
				values = append(values, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	emissions := make([]domain.Emission, 0, len(values))
	for _, b := range values {
		var value structpb.Struct
		if err = proto.Unmarshal(b, &value); err != nil {
			return nil, nil, err
		}
		emission, err := toEmission(&value)
		if err != nil {
			return nil, nil, err
		}
		emissions = append(emissions, emission)
	}
	return emissions, &lastKey, nil
}

func fromEmission(emission domain.Emission) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id":          emission.ID.String(),
		"sequence":    emission.Sequence,
		"content":     emission.Content,
		"produced_at": emission.ProducedAt.UTC().Format(time.RFC3339Nano),
	})
}

func toEmission(value *structpb.Struct) (domain.Emission, error) {
	fields := value.GetFields()
	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return domain.Emission{}, err
	}
	producedAt, err := time.Parse(time.RFC3339Nano, fields["produced_at"].GetStringValue())
	if err != nil {
		return domain.Emission{}, err
	}
	return domain.Emission{
		ID:         id,
		Sequence:   int(fields["sequence"].GetNumberValue()),
		Content:    fields["content"].GetStringValue(),
		ProducedAt: producedAt.UTC(),
	}, nil
}
