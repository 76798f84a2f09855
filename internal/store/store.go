// Package store persists quote documents in Firestore, one document
// per preventivo in a single collection. Documents are written and read
// whole; there are no partial patches.
package store

import (
	"context"
	"fmt"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/quote"
)

// Store wraps a Firestore client scoped to one collection.
type Store struct {
	client     *firestore.Client
	collection string
}

func New(client *firestore.Client, collection string) *Store {
	return &Store{client: client, collection: collection}
}

// quoteDoc is the persisted shape of a quote. Firestore map keys are
// strings, so the integer-keyed day settings are normalized here:
// parsed once on load, formatted once on save. Nowhere else in the
// codebase handles string day keys.
type quoteDoc struct {
	quote.Quote
	RawDaySettings map[string]quote.DaySettings `firestore:"daySettings"`
}

func encodeDayKeys(settings map[int]quote.DaySettings) map[string]quote.DaySettings {
	out := make(map[string]quote.DaySettings, len(settings))
	for day, ds := range settings {
		out[strconv.Itoa(day)] = ds
	}
	return out
}

func decodeDayKeys(raw map[string]quote.DaySettings) map[int]quote.DaySettings {
	out := make(map[int]quote.DaySettings, len(raw))
	for key, ds := range raw {
		day, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		out[day] = ds
	}
	return out
}

// Get retrieves a quote by id. A missing document returns (nil, nil).
func (s *Store) Get(ctx context.Context, id string) (*quote.Quote, error) {
	snap, err := s.client.Collection(s.collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get quote %s: %w", id, err)
	}

	var doc quoteDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decode quote %s: %w", id, err)
	}
	q := doc.Quote
	q.ID = snap.Ref.ID
	q.DaySettings = decodeDayKeys(doc.RawDaySettings)
	// Tolerate sparse documents from older editor versions.
	if q.Sections == nil {
		q.Sections = []quote.Section{}
	}
	for i := range q.Sections {
		if q.Sections[i].Slots == nil {
			q.Sections[i].Slots = []quote.Slot{}
		}
	}
	return &q, nil
}

// Put writes the full quote document, replacing whatever is stored.
func (s *Store) Put(ctx context.Context, q *quote.Quote) error {
	doc := quoteDoc{Quote: *q, RawDaySettings: encodeDayKeys(q.DaySettings)}
	if _, err := s.client.Collection(s.collection).Doc(q.ID).Set(ctx, doc); err != nil {
		return fmt.Errorf("put quote %s: %w", q.ID, err)
	}
	return nil
}

// List returns every quote in the collection.
func (s *Store) List(ctx context.Context) ([]quote.Quote, error) {
	iter := s.client.Collection(s.collection).Documents(ctx)
	defer iter.Stop()

	var quotes []quote.Quote
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list quotes: %w", err)
		}
		var doc quoteDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode quote %s: %w", snap.Ref.ID, err)
		}
		q := doc.Quote
		q.ID = snap.Ref.ID
		q.DaySettings = decodeDayKeys(doc.RawDaySettings)
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// Delete removes a quote. Deleting a missing document is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.client.Collection(s.collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete quote %s: %w", id, err)
	}
	return nil
}

// Close releases the underlying Firestore client.
func (s *Store) Close() error {
	return s.client.Close()
}
