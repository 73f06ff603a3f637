package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agencyhub/agency-api/internal/core/ports"
)

const collectionSettings = "settings"

// SettingsStore keeps small configuration tables (permission overrides and
// the like) as free-form records grouped by a logical table name.
type SettingsStore struct {
	col *mongo.Collection
}

func NewSettingsStore(db *mongo.Database) *SettingsStore {
	return &SettingsStore{col: db.Collection(collectionSettings)}
}

var _ ports.SettingsStore = (*SettingsStore)(nil)

func (s *SettingsStore) Get(ctx context.Context, table, id string) (ports.SettingsRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc bson.M
	err := s.col.FindOne(ctx, bson.M{"table": table, "id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("settings record %s/%s not found", table, id)
		}
		return nil, fmt.Errorf("get settings record: %w", err)
	}
	return recordFromDoc(doc), nil
}

func (s *SettingsStore) List(ctx context.Context, table string) ([]ports.SettingsRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := s.col.Find(ctx, bson.M{"table": table})
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	out := make([]ports.SettingsRecord, 0, len(docs))
	for _, doc := range docs {
		out = append(out, recordFromDoc(doc))
	}
	return out, nil
}

func (s *SettingsStore) Upsert(ctx context.Context, table string, record ports.SettingsRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, _ := record["id"].(string)
	if id == "" {
		return fmt.Errorf("settings record requires a string id")
	}

	doc := bson.M{"table": table}
	for k, v := range record {
		doc[k] = v
	}

	_, err := s.col.ReplaceOne(ctx,
		bson.M{"table": table, "id": id},
		doc,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert settings record: %w", err)
	}
	return nil
}

// recordFromDoc strips storage-only fields so callers only see record content.
func recordFromDoc(doc bson.M) ports.SettingsRecord {
	rec := ports.SettingsRecord{}
	for k, v := range doc {
		if k == "_id" || k == "table" {
			continue
		}
		if arr, ok := v.(bson.A); ok {
			vals := make([]any, len(arr))
			copy(vals, arr)
			rec[k] = vals
			continue
		}
		rec[k] = v
	}
	return rec
}
