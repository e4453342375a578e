package surrealdb

import (
	"context"
	"fmt"
	"time"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/models"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// InternalStore persists system key-value records.
type InternalStore struct {
	db     *surrealdb.DB
	logger *common.Logger
}

func NewInternalStore(db *surrealdb.DB, logger *common.Logger) *InternalStore {
	return &InternalStore{
		db:     db,
		logger: logger,
	}
}

func (s *InternalStore) GetKeyValue(ctx context.Context, key string) (*models.InternalKeyValue, error) {
	kv, err := surrealdb.Select[models.InternalKeyValue](ctx, s.db, surrealmodels.NewRecordID("internal_kv", key))
	if err != nil {
		return nil, fmt.Errorf("failed to select key-value: %w", err)
	}
	if kv == nil || kv.Key == "" {
		return nil, fmt.Errorf("key %q not found", key)
	}
	return kv, nil
}

func (s *InternalStore) SetKeyValue(ctx context.Context, key, value string) error {
	record := &models.InternalKeyValue{
		Key:      key,
		Value:    value,
		DateTime: time.Now().UTC(),
	}

	sql := "UPSERT $rid CONTENT $record"
	vars := map[string]any{"rid": surrealmodels.NewRecordID("internal_kv", key), "record": record}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		_, err := surrealdb.Query[[]models.InternalKeyValue](ctx, s.db, sql, vars)
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("failed to set key-value after retries: %w", lastErr)
}

// Compile-time check
var _ interfaces.InternalStore = (*InternalStore)(nil)
