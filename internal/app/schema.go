package app

import (
	"context"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
)

const schemaVersionKey = "folio_schema_version"

// checkSchemaVersion compares the stored schema version against the code's
// SchemaVersion constant and records the current one. Holding documents are
// schemaless and the normalizer resolves every historical field variant, so
// a mismatch is logged for operators rather than triggering a rebuild.
// Returns true when the stored version was missing or different.
func checkSchemaVersion(ctx context.Context, store interfaces.InternalStore, logger *common.Logger) bool {
	stored, err := store.GetKeyValue(ctx, schemaVersionKey)
	if err == nil && stored.Value == common.SchemaVersion {
		logger.Debug().
			Str("version", common.SchemaVersion).
			Msg("Schema version matches")
		return false
	}

	if err != nil {
		logger.Info().
			Str("current", common.SchemaVersion).
			Msg("Schema version not found, initializing")
	} else {
		logger.Warn().
			Str("stored", stored.Value).
			Str("current", common.SchemaVersion).
			Msg("Schema version changed since last startup")
	}

	if err := store.SetKeyValue(ctx, schemaVersionKey, common.SchemaVersion); err != nil {
		logger.Error().Err(err).Msg("Failed to store schema version")
	}

	return true
}
