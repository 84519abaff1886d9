package mapping

import (
	"github.com/SscSPs/market_prices_app/internal/core/domain"
	"github.com/SscSPs/market_prices_app/internal/models"
)

// ToDomainSyncLogEntry converts a sync_logs row to a domain SyncLogEntry
func ToDomainSyncLogEntry(m models.SyncLog) domain.SyncLogEntry {
	entry := domain.SyncLogEntry{
		ID:              m.ID,
		SyncType:        m.SyncType,
		Status:          m.Status,
		ErrorMessage:    m.ErrorMessage,
		DurationSeconds: m.DurationSeconds,
		CreatedAt:       m.CreatedAt,
	}
	if m.MetalsUpdated != nil {
		entry.MetalsUpdated = *m.MetalsUpdated
	}
	return entry
}
