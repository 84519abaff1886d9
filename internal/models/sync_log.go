package models

import "time"

// SyncLog is a row of the sync_logs table written by the ingestion job.
type SyncLog struct {
	ID              int64     `db:"id"`
	SyncType        string    `db:"sync_type"`
	Status          string    `db:"status"`
	MetalsUpdated   *int      `db:"metals_updated"`
	ErrorMessage    *string   `db:"error_message"`
	DurationSeconds *float64  `db:"duration_seconds"`
	CreatedAt       time.Time `db:"created_at"`
}
