package domain

import "time"

// Database connectivity states reported by the health check.
const (
	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// HealthReport is the outcome of a health check.
type HealthReport struct {
	Database  string
	CheckedAt time.Time
}
