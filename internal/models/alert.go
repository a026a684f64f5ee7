package models

import (
	"database/sql"
	"time"
)

// Alert represents one alert row addressed to one actor.
type Alert struct {
	AlertID   string         `db:"alert_id"`
	TrustID   string         `db:"trust_id"`
	AssetID   sql.NullString `db:"asset_id"`
	ActorID   string         `db:"actor_id"`
	Kind      string         `db:"kind"`
	Severity  string         `db:"severity"`
	Message   string         `db:"message"`
	IsRead    bool           `db:"is_read"`
	CreatedAt time.Time      `db:"created_at"`
}
