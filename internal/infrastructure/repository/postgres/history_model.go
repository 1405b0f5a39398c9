package postgres

import (
	"database/sql"
	"time"
)

type historyEntryTableModel struct {
	ID               int64          `db:"id"`
	PublicID         string         `db:"public_id"`
	PlayerID         string         `db:"player_public_id"`
	Category         string         `db:"category"`
	PointsInCategory int            `db:"points_in_category"`
	EntryDate        time.Time      `db:"entry_date"`
	ExitDate         sql.NullTime   `db:"exit_date"`
	ExitReason       sql.NullString `db:"exit_reason"`
	CreatedAt        time.Time      `db:"created_at"`
	DeletedAt        *time.Time     `db:"deleted_at"`
}

type historyEntryInsertModel struct {
	PublicID         string    `db:"public_id"`
	PlayerID         string    `db:"player_public_id"`
	Category         string    `db:"category"`
	PointsInCategory int       `db:"points_in_category"`
	EntryDate        time.Time `db:"entry_date"`
}
