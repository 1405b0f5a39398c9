package postgres

import (
	"database/sql"
	"time"
)

type tournamentTableModel struct {
	ID           int64          `db:"id"`
	PublicID     string         `db:"public_id"`
	Name         string         `db:"name"`
	Date         time.Time      `db:"date"`
	Location     string         `db:"location"`
	Category     string         `db:"category"`
	Status       string         `db:"status"`
	SeasonID     sql.NullString `db:"season_public_id"`
	CustomPoints sql.NullString `db:"custom_points"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DeletedAt    *time.Time     `db:"deleted_at"`
}
