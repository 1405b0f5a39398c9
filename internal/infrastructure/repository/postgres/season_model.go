package postgres

import (
	"database/sql"
	"time"
)

type seasonTableModel struct {
	ID          int64        `db:"id"`
	PublicID    string       `db:"public_id"`
	Year        int          `db:"year"`
	Name        string       `db:"name"`
	StartDate   time.Time    `db:"start_date"`
	EndDate     sql.NullTime `db:"end_date"`
	Active      bool         `db:"active"`
	Description string       `db:"description"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
	DeletedAt   *time.Time   `db:"deleted_at"`
}
