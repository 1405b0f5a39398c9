package postgres

import (
	"database/sql"
	"time"
)

type changeRequestTableModel struct {
	ID                int64          `db:"id"`
	PublicID          string         `db:"public_id"`
	PlayerID          string         `db:"player_public_id"`
	CurrentCategory   string         `db:"current_category"`
	RequestedCategory string         `db:"requested_category"`
	ChangeType        string         `db:"change_type"`
	Motivo            string         `db:"motivo"`
	Status            string         `db:"status"`
	RequestDate       time.Time      `db:"request_date"`
	ResponseDate      sql.NullTime   `db:"response_date"`
	AdminResponse     sql.NullString `db:"admin_response"`
	AdminID           sql.NullString `db:"admin_id"`
	CreatedAt         time.Time      `db:"created_at"`
	DeletedAt         *time.Time     `db:"deleted_at"`
}

type changeRequestInsertModel struct {
	PublicID          string    `db:"public_id"`
	PlayerID          string    `db:"player_public_id"`
	CurrentCategory   string    `db:"current_category"`
	RequestedCategory string    `db:"requested_category"`
	ChangeType        string    `db:"change_type"`
	Motivo            string    `db:"motivo"`
	Status            string    `db:"status"`
	RequestDate       time.Time `db:"request_date"`
}
