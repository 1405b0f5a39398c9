package postgres

import (
	"database/sql"
	"time"
)

type scoringConfigTableModel struct {
	ID                int64          `db:"id"`
	PublicID          string         `db:"public_id"`
	SeasonID          sql.NullString `db:"season_public_id"`
	PointsByPlacement string         `db:"points_by_placement"`
	Ativo             bool           `db:"ativo"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	DeletedAt         *time.Time     `db:"deleted_at"`
}
