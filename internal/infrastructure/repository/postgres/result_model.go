package postgres

import (
	"database/sql"
	"time"
)

type resultTableModel struct {
	ID             int64          `db:"id"`
	PublicID       string         `db:"public_id"`
	PlayerID       string         `db:"player_public_id"`
	TournamentID   string         `db:"tournament_public_id"`
	Placement      string         `db:"placement"`
	PointsEarned   int            `db:"points_earned"`
	CategoryPlayed sql.NullString `db:"category_played"`
	CreatedAt      time.Time      `db:"created_at"`
	DeletedAt      *time.Time     `db:"deleted_at"`
}

type resultInsertModel struct {
	PublicID       string         `db:"public_id"`
	PlayerID       string         `db:"player_public_id"`
	TournamentID   string         `db:"tournament_public_id"`
	Placement      string         `db:"placement"`
	PointsEarned   int            `db:"points_earned"`
	CategoryPlayed sql.NullString `db:"category_played"`
	CreatedAt      time.Time      `db:"created_at"`
}

// playerResultJoinedModel carries a result row left-joined against its
// tournament. Tournament columns are nullable since the tournament may have
// been soft-deleted after the result was recorded.
type playerResultJoinedModel struct {
	PublicID           string         `db:"public_id"`
	PlayerID           string         `db:"player_public_id"`
	TournamentID       string         `db:"tournament_public_id"`
	Placement          string         `db:"placement"`
	PointsEarned       int            `db:"points_earned"`
	CategoryPlayed     sql.NullString `db:"category_played"`
	CreatedAt          time.Time      `db:"created_at"`
	TournamentCategory sql.NullString `db:"tournament_category"`
	TournamentDate     sql.NullTime   `db:"tournament_date"`
}
