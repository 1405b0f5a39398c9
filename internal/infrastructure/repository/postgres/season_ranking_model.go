package postgres

import "time"

type seasonRankingTableModel struct {
	ID                int64      `db:"id"`
	SeasonID          string     `db:"season_public_id"`
	PlayerID          string     `db:"player_public_id"`
	PlayerName        string     `db:"player_name"`
	Category          string     `db:"category"`
	Gender            string     `db:"gender"`
	Points            int        `db:"points"`
	TournamentsPlayed int        `db:"tournaments_played"`
	Position          int        `db:"position"`
	BestResult        string     `db:"best_result"`
	CalculatedAt      time.Time  `db:"calculated_at"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
	DeletedAt         *time.Time `db:"deleted_at"`
}

type seasonRankingInsertModel struct {
	SeasonID          string    `db:"season_public_id"`
	PlayerID          string    `db:"player_public_id"`
	PlayerName        string    `db:"player_name"`
	Category          string    `db:"category"`
	Gender            string    `db:"gender"`
	Points            int       `db:"points"`
	TournamentsPlayed int       `db:"tournaments_played"`
	Position          int       `db:"position"`
	BestResult        string    `db:"best_result"`
	CalculatedAt      time.Time `db:"calculated_at"`
}
