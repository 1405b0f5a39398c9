package postgres

import "time"

type playerTableModel struct {
	ID                int64      `db:"id"`
	PublicID          string     `db:"public_id"`
	Name              string     `db:"name"`
	Email             string     `db:"email"`
	Phone             string     `db:"phone"`
	Gender            string     `db:"gender"`
	Category          string     `db:"category"`
	Points            int        `db:"points"`
	TournamentsPlayed int        `db:"tournaments_played"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
	DeletedAt         *time.Time `db:"deleted_at"`
}
