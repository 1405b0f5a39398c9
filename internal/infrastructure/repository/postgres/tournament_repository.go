package postgres

import (
	"context"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/result"
	"github.com/openliga/liga-ranking/internal/domain/tournament"
	qb "github.com/openliga/liga-ranking/internal/platform/querybuilder"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(
			qb.Eq("public_id", tournamentID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build get tournament by id query: %w", err)
	}

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, wrapDBError("get tournament by id", err)
	}

	t, err := tournamentFromRow(row)
	if err != nil {
		return tournament.Tournament{}, false, err
	}

	return t, true, nil
}

func (r *TournamentRepository) ListByDateRange(ctx context.Context, start time.Time, end *time.Time) ([]tournament.Tournament, error) {
	builder := qb.Select("*").From("tournaments").
		Where(
			qb.Gte("date", start),
			qb.IsNull("deleted_at"),
		).
		OrderBy("date", "id")
	if end != nil {
		builder.Where(qb.Lt("date", *end))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list tournaments by date range query: %w", err)
	}

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError("list tournaments by date range", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		t, err := tournamentFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, nil
}

func tournamentFromRow(row tournamentTableModel) (tournament.Tournament, error) {
	out := tournament.Tournament{
		ID:        row.PublicID,
		Name:      row.Name,
		Date:      row.Date,
		Location:  row.Location,
		Category:  category.Category(row.Category),
		Status:    tournament.Status(row.Status),
		SeasonID:  row.SeasonID.String,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.CustomPoints.Valid && row.CustomPoints.String != "" {
		var custom map[result.Placement]int
		if err := sonic.Unmarshal([]byte(row.CustomPoints.String), &custom); err != nil {
			return tournament.Tournament{}, fmt.Errorf("decode tournament custom points %s: %w", row.PublicID, err)
		}
		out.CustomPoints = custom
	}

	return out, nil
}
