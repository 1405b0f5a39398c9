package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/openliga/liga-ranking/internal/domain/season"
	qb "github.com/openliga/liga-ranking/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(
			qb.Eq("public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season by id query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, wrapDBError("get season by id", err)
	}

	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) GetActive(ctx context.Context) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(
			qb.Eq("active", true),
			qb.IsNull("deleted_at"),
		).
		OrderBy("start_date DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get active season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, wrapDBError("get active season", err)
	}

	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(qb.IsNull("deleted_at")).
		OrderBy("start_date DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError("list seasons", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}

	return out, nil
}

func seasonFromRow(row seasonTableModel) season.Season {
	return season.Season{
		ID:          row.PublicID,
		Year:        row.Year,
		Name:        row.Name,
		StartDate:   row.StartDate,
		EndDate:     nullTimeToTimePtr(row.EndDate),
		Active:      row.Active,
		Description: row.Description,
	}
}
