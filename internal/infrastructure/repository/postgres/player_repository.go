package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/player"
	qb "github.com/openliga/liga-ranking/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	builder := qb.Select("*").From("players").
		Where(qb.IsNull("deleted_at")).
		OrderBy("points DESC", "tournaments_played DESC", "name", "id")
	if filter.Category != nil {
		builder.Where(qb.Eq("category", filter.Category.String()))
	}
	if filter.Gender != nil {
		builder.Where(qb.Eq("gender", string(*filter.Gender)))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError("list players", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, wrapDBError("get player by id", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) UpdateCategory(ctx context.Context, playerID string, cat category.Category) error {
	query, args, err := qb.Update("players").
		Set("category", cat.String()).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player category query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError("update player category", err)
	}

	return nil
}

func (r *PlayerRepository) ApplyResultTotals(ctx context.Context, playerID string, points int) error {
	return r.adjustTotals(ctx, playerID, points, 1)
}

func (r *PlayerRepository) RevertResultTotals(ctx context.Context, playerID string, points int) error {
	return r.adjustTotals(ctx, playerID, -points, -1)
}

func (r *PlayerRepository) adjustTotals(ctx context.Context, playerID string, pointsDelta, playedDelta int) error {
	query, args, err := qb.Update("players").
		SetExpr("points", "points + ?", pointsDelta).
		SetExpr("tournaments_played", "GREATEST(tournaments_played + ?, 0)", playedDelta).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build adjust player totals query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError("adjust player totals", err)
	}

	return nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:                row.PublicID,
		Name:              row.Name,
		Email:             row.Email,
		Phone:             row.Phone,
		Gender:            player.Gender(row.Gender),
		Category:          category.Category(row.Category),
		Points:            row.Points,
		TournamentsPlayed: row.TournamentsPlayed,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
