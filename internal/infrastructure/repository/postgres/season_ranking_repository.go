package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/player"
	"github.com/openliga/liga-ranking/internal/domain/result"
	"github.com/openliga/liga-ranking/internal/domain/seasonranking"
	qb "github.com/openliga/liga-ranking/internal/platform/querybuilder"
)

type SeasonRankingRepository struct {
	db *sqlx.DB
}

func NewSeasonRankingRepository(db *sqlx.DB) *SeasonRankingRepository {
	return &SeasonRankingRepository{db: db}
}

func (r *SeasonRankingRepository) ListBySeason(ctx context.Context, seasonID string, filter seasonranking.Filter) ([]seasonranking.Row, error) {
	builder := qb.Select("*").From("season_rankings").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy(
			"CASE category WHEN 'A' THEN 0 WHEN 'B' THEN 1 WHEN 'C' THEN 2 WHEN 'D' THEN 3 ELSE 4 END",
			"gender",
			"position",
			"id",
		)
	if filter.Category != nil {
		builder.Where(qb.Eq("category", filter.Category.String()))
	}
	if filter.Gender != nil {
		builder.Where(qb.Eq("gender", string(*filter.Gender)))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list season rankings query: %w", err)
	}

	var rows []seasonRankingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError("list season rankings", err)
	}

	out := make([]seasonranking.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonranking.Row{
			SeasonID:          row.SeasonID,
			PlayerID:          row.PlayerID,
			PlayerName:        row.PlayerName,
			Category:          category.Category(row.Category),
			Gender:            player.Gender(row.Gender),
			Points:            row.Points,
			TournamentsPlayed: row.TournamentsPlayed,
			Position:          row.Position,
			BestResult:        result.Placement(row.BestResult),
			CalculatedAt:      row.CalculatedAt,
		})
	}

	return out, nil
}

func (r *SeasonRankingRepository) ReplaceBySeason(ctx context.Context, seasonID string, rows []seasonranking.Row) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapDBError("begin tx replace season rankings", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("season_rankings").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear season rankings query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return wrapDBError("clear season rankings", err)
	}

	for _, item := range rows {
		insertModel := seasonRankingInsertModel{
			SeasonID:          seasonID,
			PlayerID:          item.PlayerID,
			PlayerName:        item.PlayerName,
			Category:          item.Category.String(),
			Gender:            string(item.Gender),
			Points:            item.Points,
			TournamentsPlayed: item.TournamentsPlayed,
			Position:          item.Position,
			BestResult:        string(item.BestResult),
			CalculatedAt:      item.CalculatedAt,
		}
		query, args, err := qb.InsertModel("season_rankings", insertModel, `ON CONFLICT (season_public_id, player_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    player_name = EXCLUDED.player_name,
    category = EXCLUDED.category,
    gender = EXCLUDED.gender,
    points = EXCLUDED.points,
    tournaments_played = EXCLUDED.tournaments_played,
    position = EXCLUDED.position,
    best_result = EXCLUDED.best_result,
    calculated_at = EXCLUDED.calculated_at,
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build upsert season ranking query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return wrapDBError(fmt.Sprintf("upsert season ranking player=%s", item.PlayerID), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapDBError("commit replace season rankings tx", err)
	}
	return nil
}
