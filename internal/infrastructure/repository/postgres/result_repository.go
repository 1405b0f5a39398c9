package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/result"
	qb "github.com/openliga/liga-ranking/internal/platform/querybuilder"
)

var playerResultColumns = []string{
	"r.public_id",
	"r.player_public_id",
	"r.tournament_public_id",
	"r.placement",
	"r.points_earned",
	"r.category_played",
	"r.created_at",
	"t.category AS tournament_category",
	"t.date AS tournament_date",
}

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) GetByID(ctx context.Context, resultID string) (result.Result, bool, error) {
	query, args, err := qb.Select("*").From("results").
		Where(
			qb.Eq("public_id", resultID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return result.Result{}, false, fmt.Errorf("build get result by id query: %w", err)
	}

	var row resultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return result.Result{}, false, nil
		}
		return result.Result{}, false, wrapDBError("get result by id", err)
	}

	return resultFromRow(row), true, nil
}

func (r *ResultRepository) ListByPlayer(ctx context.Context, playerID string) ([]result.PlayerResult, error) {
	query, args, err := qb.Select(playerResultColumns...).
		From("results r").
		LeftJoin("tournaments t ON t.public_id = r.tournament_public_id AND t.deleted_at IS NULL").
		Where(
			qb.Eq("r.player_public_id", playerID),
			qb.IsNull("r.deleted_at"),
		).
		OrderBy("r.created_at", "r.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list results by player query: %w", err)
	}

	var rows []playerResultJoinedModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError("list results by player", err)
	}

	out := make([]result.PlayerResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerResultFromRow(row))
	}

	return out, nil
}

func (r *ResultRepository) ListByDateRange(ctx context.Context, start time.Time, end *time.Time) ([]result.PlayerResult, error) {
	builder := qb.Select(playerResultColumns...).
		From("results r").
		LeftJoin("tournaments t ON t.public_id = r.tournament_public_id AND t.deleted_at IS NULL").
		Where(
			qb.Gte("t.date", start),
			qb.IsNull("r.deleted_at"),
		).
		OrderBy("t.date", "r.id")
	if end != nil {
		builder.Where(qb.Lt("t.date", *end))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list results by date range query: %w", err)
	}

	var rows []playerResultJoinedModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError("list results by date range", err)
	}

	out := make([]result.PlayerResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerResultFromRow(row))
	}

	return out, nil
}

func (r *ResultRepository) Insert(ctx context.Context, res result.Result) error {
	insertModel := resultInsertModel{
		PublicID:     res.ID,
		PlayerID:     res.PlayerID,
		TournamentID: res.TournamentID,
		Placement:    string(res.Placement),
		PointsEarned: res.PointsEarned,
		CreatedAt:    res.CreatedAt,
	}
	if res.CategoryPlayed != nil {
		insertModel.CategoryPlayed = stringPtrToNullString(stringPtr(res.CategoryPlayed.String()))
	}

	query, args, err := qb.InsertModel("results", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert result query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError("insert result", err)
	}

	return nil
}

func (r *ResultRepository) Delete(ctx context.Context, resultID string) error {
	query, args, err := qb.Update("results").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", resultID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete result query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError("delete result", err)
	}

	return nil
}

func resultFromRow(row resultTableModel) result.Result {
	out := result.Result{
		ID:           row.PublicID,
		PlayerID:     row.PlayerID,
		TournamentID: row.TournamentID,
		Placement:    result.Placement(row.Placement),
		PointsEarned: row.PointsEarned,
		CreatedAt:    row.CreatedAt,
	}
	if row.CategoryPlayed.Valid {
		played := category.Category(row.CategoryPlayed.String)
		out.CategoryPlayed = &played
	}
	return out
}

func playerResultFromRow(row playerResultJoinedModel) result.PlayerResult {
	joined := result.PlayerResult{
		Result: resultFromRow(resultTableModel{
			PublicID:       row.PublicID,
			PlayerID:       row.PlayerID,
			TournamentID:   row.TournamentID,
			Placement:      row.Placement,
			PointsEarned:   row.PointsEarned,
			CategoryPlayed: row.CategoryPlayed,
			CreatedAt:      row.CreatedAt,
		}),
	}
	if row.TournamentCategory.Valid {
		joined.TournamentCategory = category.Category(row.TournamentCategory.String)
		joined.TournamentFound = true
	}
	if row.TournamentDate.Valid {
		joined.TournamentDate = row.TournamentDate.Time
	}
	return joined
}

func stringPtr(s string) *string {
	return &s
}
