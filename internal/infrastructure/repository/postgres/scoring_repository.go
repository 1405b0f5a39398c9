package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/openliga/liga-ranking/internal/domain/result"
	"github.com/openliga/liga-ranking/internal/domain/scoring"
	qb "github.com/openliga/liga-ranking/internal/platform/querybuilder"
)

type ScoringRepository struct {
	db *sqlx.DB
}

func NewScoringRepository(db *sqlx.DB) *ScoringRepository {
	return &ScoringRepository{db: db}
}

func (r *ScoringRepository) GetActive(ctx context.Context) (scoring.Config, bool, error) {
	query, args, err := qb.Select("*").From("scoring_configs").
		Where(
			qb.Eq("ativo", true),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return scoring.Config{}, false, fmt.Errorf("build get active scoring config query: %w", err)
	}

	var row scoringConfigTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scoring.Config{}, false, nil
		}
		return scoring.Config{}, false, wrapDBError("get active scoring config", err)
	}

	cfg, err := scoringConfigFromRow(row)
	if err != nil {
		return scoring.Config{}, false, err
	}
	return cfg, true, nil
}

func (r *ScoringRepository) GetBySeason(ctx context.Context, seasonID string) (scoring.Config, bool, error) {
	query, args, err := qb.Select("*").From("scoring_configs").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return scoring.Config{}, false, fmt.Errorf("build get scoring config by season query: %w", err)
	}

	var row scoringConfigTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scoring.Config{}, false, nil
		}
		return scoring.Config{}, false, wrapDBError("get scoring config by season", err)
	}

	cfg, err := scoringConfigFromRow(row)
	if err != nil {
		return scoring.Config{}, false, err
	}
	return cfg, true, nil
}

func scoringConfigFromRow(row scoringConfigTableModel) (scoring.Config, error) {
	var points map[result.Placement]int
	if err := sonic.Unmarshal([]byte(row.PointsByPlacement), &points); err != nil {
		return scoring.Config{}, fmt.Errorf("decode scoring config points %s: %w", row.PublicID, err)
	}

	return scoring.Config{
		ID:                row.PublicID,
		SeasonID:          row.SeasonID.String,
		PointsByPlacement: points,
		Ativo:             row.Ativo,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}, nil
}
