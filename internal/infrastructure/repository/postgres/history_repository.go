package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/history"
	qb "github.com/openliga/liga-ranking/internal/platform/querybuilder"
)

type HistoryRepository struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) FindOpen(ctx context.Context, playerID string) (history.Entry, bool, error) {
	query, args, err := qb.Select("*").From("category_history").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.IsNull("exit_date"),
			qb.IsNull("deleted_at"),
		).
		OrderBy("entry_date", "id").
		ToSQL()
	if err != nil {
		return history.Entry{}, false, fmt.Errorf("build find open history entry query: %w", err)
	}

	var rows []historyEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return history.Entry{}, false, wrapDBError("find open history entry", err)
	}

	switch len(rows) {
	case 0:
		return history.Entry{}, false, nil
	case 1:
		return historyEntryFromRow(rows[0]), true, nil
	default:
		return history.Entry{}, false, fmt.Errorf("player %s has %d open entries: %w", playerID, len(rows), history.ErrMultipleOpen)
	}
}

// Transition closes the identified entry and inserts the new open one inside
// a single transaction. The partial unique index on open entries backs up
// the at-most-one-open rule even under concurrent writers.
func (r *HistoryRepository) Transition(ctx context.Context, close history.Close, open history.Entry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapDBError("begin tx history transition", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	closeQuery, closeArgs, err := qb.Update("category_history").
		Set("exit_date", close.ExitDate).
		Set("exit_reason", string(close.ExitReason)).
		Where(
			qb.Eq("public_id", close.EntryID),
			qb.IsNull("exit_date"),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build close history entry query: %w", err)
	}

	closed, err := tx.ExecContext(ctx, closeQuery, closeArgs...)
	if err != nil {
		return wrapDBError("close history entry", err)
	}
	if affected, err := closed.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("history entry %s is not open", close.EntryID)
	}

	insertQuery, insertArgs, err := qb.InsertModel("category_history", historyEntryInsertModel{
		PublicID:         open.ID,
		PlayerID:         open.PlayerID,
		Category:         open.Category.String(),
		PointsInCategory: open.PointsInCategory,
		EntryDate:        open.EntryDate,
	}, "")
	if err != nil {
		return fmt.Errorf("build open history entry query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("player %s: %w", open.PlayerID, history.ErrMultipleOpen)
		}
		return wrapDBError("open history entry", err)
	}

	if err := tx.Commit(); err != nil {
		return wrapDBError("commit history transition tx", err)
	}
	return nil
}

func (r *HistoryRepository) Insert(ctx context.Context, entry history.Entry) error {
	query, args, err := qb.InsertModel("category_history", historyEntryInsertModel{
		PublicID:         entry.ID,
		PlayerID:         entry.PlayerID,
		Category:         entry.Category.String(),
		PointsInCategory: entry.PointsInCategory,
		EntryDate:        entry.EntryDate,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert history entry query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("player %s: %w", entry.PlayerID, history.ErrMultipleOpen)
		}
		return wrapDBError("insert history entry", err)
	}

	return nil
}

func (r *HistoryRepository) ListByPlayer(ctx context.Context, playerID string) ([]history.Entry, error) {
	query, args, err := qb.Select("*").From("category_history").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("entry_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list history by player query: %w", err)
	}

	var rows []historyEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError("list history by player", err)
	}

	out := make([]history.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, historyEntryFromRow(row))
	}

	return out, nil
}

func historyEntryFromRow(row historyEntryTableModel) history.Entry {
	out := history.Entry{
		ID:               row.PublicID,
		PlayerID:         row.PlayerID,
		Category:         category.Category(row.Category),
		PointsInCategory: row.PointsInCategory,
		EntryDate:        row.EntryDate,
		ExitDate:         nullTimeToTimePtr(row.ExitDate),
	}
	if row.ExitReason.Valid {
		reason := category.ExitReason(row.ExitReason.String)
		out.ExitReason = &reason
	}
	return out
}
