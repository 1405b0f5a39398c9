package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/request"
	qb "github.com/openliga/liga-ranking/internal/platform/querybuilder"
)

type RequestRepository struct {
	db *sqlx.DB
}

func NewRequestRepository(db *sqlx.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) GetByID(ctx context.Context, requestID string) (request.Request, bool, error) {
	query, args, err := qb.Select("*").From("category_change_requests").
		Where(
			qb.Eq("public_id", requestID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return request.Request{}, false, fmt.Errorf("build get change request by id query: %w", err)
	}

	var row changeRequestTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return request.Request{}, false, nil
		}
		return request.Request{}, false, wrapDBError("get change request by id", err)
	}

	return changeRequestFromRow(row), true, nil
}

func (r *RequestRepository) FindPending(ctx context.Context, playerID string) (request.Request, bool, error) {
	query, args, err := qb.Select("*").From("category_change_requests").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.Eq("status", string(request.StatusPendente)),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return request.Request{}, false, fmt.Errorf("build find pending change request query: %w", err)
	}

	var row changeRequestTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return request.Request{}, false, nil
		}
		return request.Request{}, false, wrapDBError("find pending change request", err)
	}

	return changeRequestFromRow(row), true, nil
}

// Insert relies on the partial unique index over pendente rows: the check
// and the store are one statement, so two racing submits cannot both land.
func (r *RequestRepository) Insert(ctx context.Context, req request.Request) error {
	query, args, err := qb.InsertModel("category_change_requests", changeRequestInsertModel{
		PublicID:          req.ID,
		PlayerID:          req.PlayerID,
		CurrentCategory:   req.CurrentCategory.String(),
		RequestedCategory: req.RequestedCategory.String(),
		ChangeType:        string(req.ChangeType),
		Motivo:            req.Motivo,
		Status:            string(req.Status),
		RequestDate:       req.RequestDate,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert change request query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("player %s: %w", req.PlayerID, request.ErrPendingExists)
		}
		return wrapDBError("insert change request", err)
	}

	return nil
}

func (r *RequestRepository) UpdateStatus(
	ctx context.Context,
	requestID string,
	status request.Status,
	adminResponse, adminID string,
	responseDate time.Time,
) error {
	query, args, err := qb.Update("category_change_requests").
		Set("status", string(status)).
		Set("admin_response", adminResponse).
		Set("admin_id", adminID).
		Set("response_date", responseDate).
		Where(
			qb.Eq("public_id", requestID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update change request status query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError("update change request status", err)
	}

	return nil
}

func (r *RequestRepository) ListByStatus(ctx context.Context, status request.Status) ([]request.Request, error) {
	query, args, err := qb.Select("*").From("category_change_requests").
		Where(
			qb.Eq("status", string(status)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("request_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list change requests by status query: %w", err)
	}

	var rows []changeRequestTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError("list change requests by status", err)
	}

	out := make([]request.Request, 0, len(rows))
	for _, row := range rows {
		out = append(out, changeRequestFromRow(row))
	}

	return out, nil
}

func changeRequestFromRow(row changeRequestTableModel) request.Request {
	return request.Request{
		ID:                row.PublicID,
		PlayerID:          row.PlayerID,
		CurrentCategory:   category.Category(row.CurrentCategory),
		RequestedCategory: category.Category(row.RequestedCategory),
		ChangeType:        category.ChangeType(row.ChangeType),
		Motivo:            row.Motivo,
		Status:            request.Status(row.Status),
		RequestDate:       row.RequestDate,
		ResponseDate:      nullTimeToTimePtr(row.ResponseDate),
		AdminResponse:     nullStringToStringPtr(row.AdminResponse),
		AdminID:           nullStringToStringPtr(row.AdminID),
	}
}
