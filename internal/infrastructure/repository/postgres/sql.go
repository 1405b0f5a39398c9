package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/lib/pq"

	"github.com/openliga/liga-ranking/internal/domain/storage"
)

const (
	uniqueViolationCode = "23505"

	// Class 08 is "connection exception"; the 57P codes cover server
	// shutdown and cannot-connect-now.
	connectionExceptionClass = "08"
	adminShutdownCode        = "57P01"
	crashShutdownCode        = "57P02"
	cannotConnectNowCode     = "57P03"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == uniqueViolationCode
}

// isUnavailable reports whether err means the database could not be
// reached at all, rather than rejecting a particular statement.
func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, io.EOF) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code.Class() == connectionExceptionClass:
			return true
		case pqErr.Code == adminShutdownCode,
			pqErr.Code == crashShutdownCode,
			pqErr.Code == cannotConnectNowCode:
			return true
		}
	}
	return false
}

// wrapDBError wraps a database error, tagging connection-level failures
// with storage.ErrUnavailable so callers can tell an unreachable store
// apart from a failed statement.
func wrapDBError(op string, err error) error {
	if isUnavailable(err) {
		return fmt.Errorf("%s: %w: %w", op, storage.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nullTimeToTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func nullStringToStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func stringPtrToNullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func timePtrToNullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}
