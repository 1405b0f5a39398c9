package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/openliga/liga-ranking/internal/domain/storage"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected true for sql.ErrNoRows")
	}
	if isNotFound(errors.New("boom")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches 23505", func(t *testing.T) {
		err := &pq.Error{Code: "23505"}
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation")
		}
	})

	t.Run("matches wrapped error", func(t *testing.T) {
		err := &pq.Error{Code: "23505"}
		if !isUniqueViolation(errors.Join(errors.New("insert entry"), err)) {
			t.Fatalf("expected true for wrapped unique violation")
		}
	})

	t.Run("ignores other codes", func(t *testing.T) {
		err := &pq.Error{Code: "23503"}
		if isUniqueViolation(err) {
			t.Fatalf("expected false for foreign key violation")
		}
	})

	t.Run("ignores non-pq errors", func(t *testing.T) {
		if isUniqueViolation(errors.New("boom")) {
			t.Fatalf("expected false for plain error")
		}
	})
}

func TestIsUnavailable(t *testing.T) {
	t.Run("matches bad connection", func(t *testing.T) {
		if !isUnavailable(driver.ErrBadConn) {
			t.Fatalf("expected true for driver.ErrBadConn")
		}
	})

	t.Run("matches network errors", func(t *testing.T) {
		err := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
		if !isUnavailable(fmt.Errorf("get player by id: %w", err)) {
			t.Fatalf("expected true for wrapped dial error")
		}
	})

	t.Run("matches connection exception class", func(t *testing.T) {
		if !isUnavailable(&pq.Error{Code: "08006"}) {
			t.Fatalf("expected true for connection_failure")
		}
	})

	t.Run("matches server shutdown", func(t *testing.T) {
		if !isUnavailable(&pq.Error{Code: "57P01"}) {
			t.Fatalf("expected true for admin_shutdown")
		}
	})

	t.Run("ignores statement errors", func(t *testing.T) {
		if isUnavailable(&pq.Error{Code: "23505"}) {
			t.Fatalf("expected false for unique violation")
		}
		if isUnavailable(errors.New("boom")) {
			t.Fatalf("expected false for plain error")
		}
	})
}

func TestWrapDBError(t *testing.T) {
	t.Run("tags connection failures", func(t *testing.T) {
		cause := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
		err := wrapDBError("list players", cause)

		if !errors.Is(err, storage.ErrUnavailable) {
			t.Fatalf("expected storage.ErrUnavailable in chain, got %v", err)
		}
		var opErr *net.OpError
		if !errors.As(err, &opErr) {
			t.Fatalf("original cause must stay in the chain, got %v", err)
		}
	})

	t.Run("leaves statement failures untagged", func(t *testing.T) {
		cause := &pq.Error{Code: "23505"}
		err := wrapDBError("insert change request", cause)

		if errors.Is(err, storage.ErrUnavailable) {
			t.Fatalf("statement failure must not read as an outage: %v", err)
		}
		if !isUniqueViolation(err) {
			t.Fatalf("original pq error must stay in the chain, got %v", err)
		}
	})
}

func TestNullConversions(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	if got := nullTimeToTimePtr(sql.NullTime{Time: now, Valid: true}); got == nil || !got.Equal(now) {
		t.Fatalf("unexpected time pointer: %v", got)
	}
	if got := nullTimeToTimePtr(sql.NullTime{}); got != nil {
		t.Fatalf("expected nil for null time, got %v", got)
	}

	if got := nullStringToStringPtr(sql.NullString{String: "subiu", Valid: true}); got == nil || *got != "subiu" {
		t.Fatalf("unexpected string pointer: %v", got)
	}
	if got := nullStringToStringPtr(sql.NullString{}); got != nil {
		t.Fatalf("expected nil for null string, got %v", got)
	}

	if got := stringPtrToNullString(nil); got.Valid {
		t.Fatalf("expected invalid NullString for nil input")
	}
	if got := timePtrToNullTime(&now); !got.Valid || !got.Time.Equal(now) {
		t.Fatalf("unexpected NullTime: %v", got)
	}
}
