package category

import "testing"

func TestOrdinalOrder(t *testing.T) {
	t.Parallel()

	order := All()
	for i := 1; i < len(order); i++ {
		if !order[i].Above(order[i-1]) {
			t.Fatalf("expected %s above %s", order[i], order[i-1])
		}
		if !order[i-1].Below(order[i]) {
			t.Fatalf("expected %s below %s", order[i-1], order[i])
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	if _, err := Parse("B"); err != nil {
		t.Fatalf("parse B: %v", err)
	}
	if _, err := Parse("E"); err == nil {
		t.Fatal("expected error for unknown category")
	}
	if _, err := Parse(""); err == nil {
		t.Fatal("expected error for empty category")
	}
}

func TestDirectionReason(t *testing.T) {
	t.Parallel()

	if got := DirectionReason(C, B); got != ExitSubiu {
		t.Fatalf("C->B: expected subiu, got %s", got)
	}
	if got := DirectionReason(B, D); got != ExitDesceu {
		t.Fatalf("B->D: expected desceu, got %s", got)
	}
}

func TestExitReasonFor(t *testing.T) {
	t.Parallel()

	if got := ExitReasonFor(ChangeSubida); got != ExitSubiu {
		t.Fatalf("subida: expected subiu, got %s", got)
	}
	if got := ExitReasonFor(ChangeDescida); got != ExitDesceu {
		t.Fatalf("descida: expected desceu, got %s", got)
	}
}
