package category

import "fmt"

// Category is a skill tier in the league, ordered FUN < D < C < B < A.
type Category string

const (
	FUN Category = "FUN"
	D   Category = "D"
	C   Category = "C"
	B   Category = "B"
	A   Category = "A"
)

var ordinals = map[Category]int{
	FUN: 0,
	D:   1,
	C:   2,
	B:   3,
	A:   4,
}

// Default is assigned to players without any recorded result.
const Default = FUN

func All() []Category {
	return []Category{FUN, D, C, B, A}
}

func Parse(raw string) (Category, error) {
	c := Category(raw)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", raw)
	}
	return c, nil
}

func (c Category) Valid() bool {
	_, ok := ordinals[c]
	return ok
}

// Ordinal returns the tier's position in the FUN < D < C < B < A order.
func (c Category) Ordinal() int {
	return ordinals[c]
}

func (c Category) Above(other Category) bool {
	return c.Ordinal() > other.Ordinal()
}

func (c Category) Below(other Category) bool {
	return c.Ordinal() < other.Ordinal()
}

func (c Category) String() string {
	return string(c)
}

// ChangeType is the direction of a player-submitted category change.
type ChangeType string

const (
	ChangeSubida  ChangeType = "subida"
	ChangeDescida ChangeType = "descida"
)

func ParseChangeType(raw string) (ChangeType, error) {
	switch ChangeType(raw) {
	case ChangeSubida, ChangeDescida:
		return ChangeType(raw), nil
	default:
		return "", fmt.Errorf("unknown change type %q", raw)
	}
}

// ExitReason explains why a category membership period ended.
type ExitReason string

const (
	ExitSubiu  ExitReason = "subiu"
	ExitDesceu ExitReason = "desceu"
	ExitAdmin  ExitReason = "admin"
)

// DirectionReason derives the ledger exit reason from the ordinal move.
// Equal categories have no direction; callers must not close a period for them.
func DirectionReason(from, to Category) ExitReason {
	if to.Above(from) {
		return ExitSubiu
	}
	return ExitDesceu
}

// ExitReasonFor maps a change request type to the ledger exit reason.
func ExitReasonFor(changeType ChangeType) ExitReason {
	if changeType == ChangeSubida {
		return ExitSubiu
	}
	return ExitDesceu
}
