package querybuilder

import (
	"reflect"
	"testing"
	"time"
)

func TestSelectWithDateWindow(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	query, args, err := Select("*").From("tournaments").
		Where(
			Gte("date", start),
			Lt("date", end),
			IsNull("deleted_at"),
		).
		OrderBy("date", "id").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	want := "SELECT * FROM tournaments WHERE date >= $1 AND date < $2 AND deleted_at IS NULL ORDER BY date, id"
	if query != want {
		t.Fatalf("query mismatch:\n got %q\nwant %q", query, want)
	}
	if !reflect.DeepEqual(args, []any{start, end}) {
		t.Fatalf("args mismatch: %v", args)
	}
}

func TestSelectWithJoinAndIn(t *testing.T) {
	t.Parallel()

	query, args, err := Select("r.id", "t.category").From("results r").
		LeftJoin("tournaments t ON t.id = r.tournament_id").
		Where(In("r.player_id", []any{"p1", "p2"})).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	want := "SELECT r.id, t.category FROM results r LEFT JOIN tournaments t ON t.id = r.tournament_id WHERE r.player_id IN ($1, $2)"
	if query != want {
		t.Fatalf("query mismatch:\n got %q\nwant %q", query, want)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
}

func TestInEmptyValuesNeverMatches(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("players").
		Where(In("id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" {
		t.Fatalf("unexpected query %q", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestUpdateWithExprAndWhere(t *testing.T) {
	t.Parallel()

	query, args, err := Update("players").
		SetExpr("points", "points + ?", 100).
		SetExpr("tournaments_played", "tournaments_played + 1").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "p1"), IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	want := "UPDATE players SET points = points + $1, tournaments_played = tournaments_played + 1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL"
	if query != want {
		t.Fatalf("query mismatch:\n got %q\nwant %q", query, want)
	}
	if !reflect.DeepEqual(args, []any{100, "p1"}) {
		t.Fatalf("args mismatch: %v", args)
	}
}

func TestInsertModelUsesDBTags(t *testing.T) {
	t.Parallel()

	type row struct {
		ID       string `db:"id"`
		Category string `db:"category"`
		Ignored  string `db:"-"`
		private  string //nolint:unused
	}

	query, args, err := InsertModel("category_history", row{ID: "h1", Category: "C"}, "")
	if err != nil {
		t.Fatalf("InsertModel: %v", err)
	}

	want := "INSERT INTO category_history (id, category) VALUES ($1, $2)"
	if query != want {
		t.Fatalf("query mismatch:\n got %q\nwant %q", query, want)
	}
	if !reflect.DeepEqual(args, []any{"h1", "C"}) {
		t.Fatalf("args mismatch: %v", args)
	}
}

func TestInsertSuffixConflictClause(t *testing.T) {
	t.Parallel()

	query, _, err := InsertInto("season_rankings").
		Columns("season_id", "player_id", "position").
		Values("s1", "p1", 1).
		Suffix("ON CONFLICT (season_id, player_id) DO UPDATE SET position = EXCLUDED.position").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	want := "INSERT INTO season_rankings (season_id, player_id, position) VALUES ($1, $2, $3) ON CONFLICT (season_id, player_id) DO UPDATE SET position = EXCLUDED.position"
	if query != want {
		t.Fatalf("query mismatch:\n got %q\nwant %q", query, want)
	}
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	if _, _, err := Select().From("x").ToSQL(); err == nil {
		t.Fatal("expected error for missing columns")
	}
	if _, _, err := Select("*").ToSQL(); err == nil {
		t.Fatal("expected error for missing table")
	}
	if _, _, err := InsertInto("x").Columns("a").ToSQL(); err == nil {
		t.Fatal("expected error for missing values")
	}
	if _, _, err := Update("x").ToSQL(); err == nil {
		t.Fatal("expected error for missing sets")
	}
}
