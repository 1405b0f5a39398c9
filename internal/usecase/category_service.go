package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/result"
)

// CategoryService infers a player's principal category from where they
// actually competed.
type CategoryService struct {
	resultRepo result.Repository
}

func NewCategoryService(resultRepo result.Repository) *CategoryService {
	return &CategoryService{resultRepo: resultRepo}
}

// ComputePrincipalCategory counts the player's results per category and
// returns the strict-majority winner. Read-only; callers decide whether to
// persist the outcome.
func (s *CategoryService) ComputePrincipalCategory(ctx context.Context, playerID string) (category.Category, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.ComputePrincipalCategory")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return "", fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	results, err := s.resultRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return "", fmt.Errorf("list results by player: %w", err)
	}

	return principalCategory(results), nil
}

// principalCategory keeps the first category to reach the running maximum:
// a later category matching the count does not displace the incumbent. Zero
// results yield the default tier.
func principalCategory(results []result.PlayerResult) category.Category {
	if len(results) == 0 {
		return category.Default
	}

	counts := make(map[category.Category]int, len(category.All()))
	best := category.Default
	bestCount := 0
	for _, row := range results {
		counted := row.CountedCategory()
		counts[counted]++
		if counts[counted] > bestCount {
			best = counted
			bestCount = counts[counted]
		}
	}

	return best
}
