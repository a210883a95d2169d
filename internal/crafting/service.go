package crafting

import (
	"context"
	"fmt"
	"time"

	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/logger"
	"github.com/dmkorzh/farmbox/internal/metrics"
	"github.com/dmkorzh/farmbox/internal/repository"
)

// Service defines the crafting business logic
type Service interface {
	// Craft consumes a recipe's ingredients and credits its output
	Craft(ctx context.Context, playerID, recipeKey string) (*domain.CraftResponse, error)

	// ListRecipes returns the full recipe book
	ListRecipes(ctx context.Context) []domain.CraftRecipe
}

type service struct {
	repo repository.Farm
	now  func() time.Time
}

// NewService creates a new crafting service
func NewService(repo repository.Farm) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

// Craft consumes a recipe's ingredients and credits its output
func (s *service) Craft(ctx context.Context, playerID, recipeKey string) (*domain.CraftResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("Craft called", "playerID", playerID, "recipe", recipeKey)

	recipe, ok := findRecipe(recipeKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, recipeKey)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	st, err := tx.GetFarmForUpdate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load farm: %w", err)
	}

	now := s.now()
	domain.Advance(st, now)

	// Check everything up front so a failed craft consumes nothing.
	for _, ing := range recipe.Ingredients {
		if st.ResourceCount(ing.Kind) < ing.Quantity {
			return nil, fmt.Errorf("%w: %s %d/%d", domain.ErrInsufficientResource,
				ing.Kind, st.ResourceCount(ing.Kind), ing.Quantity)
		}
	}
	for _, ing := range recipe.Ingredients {
		if err := st.Debit(ing.Kind, ing.Quantity); err != nil {
			return nil, err
		}
	}

	st.Credit(recipe.Output, recipe.OutputQuantity)
	st.Stats.ItemsCrafted++
	st.UpdatedAt = now

	if err := tx.SaveFarm(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save farm: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.ItemsCrafted.WithLabelValues(recipe.Key).Inc()

	return &domain.CraftResponse{
		RecipeKey: recipe.Key,
		Output:    recipe.Output,
		Quantity:  recipe.OutputQuantity,
		Message:   fmt.Sprintf("Crafted %d %s", recipe.OutputQuantity, recipe.Output),
	}, nil
}

// ListRecipes returns the full recipe book
func (s *service) ListRecipes(_ context.Context) []domain.CraftRecipe {
	return Recipes()
}
