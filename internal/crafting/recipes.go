package crafting

import "github.com/dmkorzh/farmbox/internal/domain"

// The recipe book is fixed at build time. Keys are stable API identifiers.
var recipeBook = []domain.CraftRecipe{
	{
		Key:         "seed_pack",
		DisplayName: "Seed Pack",
		Ingredients: []domain.RecipeIngredient{
			{Kind: domain.ResourceGreenFruit, Quantity: 1},
		},
		Output:         domain.ResourceGreenSeed,
		OutputQuantity: 5,
	},
	{
		Key:         "fertilizer",
		DisplayName: "Fertilizer",
		Ingredients: []domain.RecipeIngredient{
			{Kind: domain.ResourceGreenSeed, Quantity: 3},
			{Kind: domain.ResourceGreenFruit, Quantity: 1},
		},
		Output:         domain.ResourceFertilizer,
		OutputQuantity: 1,
	},
	{
		Key:         "accelerator",
		DisplayName: "Growth Accelerator",
		Ingredients: []domain.RecipeIngredient{
			{Kind: domain.ResourceFertilizer, Quantity: 2},
			{Kind: domain.ResourceGoldSeed, Quantity: 1},
		},
		Output:         domain.ResourceAccelerator,
		OutputQuantity: 1,
	},
	{
		Key:         "farm_ticket",
		DisplayName: "Farm Ticket",
		Ingredients: []domain.RecipeIngredient{
			{Kind: domain.ResourceGoldFruit, Quantity: 2},
		},
		Output:         domain.ResourceFarmTicket,
		OutputQuantity: 1,
	},
}

// Recipes returns a copy of the recipe book for the query API.
func Recipes() []domain.CraftRecipe {
	out := make([]domain.CraftRecipe, len(recipeBook))
	copy(out, recipeBook)
	return out
}

func findRecipe(key string) (domain.CraftRecipe, bool) {
	for _, r := range recipeBook {
		if r.Key == key {
			return r, true
		}
	}
	return domain.CraftRecipe{}, false
}
