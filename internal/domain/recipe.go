package domain

// RecipeIngredient is one required input of a craft recipe.
type RecipeIngredient struct {
	Kind     ResourceKind `json:"kind"`
	Quantity int          `json:"quantity"`
}

// CraftRecipe converts a fixed set of ingredients into one output resource.
// Crafting is all-or-nothing: either every ingredient is debited and the
// output credited, or nothing changes.
type CraftRecipe struct {
	Key            string             `json:"key"`
	DisplayName    string             `json:"display_name"`
	Ingredients    []RecipeIngredient `json:"ingredients"`
	Output         ResourceKind       `json:"output"`
	OutputQuantity int                `json:"output_quantity"`
}
