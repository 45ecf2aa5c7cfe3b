package models

// RecipeIngredient is one line of a recipe's ingredient list.
type RecipeIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit,omitempty"`
}

// Recipe is a saved recipe with its ordered ingredient and step lists.
type Recipe struct {
	ID          int                `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Ingredients []RecipeIngredient `json:"ingredients"`
	Steps       []string           `json:"steps"`
	CreatedAt   string             `json:"created_at,omitempty"`
	Favorite    bool               `json:"favorite"`
}
