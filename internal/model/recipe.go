package model

import "time"

// SavedRecipe is a user's persisted copy of a recipe. Ingredients and steps
// are stored as newline-delimited text blocks that preserve the original
// ordering; nothing downstream re-parses them.
type SavedRecipe struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Ingredients string    `json:"ingredients"`
	Steps       string    `json:"steps"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecipeTemplate is a static catalog entry. Templates are fixed at process
// start and never persisted or mutated.
type RecipeTemplate struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// SuggestedRecipe is a RecipeTemplate annotated per request with the
// ingredients the user already has versus still needs. Both lists keep the
// template's ingredient order.
type SuggestedRecipe struct {
	RecipeTemplate
	Have    []string `json:"have"`
	Missing []string `json:"missing"`
}
