package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/VougishTiger/MealSmith/internal/model"
)

type SavedRecipeStore struct {
	db *sql.DB
}

func NewSavedRecipeStore(db *sql.DB) *SavedRecipeStore {
	return &SavedRecipeStore{db: db}
}

func scanSavedRecipe(scanner interface{ Scan(...any) error }) (*model.SavedRecipe, error) {
	var r model.SavedRecipe
	err := scanner.Scan(
		&r.ID, &r.UserID, &r.Title, &r.Description, &r.Ingredients, &r.Steps,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

const savedRecipeCols = `id, user_id, title, description, ingredients, steps, created_at`

// Create saves a recipe for the user. A title that trims to empty is
// rejected silently, same policy as nameless pantry items: nothing is
// written and (nil, nil) is returned.
func (s *SavedRecipeStore) Create(userID int64, title, description, ingredients, steps string) (*model.SavedRecipe, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, nil
	}

	result, err := s.db.Exec(
		`INSERT INTO saved_recipes (user_id, title, description, ingredients, steps) VALUES (?, ?, ?, ?, ?)`,
		userID, title, description, ingredients, steps,
	)
	if err != nil {
		return nil, fmt.Errorf("insert saved recipe: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.Get(id)
}

func (s *SavedRecipeStore) Get(id int64) (*model.SavedRecipe, error) {
	row := s.db.QueryRow(`SELECT `+savedRecipeCols+` FROM saved_recipes WHERE id = ?`, id)
	r, err := scanSavedRecipe(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get saved recipe: %w", err)
	}
	return r, nil
}

// List returns the user's saved recipes, most recently created first.
func (s *SavedRecipeStore) List(userID int64) ([]model.SavedRecipe, error) {
	rows, err := s.db.Query(
		`SELECT `+savedRecipeCols+` FROM saved_recipes WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list saved recipes: %w", err)
	}
	defer rows.Close()

	var recipes []model.SavedRecipe
	for rows.Next() {
		r, err := scanSavedRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan saved recipe: %w", err)
		}
		recipes = append(recipes, *r)
	}
	return recipes, rows.Err()
}

// Delete removes the user's saved recipe with the same ownership contract
// as PantryStore.DeleteItem.
func (s *SavedRecipeStore) Delete(userID, id int64) error {
	r, err := s.Get(id)
	if err != nil {
		return err
	}
	if r == nil {
		return ErrNotFound
	}
	if r.UserID != userID {
		return ErrForbidden
	}

	if _, err := s.db.Exec(`DELETE FROM saved_recipes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete saved recipe: %w", err)
	}
	return nil
}
