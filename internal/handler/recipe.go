package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/VougishTiger/MealSmith/internal/auth"
	"github.com/VougishTiger/MealSmith/internal/model"
	"github.com/VougishTiger/MealSmith/internal/recipe"
	"github.com/VougishTiger/MealSmith/internal/store"
	ws "github.com/VougishTiger/MealSmith/internal/websocket"
)

type RecipeHandler struct {
	pantryStore *store.PantryStore
	savedStore  *store.SavedRecipeStore
	sampler     recipe.Sampler
	hub         *ws.Hub
	templates   *template.Template
	logger      *slog.Logger
}

func NewRecipeHandler(ps *store.PantryStore, ss *store.SavedRecipeStore, sampler recipe.Sampler, hub *ws.Hub, logger *slog.Logger) *RecipeHandler {
	tmpl := template.Must(template.ParseGlob("web/templates/*.html"))
	return &RecipeHandler{
		pantryStore: ps,
		savedStore:  ss,
		sampler:     sampler,
		hub:         hub,
		templates:   tmpl,
		logger:      logger,
	}
}

type suggestionView struct {
	model.SuggestedRecipe
	IngredientsText string
	StepsText       string
}

// Page renders a fresh random batch of suggestions alongside the user's
// saved recipes.
func (h *RecipeHandler) Page(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	items, err := h.pantryStore.ListItems(userID)
	if err != nil {
		h.logger.Error("list pantry items", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	suggestions := recipe.Suggest(items, recipe.Library(), recipe.DefaultSampleSize, h.sampler)

	// Pre-flatten ingredient and step lists so the save form can carry them
	// as single text blocks.
	views := make([]suggestionView, 0, len(suggestions))
	for _, sug := range suggestions {
		views = append(views, suggestionView{
			SuggestedRecipe: sug,
			IngredientsText: strings.Join(sug.Ingredients, "\n"),
			StepsText:       strings.Join(sug.Steps, "\n"),
		})
	}

	saved, err := h.savedStore.List(userID)
	if err != nil {
		h.logger.Error("list saved recipes", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	h.templates.ExecuteTemplate(w, "recipes.html", map[string]any{
		"Suggestions": views,
		"Saved":       saved,
	})
}

func (h *RecipeHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	saved, err := h.savedStore.Create(
		userID,
		r.FormValue("title"),
		strings.TrimSpace(r.FormValue("description")),
		r.FormValue("ingredients"),
		r.FormValue("steps"),
	)
	if err != nil {
		h.logger.Error("save recipe", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	// saved is nil when the title trimmed to empty; the submission is dropped
	if saved != nil {
		h.hub.BroadcastTo(userID, ws.NewMessage("saved_recipe", "created", saved.ID))
	}
	http.Redirect(w, r, "/recipes", http.StatusSeeOther)
}

func (h *RecipeHandler) DeleteSaved(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	id, err := parseIDParam(r)
	if err != nil {
		http.Redirect(w, r, "/recipes", http.StatusSeeOther)
		return
	}

	switch err := h.savedStore.Delete(userID, id); {
	case errors.Is(err, store.ErrForbidden):
		h.logger.Warn("cross-owner recipe delete rejected", "recipe_id", id, "user_id", userID)
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		h.logger.Error("delete saved recipe", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	default:
		h.hub.BroadcastTo(userID, ws.NewMessage("saved_recipe", "deleted", id))
	}
	http.Redirect(w, r, "/recipes", http.StatusSeeOther)
}
