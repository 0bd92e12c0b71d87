package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/VougishTiger/MealSmith/internal/auth"
	"github.com/VougishTiger/MealSmith/internal/store"
	ws "github.com/VougishTiger/MealSmith/internal/websocket"
)

type PantryHandler struct {
	pantryStore *store.PantryStore
	hub         *ws.Hub
	templates   *template.Template
	logger      *slog.Logger
}

func NewPantryHandler(ps *store.PantryStore, hub *ws.Hub, logger *slog.Logger) *PantryHandler {
	tmpl := template.Must(template.ParseGlob("web/templates/*.html"))
	return &PantryHandler{
		pantryStore: ps,
		hub:         hub,
		templates:   tmpl,
		logger:      logger,
	}
}

func (h *PantryHandler) Page(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	items, err := h.pantryStore.ListItems(userID)
	if err != nil {
		h.logger.Error("list pantry items", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	h.templates.ExecuteTemplate(w, "pantry.html", map[string]any{
		"Items": items,
	})
}

func (h *PantryHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	item, err := h.pantryStore.CreateItem(
		userID,
		r.FormValue("name"),
		r.FormValue("quantity"),
		r.FormValue("unit"),
		r.FormValue("expires_on"),
	)
	if err != nil {
		h.logger.Error("create pantry item", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	// item is nil when the name trimmed to empty; the submission is dropped
	// without an error page
	if item != nil {
		h.hub.BroadcastTo(userID, ws.NewMessage("pantry_item", "created", item.ID))
	}
	http.Redirect(w, r, "/pantry", http.StatusSeeOther)
}

func (h *PantryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	id, err := parseIDParam(r)
	if err != nil {
		http.Redirect(w, r, "/pantry", http.StatusSeeOther)
		return
	}

	switch err := h.pantryStore.DeleteItem(userID, id); {
	case errors.Is(err, store.ErrForbidden):
		// Same redirect as success; the response never reveals the item exists
		h.logger.Warn("cross-owner pantry delete rejected", "item_id", id, "user_id", userID)
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		h.logger.Error("delete pantry item", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	default:
		h.hub.BroadcastTo(userID, ws.NewMessage("pantry_item", "deleted", id))
	}
	http.Redirect(w, r, "/pantry", http.StatusSeeOther)
}
