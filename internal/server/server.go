package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/VougishTiger/MealSmith/internal/config"
	"github.com/VougishTiger/MealSmith/internal/handler"
	"github.com/VougishTiger/MealSmith/internal/middleware"
	"github.com/VougishTiger/MealSmith/internal/recipe"
	"github.com/VougishTiger/MealSmith/internal/store"
	ws "github.com/VougishTiger/MealSmith/internal/websocket"
)

type Server struct {
	cfg          config.Config
	hub          *ws.Hub
	authH        *handler.AuthHandler
	pantryH      *handler.PantryHandler
	recipeH      *handler.RecipeHandler
	sessionStore *store.SessionStore
	logger       *slog.Logger
}

func New(db *sql.DB, cfg config.Config, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	userStore := store.NewUserStore(db)
	sessionStore := store.NewSessionStore(db)
	pantryStore := store.NewPantryStore(db)
	savedStore := store.NewSavedRecipeStore(db)

	return &Server{
		cfg:          cfg,
		hub:          hub,
		authH:        handler.NewAuthHandler(userStore, sessionStore, cfg.SessionSecret, logger.With("component", "auth")),
		pantryH:      handler.NewPantryHandler(pantryStore, hub, logger.With("component", "pantry")),
		recipeH:      handler.NewRecipeHandler(pantryStore, savedStore, recipe.NewSampler(), hub, logger.With("component", "recipe")),
		sessionStore: sessionStore,
		logger:       logger,
	}
}

// SessionStore returns the session store for cleanup tasks.
func (s *Server) SessionStore() *store.SessionStore {
	return s.sessionStore
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no auth required)
	outerMux.HandleFunc("GET /{$}", s.authH.Index)
	outerMux.HandleFunc("GET /login", s.authH.LoginPage)
	outerMux.HandleFunc("POST /login", s.authH.Login)
	outerMux.HandleFunc("GET /register", s.authH.RegisterPage)
	outerMux.HandleFunc("POST /register", s.authH.Register)
	outerMux.HandleFunc("GET /logout", s.authH.Logout)
	outerMux.HandleFunc("GET /health", s.healthHandler)

	// Protected routes — wrapped with RequireAuth middleware
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.sessionStore, s.cfg.SessionSecret)
	outerMux.Handle("/", authMiddleware(protectedMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /home", s.authH.HomePage)

	mux.HandleFunc("GET /pantry", s.pantryH.Page)
	mux.HandleFunc("POST /pantry", s.pantryH.Add)
	mux.HandleFunc("POST /pantry/delete/{id}", s.pantryH.Delete)

	mux.HandleFunc("GET /recipes", s.recipeH.Page)
	mux.HandleFunc("POST /save_recipe", s.recipeH.Save)
	mux.HandleFunc("POST /delete_saved_recipe/{id}", s.recipeH.DeleteSaved)

	// WebSocket live refresh
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))
}
