package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/VougishTiger/MealSmith/internal/auth"
	"github.com/VougishTiger/MealSmith/internal/store"
)

const sessionCookieName = "mealsmith_session"

// Shown for unknown user and wrong password alike.
const loginFailedMessage = "Invalid username or password"

type AuthHandler struct {
	userStore    *store.UserStore
	sessionStore *store.SessionStore
	secret       string
	templates    *template.Template
	logger       *slog.Logger
}

func NewAuthHandler(us *store.UserStore, ss *store.SessionStore, secret string, logger *slog.Logger) *AuthHandler {
	tmpl := template.Must(template.ParseGlob("web/templates/*.html"))
	return &AuthHandler{
		userStore:    us,
		sessionStore: ss,
		secret:       secret,
		templates:    tmpl,
		logger:       logger,
	}
}

// Index redirects to /home when a valid session is present, /login otherwise.
func (h *AuthHandler) Index(w http.ResponseWriter, r *http.Request) {
	if h.authenticated(r) {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if h.authenticated(r) {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}
	h.templates.ExecuteTemplate(w, "login.html", nil)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.authenticated(r) {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := h.userStore.GetByUsername(username)
	if err != nil {
		h.logger.Error("login lookup", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		h.templates.ExecuteTemplate(w, "login.html", map[string]any{"Error": loginFailedMessage})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		h.templates.ExecuteTemplate(w, "login.html", map[string]any{"Error": loginFailedMessage})
		return
	}

	if err := h.startSession(w, r, user.ID); err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if h.authenticated(r) {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}
	h.templates.ExecuteTemplate(w, "register.html", nil)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if h.authenticated(r) {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if username == "" || password == "" {
		h.templates.ExecuteTemplate(w, "register.html", map[string]any{
			"Error": "Username and password are required",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("hash password", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	user, err := h.userStore.Create(username, string(hash))
	if errors.Is(err, store.ErrUsernameTaken) {
		h.templates.ExecuteTemplate(w, "register.html", map[string]any{
			"Error": "Username already taken",
		})
		return
	}
	if err != nil {
		h.logger.Error("create user", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	if err := h.startSession(w, r, user.ID); err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// Delete the session row if the cookie still points at one
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if token, ok := auth.VerifyToken(cookie.Value, h.secret); ok {
			if sess, err := h.sessionStore.GetByToken(token); err == nil && sess != nil {
				h.sessionStore.Delete(sess.ID)
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	user, err := h.userStore.GetByID(auth.UserID(r.Context()))
	if err != nil || user == nil {
		h.logger.Error("home user lookup", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	h.templates.ExecuteTemplate(w, "home.html", map[string]any{
		"Username": user.Username,
	})
}

// startSession creates a session and sets the signed cookie.
func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, userID int64) error {
	sess, err := h.sessionStore.Create(userID)
	if err != nil {
		h.logger.Error("create session", "error", err)
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    auth.SignToken(sess.Token, h.secret),
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	return nil
}

// authenticated reports whether the request carries a valid session cookie.
func (h *AuthHandler) authenticated(r *http.Request) bool {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	token, ok := auth.VerifyToken(cookie.Value, h.secret)
	if !ok {
		return false
	}
	sess, err := h.sessionStore.GetByToken(token)
	return err == nil && sess != nil
}
