package middleware

import (
	"net/http"

	"github.com/VougishTiger/MealSmith/internal/auth"
	"github.com/VougishTiger/MealSmith/internal/store"
)

const sessionCookieName = "mealsmith_session"

// RequireAuth validates the signed session cookie and populates AuthContext.
// Anything short of a verified, unexpired session redirects to /login.
func RequireAuth(sessions *store.SessionStore, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			token, ok := auth.VerifyToken(cookie.Value, secret)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			sess, err := sessions.GetByToken(token)
			if err != nil || sess == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ac := auth.AuthContext{
				UserID:    sess.UserID,
				SessionID: sess.ID,
			}

			ctx := auth.WithAuth(r.Context(), ac)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
