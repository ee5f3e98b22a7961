package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"lifeupdate/api/internal/auth"
	"lifeupdate/api/internal/repositories"
)

type AuthHandler struct {
	users    *repositories.UserRepository
	sessions *auth.SessionStore
}

func NewAuthHandler(users *repositories.UserRepository, sessions *auth.SessionStore) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

// RequireLogin wraps a handler that needs the current user's id. Requests
// without a valid session get 401.
func (h *AuthHandler) RequireLogin(next func(w http.ResponseWriter, r *http.Request, userID int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := h.currentUser(r)
		if !ok {
			WriteError(w, http.StatusUnauthorized, "Not logged in")
			return
		}
		next(w, r, userID)
	}
}

func (h *AuthHandler) currentUser(r *http.Request) (int64, bool) {
	cookie, err := r.Cookie(auth.CookieName)
	if err != nil || strings.TrimSpace(cookie.Value) == "" {
		return 0, false
	}
	return h.sessions.UserID(cookie.Value)
}

func (h *AuthHandler) setSession(w http.ResponseWriter, userID int64) {
	token := h.sessions.Create(userID)
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSession(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		h.sessions.Destroy(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// HandleRegister creates a new account with email, name, and password and
// logs it in.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := ReadJSON(r, &body); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))
	name := strings.TrimSpace(body.Name)
	if email == "" || name == "" || body.Password == "" {
		WriteError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	userID, err := h.users.Register(r.Context(), email, name, body.Password)
	if errors.Is(err, repositories.ErrEmailTaken) {
		WriteError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		log.Printf("Error registering user: %v", err)
		WriteError(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	h.setSession(w, userID)
	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "failed to load account")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"message": "Account created", "user": user})
}

// HandleLogin verifies credentials and starts a session.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ReadJSON(r, &body); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))
	if email == "" || body.Password == "" {
		WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	userID, err := h.users.Authenticate(r.Context(), email, body.Password)
	if errors.Is(err, repositories.ErrInvalidCredentials) {
		WriteError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		log.Printf("Error authenticating user: %v", err)
		WriteError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	h.setSession(w, userID)
	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "failed to load account")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"message": "Logged in", "user": user})
}

// HandleMe returns the current logged-in user, or 401.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUser(r)
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, map[string]any{"user": nil})
		return
	}
	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil || user == nil {
		h.clearSession(w, r)
		WriteJSON(w, http.StatusUnauthorized, map[string]any{"user": nil})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"user": user})
}

// HandleLogout destroys the session.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.clearSession(w, r)
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
