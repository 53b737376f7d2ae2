package controllers

import (
	"errors"
	"net/http"

	"recipe-shelf/app/dto"
	"recipe-shelf/app/middleware"
	"recipe-shelf/app/services"
	"recipe-shelf/app/session"
)

type AuthController struct {
	Users    *services.UserService
	Sessions *session.Manager
}

func NewAuthController(users *services.UserService, sessions *session.Manager) *AuthController {
	return &AuthController{Users: users, Sessions: sessions}
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var msgs []string
	if req.Username == "" {
		msgs = append(msgs, "Username must be present.")
	}
	if req.Password == "" {
		msgs = append(msgs, "Password must be present.")
	}
	if len(msgs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, dto.ValidationErrorResponse{Errors: msgs})
		return
	}
	u, err := c.Users.Register(req.Username, req.Password, req.ImageURL, req.Bio)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			writeError(w, http.StatusUnprocessableEntity, "Username already exists.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	if err := c.Sessions.Establish(r.Context(), w, u.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	writeJSON(w, http.StatusCreated, dto.NewUserResponse(u))
}

// CheckSession re-verifies that the session's user still exists; a session
// pointing at a deleted user is as dead as no session at all.
func (c *AuthController) CheckSession(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	u, err := c.Users.FindByID(userID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserResponse(u))
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	u, err := c.Users.ValidateCredentials(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid username or password.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	if err := c.Sessions.Establish(r.Context(), w, u.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserResponse(u))
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.Sessions.Destroy(r.Context(), w, r); err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
