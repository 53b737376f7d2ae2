package controllers

import (
	"errors"
	"net/http"

	"recipe-shelf/app/dto"
	"recipe-shelf/app/middleware"
	"recipe-shelf/app/models"
	"recipe-shelf/app/services"
)

type RecipeController struct {
	Recipes *services.RecipeService
	Users   *services.UserService
}

func NewRecipeController(recipes *services.RecipeService, users *services.UserService) *RecipeController {
	return &RecipeController{Recipes: recipes, Users: users}
}

// Index dispatches GET and POST for /recipes; both run behind
// RequireSession.
func (c *RecipeController) Index(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.list(w, r)
	case http.MethodPost:
		c.create(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// list returns the caller's own recipes only.
func (c *RecipeController) list(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	recipes, err := c.Recipes.ListByOwner(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	writeJSON(w, http.StatusOK, dto.NewRecipeList(recipes))
}

func (c *RecipeController) create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	var req dto.RecipeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rec, err := c.Recipes.Create(req.Title, req.Instructions, req.MinutesToComplete, userID)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, dto.ValidationErrorResponse{Errors: verr.Messages})
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	if u, err := c.Users.FindByID(userID); err == nil {
		rec.User = u
	}
	writeJSON(w, http.StatusCreated, dto.NewRecipeResponse(rec))
}
