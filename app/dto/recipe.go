package dto

import "recipe-shelf/app/models"

type RecipeRequest struct {
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
}

type RecipeResponse struct {
	ID                uint         `json:"id"`
	Title             string       `json:"title"`
	Instructions      string       `json:"instructions"`
	MinutesToComplete *int         `json:"minutes_to_complete"`
	UserID            uint         `json:"user_id"`
	User              *RecipeOwner `json:"user,omitempty"`
}

// RecipeOwner is the user as embedded in a recipe, without the recipe list.
type RecipeOwner struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

func NewRecipeResponse(r *models.Recipe) RecipeResponse {
	resp := RecipeResponse{
		ID:                r.ID,
		Title:             r.Title,
		Instructions:      r.Instructions,
		MinutesToComplete: r.MinutesToComplete,
		UserID:            r.UserID,
	}
	if r.User != nil {
		resp.User = &RecipeOwner{ID: r.User.ID, Username: r.User.Username, ImageURL: r.User.ImageURL, Bio: r.User.Bio}
	}
	return resp
}

func NewRecipeList(recipes []models.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, NewRecipeResponse(&recipes[i]))
	}
	return out
}

func NewUserResponse(u *models.User) UserResponse {
	resp := UserResponse{
		ID:       u.ID,
		Username: u.Username,
		ImageURL: u.ImageURL,
		Bio:      u.Bio,
		Recipes:  make([]RecipeResponse, 0, len(u.Recipes)),
	}
	for i := range u.Recipes {
		r := NewRecipeResponse(&u.Recipes[i])
		r.User = nil
		resp.Recipes = append(resp.Recipes, r)
	}
	return resp
}
