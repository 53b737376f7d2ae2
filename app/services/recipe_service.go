package services

import (
	"fmt"

	"recipe-shelf/app/models"
	"recipe-shelf/app/repo"
)

type RecipeService struct{ recipes *repo.RecipeRepository }

func NewRecipeService(recipes *repo.RecipeRepository) *RecipeService {
	return &RecipeService{recipes: recipes}
}

// Create validates before persistence. A *models.ValidationError return
// means nothing was written.
func (s *RecipeService) Create(title, instructions string, minutes *int, ownerID uint) (*models.Recipe, error) {
	rec := &models.Recipe{Title: title, Instructions: instructions, MinutesToComplete: minutes, UserID: ownerID}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if err := s.recipes.Create(rec); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return rec, nil
}

func (s *RecipeService) ListAll() ([]models.Recipe, error) {
	return s.recipes.ListAll()
}

func (s *RecipeService) ListByOwner(ownerID uint) ([]models.Recipe, error) {
	return s.recipes.ListByOwner(ownerID)
}
