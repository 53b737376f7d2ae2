package repo

import (
	"recipe-shelf/app/models"

	"gorm.io/gorm"
)

type RecipeRepository struct{ db *gorm.DB }

func NewRecipeRepository(db *gorm.DB) *RecipeRepository { return &RecipeRepository{db: db} }

func (r *RecipeRepository) Create(rec *models.Recipe) error { return r.db.Create(rec).Error }

func (r *RecipeRepository) ListAll() ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := r.db.Preload("User").Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *RecipeRepository) ListByOwner(ownerID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := r.db.Preload("User").Where("user_id = ?", ownerID).Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}