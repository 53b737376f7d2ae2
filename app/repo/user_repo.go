package repo

import (
	"recipe-shelf/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

// Create inserts inside a transaction; on conflict the insert is rolled
// back and no partial row persists.
func (r *UserRepository) Create(u *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(u).Error
	})
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.Preload("Recipes").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.Preload("Recipes").Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
