package services

import (
	"errors"
	"fmt"

	"recipe-shelf/app/models"
	"recipe-shelf/app/repo"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

// Register hashes the password and inserts the user. A duplicate username
// is reported as ErrUsernameTaken; the failed insert leaves no row behind.
func (s *UserService) Register(username, password, imageURL, bio string) (*models.User, error) {
	u := &models.User{Username: username, ImageURL: imageURL, Bio: bio}
	if err := u.SetPassword(password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.Create(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	return s.users.FindByID(id)
}

func (s *UserService) FindByUsername(username string) (*models.User, error) {
	return s.users.FindByUsername(username)
}

// ValidateCredentials resolves the user and checks the password. Both
// unknown-user and bad-password collapse into ErrInvalidCredentials so the
// response cannot distinguish them.
func (s *UserService) ValidateCredentials(username, password string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !u.Authenticate(password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
