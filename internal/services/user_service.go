package services

import (
	"shopqa/internal/models"
	"shopqa/internal/repositories"
)

// UserService handles business logic related to users.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

// CreateUser creates a new user. repositories.ErrDuplicateUser is passed
// through for the handler to turn into a conflict response.
func (s *UserService) CreateUser(user *models.User) error {
	return s.repo.Create(user)
}
