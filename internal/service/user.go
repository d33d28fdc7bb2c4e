package service

import (
	"github.com/alfieapp/quarterly/internal/model"
	"github.com/alfieapp/quarterly/internal/repository"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.repo.ByID(id)
}

// Delete removes the account; quarters, goals, meetings and deals cascade.
func (s *UserService) Delete(id string) error {
	return s.repo.Delete(id)
}
