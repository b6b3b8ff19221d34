package service

import (
	"github.com/Employeest/employeest-be/internal/dto"
	"github.com/Employeest/employeest-be/internal/repository"
)

// UserService is the read-only user directory.
type UserService interface {
	Search(query *dto.UserSearchQuery) ([]*dto.UserResponse, int64, error)
	GetByID(id int64) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Search(query *dto.UserSearchQuery) ([]*dto.UserResponse, int64, error) {
	users, total, err := s.userRepo.Search(query.Search, query.GetOffset(), query.GetPageSize())
	if err != nil {
		return nil, 0, err
	}

	results := make([]*dto.UserResponse, len(users))
	for i, user := range users {
		results[i] = dto.NewUserResponse(user)
	}
	return results, total, nil
}

func (s *userService) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}
