package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/aledanee/blotch/models"
	"github.com/aledanee/blotch/repositories"

	"gorm.io/gorm"
)

type UserService interface {
	UpdateUser(identifier string, req models.UserUpdateRequest, actor *models.User) (*models.User, error)
	GetUsers(params models.UserListParams) ([]models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// UpdateUser resolves identifier as a numeric id, an email (contains "@")
// or a username, in that order. Only the target user or an owner may
// update the record.
func (s *userService) UpdateUser(identifier string, req models.UserUpdateRequest, actor *models.User) (*models.User, error) {
	target, err := s.findByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError("User not found")
		}
		return nil, err
	}

	if actor.ID != target.ID && actor.Role != models.RoleOwner {
		return nil, models.ForbiddenError("Not authorized to update this user")
	}

	if req.Username != "" && req.Username != target.Username {
		existing, err := s.userRepo.GetByUsername(req.Username)
		if err == nil && existing.ID != target.ID {
			return nil, models.ConflictError("Username already in use")
		}
	}

	if req.Email != "" && req.Email != target.Email {
		existing, err := s.userRepo.GetByEmail(req.Email)
		if err == nil && existing.ID != target.ID {
			return nil, models.ConflictError("Email already in use")
		}
	}

	if req.Username != "" {
		target.Username = req.Username
	}
	if req.Email != "" {
		target.Email = req.Email
	}
	if req.Role != "" {
		target.Role = req.Role
	}

	if err := s.userRepo.Update(target); err != nil {
		if repositories.IsDuplicateKey(err) {
			return nil, models.ConflictError("Username or email already in use")
		}
		return nil, err
	}

	return target, nil
}

func (s *userService) GetUsers(params models.UserListParams) ([]models.User, error) {
	return s.userRepo.GetList(params)
}

func (s *userService) findByIdentifier(identifier string) (*models.User, error) {
	if id, err := strconv.ParseUint(identifier, 10, 32); err == nil {
		return s.userRepo.GetByID(uint(id))
	}
	if strings.Contains(identifier, "@") {
		return s.userRepo.GetByEmail(identifier)
	}
	return s.userRepo.GetByUsername(identifier)
}
