package service

import (
	"context"
	"strings"

	"gromeuse/internal/entity"
	"gromeuse/internal/repository"
	"gromeuse/internal/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserService is the admin-facing account management surface.
type UserService struct {
	users        repository.UserRepository
	passwordHash PasswordHasher
}

func NewUserService(users repository.UserRepository, passwordHash PasswordHasher) *UserService {
	return &UserService{users: users, passwordHash: passwordHash}
}

type UpdateUserInput struct {
	Name     *string
	Password *string
	Roles    []entity.Role
}

func (s *UserService) List(ctx context.Context, limit, offset int) ([]entity.User, error) {
	return s.users.List(ctx, limit, offset)
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrInvalidInput
		}
		user.Name = name
	}
	if input.Password != nil {
		hash, err := s.passwordHash.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = &hash
	}
	if input.Roles != nil {
		if len(input.Roles) == 0 {
			return nil, ErrInvalidInput
		}
		for _, role := range input.Roles {
			if !entity.ValidRole(role) {
				return nil, ErrInvalidInput
			}
		}
		user.Roles = datatypes.NewJSONSlice(input.Roles)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the account outright; there is no soft delete.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return s.users.Delete(ctx, id)
}
