package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"fakeuser/internal/domain"
	"fakeuser/internal/repository"
)

// UserGenerator produces the fields of a new user.
type UserGenerator interface {
	GenerateUser() domain.UserFields
}

// UserService describes user lifecycle operations.
type UserService interface {
	// GetOrCreateUser returns the user stored under id. When none exists a
	// generated user is inserted and returned; its id is assigned by the
	// repository and is not reconciled with the requested one.
	GetOrCreateUser(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	users     repository.UserRepository
	generator UserGenerator
	logger    logrus.FieldLogger
}

func NewUserService(users repository.UserRepository, generator UserGenerator, logger logrus.FieldLogger) UserService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &userService{
		users:     users,
		generator: generator,
		logger:    logger,
	}
}

func (s *userService) GetOrCreateUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user, err = s.insertGenerated(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"requested_id": id,
		"user_id":      user.ID,
	}).Info("user not found, created generated user")
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *userService) CreateUser(ctx context.Context) (*domain.User, error) {
	user, err := s.insertGenerated(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.WithField("user_id", user.ID).Debug("created user")
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	return s.users.Update(ctx, id, patch)
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

func (s *userService) insertGenerated(ctx context.Context) (*domain.User, error) {
	user := domain.NewUser(s.generator.GenerateUser())
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create generated user: %w", err)
	}
	return user, nil
}
