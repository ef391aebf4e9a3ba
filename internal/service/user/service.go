package user

import (
	"context"
	"fmt"

	"github.com/interntrack/interntrack-backend-go/internal/domain/master/period"
	"github.com/interntrack/interntrack-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type userServiceImpl struct {
	repo       user.UserRepository
	periodRepo period.PeriodRepository
}

func NewUserService(repo user.UserRepository, periodRepo period.PeriodRepository) user.UserService {
	return &userServiceImpl{
		repo:       repo,
		periodRepo: periodRepo,
	}
}

// Create implements user.UserService.
func (s *userServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	balance := req.LeaveBalance
	// A new intern without an explicit balance inherits the period's
	// allotment.
	if balance == 0 && req.PeriodID != nil {
		p, err := s.periodRepo.GetByID(ctx, *req.PeriodID)
		if err != nil {
			return user.UserResponse{}, err
		}
		balance = p.LeaveAllotment
	}

	created, err := s.repo.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: &hashStr,
		Role:         user.Role(req.Role),
		SupervisorID: req.SupervisorID,
		PeriodID:     req.PeriodID,
		LeaveBalance: balance,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// GetProfile implements user.UserService.
func (s *userServiceImpl) GetProfile(ctx context.Context, id string) (user.UserResponse, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(account), nil
}

// List implements user.UserService.
func (s *userServiceImpl) List(ctx context.Context, role *user.Role) ([]user.UserResponse, error) {
	accounts, err := s.repo.List(ctx, role)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, user.ToResponse(account))
	}
	return responses, nil
}

// Update implements user.UserService.
func (s *userServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	account, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Email != nil {
		account.Email = *req.Email
	}
	if req.SupervisorID != nil {
		account.SupervisorID = req.SupervisorID
	}
	if req.PeriodID != nil {
		account.PeriodID = req.PeriodID
	}
	if req.LeaveBalance != nil {
		account.LeaveBalance = *req.LeaveBalance
	}

	if err := s.repo.Update(ctx, account); err != nil {
		return user.UserResponse{}, err
	}

	return s.GetProfile(ctx, req.ID)
}

// Delete implements user.UserService.
func (s *userServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
