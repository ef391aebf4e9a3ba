package leave

import (
	"context"
	"time"

	"github.com/interntrack/interntrack-backend-go/internal/domain/leave"
	"github.com/interntrack/interntrack-backend-go/internal/domain/user"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/database"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/metrics"
	"github.com/interntrack/interntrack-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type leaveServiceImpl struct {
	db       *database.DB
	repo     leave.LeaveRequestRepository
	userRepo user.UserRepository
}

func NewLeaveService(db *database.DB, repo leave.LeaveRequestRepository, userRepo user.UserRepository) leave.LeaveService {
	return &leaveServiceImpl{
		db:       db,
		repo:     repo,
		userRepo: userRepo,
	}
}

// CreateRequest implements leave.LeaveService.
func (s *leaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.repo.Create(ctx, leave.LeaveRequest{
		UserID:    req.UserID,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// ListMine implements leave.LeaveService.
func (s *leaveServiceImpl) ListMine(ctx context.Context, userID string, status *leave.LeaveStatus) ([]leave.LeaveResponse, error) {
	requests, err := s.repo.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// DeleteMine implements leave.LeaveService.
func (s *leaveServiceImpl) DeleteMine(ctx context.Context, userID string, leaveID string) error {
	request, err := s.repo.GetByID(ctx, leaveID)
	if err != nil {
		return err
	}
	if request.UserID != userID {
		return leave.ErrNotRequestOwner
	}
	if request.Status != leave.LeaveStatusPending {
		return leave.ErrNotPending
	}

	return s.repo.Delete(ctx, leaveID)
}

// ListAll implements leave.LeaveService.
func (s *leaveServiceImpl) ListAll(ctx context.Context, status *leave.LeaveStatus) ([]leave.LeaveResponse, error) {
	requests, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// Get implements leave.LeaveService.
func (s *leaveServiceImpl) Get(ctx context.Context, leaveID string) (leave.LeaveResponse, error) {
	request, err := s.repo.GetByID(ctx, leaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToResponse(request), nil
}

// Approve implements leave.LeaveService.
//
// The status transition and the balance deduction commit or roll back
// together: a request is never APPROVED without its days deducted, and
// days are never deducted twice because only the PENDING state can
// transition.
func (s *leaveServiceImpl) Approve(ctx context.Context, leaveID string) error {
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		request, err := s.repo.GetByID(txCtx, leaveID)
		if err != nil {
			return err
		}
		if request.Status != leave.LeaveStatusPending {
			return leave.ErrLeaveAlreadyDecided
		}

		if err := s.repo.UpdateDecision(txCtx, leaveID, leave.LeaveStatusApproved, nil); err != nil {
			return err
		}

		balance, err := s.userRepo.GetLeaveBalance(txCtx, request.UserID)
		if err != nil {
			return err
		}

		return s.userRepo.SetLeaveBalance(txCtx, request.UserID, deductedBalance(balance, request.Days()))
	})
	if err != nil {
		return err
	}

	metrics.LeaveDecisions.WithLabelValues(string(leave.LeaveStatusApproved)).Inc()
	return nil
}

// Reject implements leave.LeaveService.
func (s *leaveServiceImpl) Reject(ctx context.Context, leaveID string, note *string) error {
	request, err := s.repo.GetByID(ctx, leaveID)
	if err != nil {
		return err
	}
	if request.Status != leave.LeaveStatusPending {
		return leave.ErrLeaveAlreadyDecided
	}

	if err := s.repo.UpdateDecision(ctx, leaveID, leave.LeaveStatusRejected, note); err != nil {
		return err
	}

	metrics.LeaveDecisions.WithLabelValues(string(leave.LeaveStatusRejected)).Inc()
	return nil
}

// PendingCount implements leave.LeaveService.
func (s *leaveServiceImpl) PendingCount(ctx context.Context) (int, error) {
	return s.repo.CountPending(ctx)
}

// deductedBalance applies an approved request's day-count to a balance.
// Balances never go negative, even when the request is longer than the
// remaining days.
func deductedBalance(balance, days int) int {
	balance -= days
	if balance < 0 {
		return 0
	}
	return balance
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, leave.ToResponse(request))
	}
	return responses
}
