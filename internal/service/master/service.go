package master

import (
	"context"
	"time"

	"github.com/interntrack/interntrack-backend-go/internal/domain/master/period"
	"github.com/interntrack/interntrack-backend-go/internal/domain/master/supervisor"
)

// MasterService manages the reference data interns are assigned to:
// internship periods and field supervisors.
type MasterService interface {
	CreatePeriod(ctx context.Context, req period.CreatePeriodRequest) (period.PeriodResponse, error)
	GetPeriod(ctx context.Context, id string) (period.PeriodResponse, error)
	ListPeriods(ctx context.Context) ([]period.PeriodResponse, error)
	UpdatePeriod(ctx context.Context, id string, req period.CreatePeriodRequest) (period.PeriodResponse, error)
	DeletePeriod(ctx context.Context, id string) error

	CreateSupervisor(ctx context.Context, req supervisor.CreateSupervisorRequest) (supervisor.SupervisorResponse, error)
	ListSupervisors(ctx context.Context) ([]supervisor.SupervisorResponse, error)
	DeleteSupervisor(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	periodRepo     period.PeriodRepository
	supervisorRepo supervisor.SupervisorRepository
}

func NewMasterService(periodRepo period.PeriodRepository, supervisorRepo supervisor.SupervisorRepository) MasterService {
	return &masterServiceImpl{
		periodRepo:     periodRepo,
		supervisorRepo: supervisorRepo,
	}
}

// CreatePeriod implements MasterService.
func (s *masterServiceImpl) CreatePeriod(ctx context.Context, req period.CreatePeriodRequest) (period.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return period.PeriodResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.periodRepo.Create(ctx, period.Period{
		Name:           req.Name,
		StartDate:      start,
		EndDate:        end,
		LeaveAllotment: req.LeaveAllotment,
	})
	if err != nil {
		return period.PeriodResponse{}, err
	}

	return period.ToResponse(created), nil
}

// GetPeriod implements MasterService.
func (s *masterServiceImpl) GetPeriod(ctx context.Context, id string) (period.PeriodResponse, error) {
	p, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return period.PeriodResponse{}, err
	}
	return period.ToResponse(p), nil
}

// ListPeriods implements MasterService.
func (s *masterServiceImpl) ListPeriods(ctx context.Context) ([]period.PeriodResponse, error) {
	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]period.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, period.ToResponse(p))
	}
	return responses, nil
}

// UpdatePeriod implements MasterService.
func (s *masterServiceImpl) UpdatePeriod(ctx context.Context, id string, req period.CreatePeriodRequest) (period.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return period.PeriodResponse{}, err
	}

	p, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return period.PeriodResponse{}, err
	}

	p.Name = req.Name
	p.StartDate, _ = time.Parse("2006-01-02", req.StartDate)
	p.EndDate, _ = time.Parse("2006-01-02", req.EndDate)
	p.LeaveAllotment = req.LeaveAllotment

	if err := s.periodRepo.Update(ctx, p); err != nil {
		return period.PeriodResponse{}, err
	}

	return period.ToResponse(p), nil
}

// DeletePeriod implements MasterService.
func (s *masterServiceImpl) DeletePeriod(ctx context.Context, id string) error {
	return s.periodRepo.Delete(ctx, id)
}

// CreateSupervisor implements MasterService.
func (s *masterServiceImpl) CreateSupervisor(ctx context.Context, req supervisor.CreateSupervisorRequest) (supervisor.SupervisorResponse, error) {
	if err := req.Validate(); err != nil {
		return supervisor.SupervisorResponse{}, err
	}

	created, err := s.supervisorRepo.Create(ctx, supervisor.Supervisor{
		Name:     req.Name,
		Phone:    req.Phone,
		Division: req.Division,
	})
	if err != nil {
		return supervisor.SupervisorResponse{}, err
	}

	return supervisor.ToResponse(created), nil
}

// ListSupervisors implements MasterService.
func (s *masterServiceImpl) ListSupervisors(ctx context.Context) ([]supervisor.SupervisorResponse, error) {
	supervisors, err := s.supervisorRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]supervisor.SupervisorResponse, 0, len(supervisors))
	for _, sup := range supervisors {
		responses = append(responses, supervisor.ToResponse(sup))
	}
	return responses, nil
}

// DeleteSupervisor implements MasterService.
func (s *masterServiceImpl) DeleteSupervisor(ctx context.Context, id string) error {
	return s.supervisorRepo.Delete(ctx, id)
}
