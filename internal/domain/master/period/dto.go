package period

import (
	"github.com/interntrack/interntrack-backend-go/internal/pkg/validator"
)

type CreatePeriodRequest struct {
	Name           string `json:"name"`
	StartDate      string `json:"start_date"` // YYYY-MM-DD
	EndDate        string `json:"end_date"`   // YYYY-MM-DD
	LeaveAllotment int    `json:"leave_allotment"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}
	if r.LeaveAllotment < 0 {
		errs = append(errs, validator.ValidationError{Field: "leave_allotment", Message: "leave_allotment must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	LeaveAllotment int    `json:"leave_allotment"`
	CreatedAt      string `json:"created_at"`
}

func ToResponse(p Period) PeriodResponse {
	return PeriodResponse{
		ID:             p.ID,
		Name:           p.Name,
		StartDate:      p.StartDate.Format("2006-01-02"),
		EndDate:        p.EndDate.Format("2006-01-02"),
		LeaveAllotment: p.LeaveAllotment,
		CreatedAt:      p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
