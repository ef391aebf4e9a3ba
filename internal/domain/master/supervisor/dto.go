package supervisor

import (
	"errors"

	"github.com/interntrack/interntrack-backend-go/internal/pkg/validator"
)

var ErrSupervisorNotFound = errors.New("supervisor not found")

type CreateSupervisorRequest struct {
	Name     string  `json:"name"`
	Phone    *string `json:"phone,omitempty"`
	Division *string `json:"division,omitempty"`
}

func (r *CreateSupervisorRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SupervisorResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone,omitempty"`
	Division  *string `json:"division,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func ToResponse(s Supervisor) SupervisorResponse {
	return SupervisorResponse{
		ID:        s.ID,
		Name:      s.Name,
		Phone:     s.Phone,
		Division:  s.Division,
		CreatedAt: s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
