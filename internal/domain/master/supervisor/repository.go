package supervisor

import (
	"context"
	"time"
)

// Supervisor is a field mentor interns are assigned to.
type Supervisor struct {
	ID        string
	Name      string
	Phone     *string
	Division  *string
	CreatedAt time.Time
}

type SupervisorRepository interface {
	Create(ctx context.Context, s Supervisor) (Supervisor, error)
	GetByID(ctx context.Context, id string) (Supervisor, error)
	List(ctx context.Context) ([]Supervisor, error)
	Delete(ctx context.Context, id string) error
}
