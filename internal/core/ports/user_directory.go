package ports

import (
	"context"

	"github.com/webportal/portal-client/internal/core/domain"
)

// UserDirectory is the backend-side store of directory users exposed over
// the /users endpoints.
type UserDirectory interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user domain.User) (*domain.User, error)
	Update(ctx context.Context, id int, user domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int) error
}
