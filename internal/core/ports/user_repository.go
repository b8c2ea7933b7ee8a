package ports

import (
	"context"
	"time"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// AppendLoginLog and ClearRefreshToken must be atomic single-document updates
// so concurrent logins/logouts for the same user never lose writes.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context, onlyNonAdmin bool) ([]*domain.User, error)
	AppendLoginLog(ctx context.Context, id string, at time.Time) error
	SetBlocked(ctx context.Context, id string, blocked bool) (*domain.User, error)
	SetAgreementSigned(ctx context.Context, id string) error
	SetRefreshToken(ctx context.Context, id, token string) error
	ClearRefreshToken(ctx context.Context, id string) error
}
