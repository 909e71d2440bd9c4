package ports

import (
	"context"

	"github.com/ancientrealms/kingdom-system/internal/core/domain"
)

// AuthRepository defines persistence operations for login accounts.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
