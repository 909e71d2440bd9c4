package ports

import (
	"context"

	"github.com/ancientrealms/kingdom-system/internal/core/domain"
)

// AuthService implements account registration and login. Tokens issued here
// are accepted by the auth middleware but no /api route requires one.
type AuthService interface {
	Register(ctx context.Context, username, password, email, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
