package ports

import (
	"context"

	"github.com/ancientrealms/kingdom-system/internal/core/domain"
)

// KingdomService defines use-case operations on kingdoms.
type KingdomService interface {
	// ListKingdoms returns every kingdom with its derived clan count. The
	// count costs one extra store round-trip per kingdom and is
	// read-uncommitted relative to concurrent clan writes.
	ListKingdoms(ctx context.Context) ([]domain.KingdomSummary, error)
	CreateKingdom(ctx context.Context, name string) (*domain.Kingdom, error)
	// GetKingdom returns the kingdom hydrated with its full clan list.
	GetKingdom(ctx context.Context, id string) (*domain.KingdomDetail, error)
	DeleteKingdom(ctx context.Context, id string) (bool, error)
}
