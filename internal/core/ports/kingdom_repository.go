package ports

import (
	"context"

	"github.com/ancientrealms/kingdom-system/internal/core/domain"
)

// KingdomRepository defines persistence operations for kingdom documents.
type KingdomRepository interface {
	// List returns every kingdom with only the name projected. Order is the
	// store's natural iteration order and is not guaranteed stable.
	List(ctx context.Context) ([]domain.Kingdom, error)
	// Create inserts a kingdom holding only a name and returns the generated
	// identifier. Duplicate names are permitted.
	Create(ctx context.Context, name string) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Kingdom, error)
	// Delete reports whether exactly one document was removed. Dependent
	// clans are never touched; orphaning is accepted behavior.
	Delete(ctx context.Context, id string) (bool, error)
}
