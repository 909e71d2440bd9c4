package ports

import (
	"context"
	"time"

	"github.com/ancientrealms/kingdom-system/internal/core/domain"
)

// UpdateClanInput carries the partial-update fields for a clan. Name is
// applied only when non-empty; an empty string leaves the stored name
// untouched. Description is applied whenever the pointer is non-nil, so an
// explicit empty string clears the field. The asymmetry is deliberate.
type UpdateClanInput struct {
	Name        string
	Description *string
}

// UpdateMemberInput carries every mutable member field. Member updates are a
// full replace: all thirteen fields are written unconditionally, in contrast
// with UpdateClanInput's partial semantics.
type UpdateMemberInput struct {
	Nickname         string
	Email            string
	Password         string
	Rank             string
	Status           string
	RegistrationDate time.Time
	LastLogin        time.Time
	Description      string
	Phone            string
	ImageAccess      bool
	InfoAccess       bool
	ManageAccess     bool
	MediaAccess      bool
}

// ClanRepository defines persistence operations for clan documents and their
// embedded army member arrays. Every mutation is a single-document write;
// the store's per-document atomicity is the only concurrency guarantee.
type ClanRepository interface {
	// Create inserts a clan with an explicit new identifier, the owning
	// kingdom's identifier, and an empty member array, then returns the
	// freshly re-read document.
	Create(ctx context.Context, kingdomID, name, description string) (*domain.Clan, error)
	FindByID(ctx context.Context, id string) (*domain.Clan, error)
	Delete(ctx context.Context, id string) (bool, error)
	// ListByKingdom returns all clans whose kingdom identifier matches, with
	// embedded members hydrated.
	ListByKingdom(ctx context.Context, kingdomID string) ([]domain.Clan, error)
	// Update applies the partial fields and returns the post-update clan, or
	// domain.ErrClanNotFound when the identifier matched nothing.
	Update(ctx context.Context, id string, in UpdateClanInput) (*domain.Clan, error)
	// AddMember appends the already-constructed member to the clan's array.
	// domain.ErrClanNotFound is returned when the append modified nothing.
	AddMember(ctx context.Context, clanID string, member domain.ArmyMember) error
	// RemoveMember pulls the matching member out of the array and reports
	// whether a modification occurred.
	RemoveMember(ctx context.Context, clanID, memberID string) (bool, error)
	FindMember(ctx context.Context, clanID, memberID string) (*domain.ArmyMember, error)
	// UpdateMember replaces all fields of the matching array element and
	// returns the member re-read from the store, or domain.ErrMemberNotFound
	// when no element matched.
	UpdateMember(ctx context.Context, clanID, memberID string, in UpdateMemberInput) (*domain.ArmyMember, error)
}
