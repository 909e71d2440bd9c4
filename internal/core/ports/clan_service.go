package ports

import (
	"context"

	"github.com/ancientrealms/kingdom-system/internal/core/domain"
)

// NewMemberInput carries the caller-supplied fields for a new army member.
// Everything else (identifier, membership list, timestamps, capability
// flags) is defaulted by the service.
type NewMemberInput struct {
	Nickname string
	Email    string
	Password string
	Rank     string
}

// ClanService defines use-case operations on clans and their embedded
// army members.
type ClanService interface {
	CreateClan(ctx context.Context, kingdomID, name, description string) (*domain.Clan, error)
	GetClan(ctx context.Context, id string) (*domain.Clan, error)
	DeleteClan(ctx context.Context, id string) (bool, error)
	ListClans(ctx context.Context, kingdomID string) ([]domain.Clan, error)
	UpdateClan(ctx context.Context, id string, in UpdateClanInput) (*domain.Clan, error)

	// AddMember constructs a member with a fresh identifier, membership
	// seeded with the owning clan, and both timestamps set to now, then
	// appends it to the clan's array.
	AddMember(ctx context.Context, clanID string, in NewMemberInput) (*domain.ArmyMember, error)
	RemoveMember(ctx context.Context, clanID, memberID string) (bool, error)
	GetMember(ctx context.Context, clanID, memberID string) (*domain.ArmyMember, error)
	UpdateMember(ctx context.Context, clanID, memberID string, in UpdateMemberInput) (*domain.ArmyMember, error)
}
