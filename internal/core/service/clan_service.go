package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ancientrealms/kingdom-system/internal/api/metrics"
	"github.com/ancientrealms/kingdom-system/internal/core/domain"
	"github.com/ancientrealms/kingdom-system/internal/core/ports"
)

type ClanService struct {
	clans  ports.ClanRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewClanService(clans ports.ClanRepository, logger zerolog.Logger) *ClanService {
	return &ClanService{clans: clans, logger: logger, now: time.Now}
}

func (s *ClanService) CreateClan(ctx context.Context, kingdomID, name, description string) (*domain.Clan, error) {
	clan, err := s.clans.Create(ctx, kingdomID, name, description)
	if err != nil {
		s.logger.Error().Err(err).Str("kingdom_id", kingdomID).Msg("failed to create clan")
		return nil, err
	}

	metrics.ClansCreatedTotal.Inc()
	s.logger.Info().Str("clan_id", clan.ID).Str("kingdom_id", kingdomID).Msg("clan created")

	return clan, nil
}

func (s *ClanService) GetClan(ctx context.Context, id string) (*domain.Clan, error) {
	return s.clans.FindByID(ctx, id)
}

// DeleteClan removes the clan document. Members embedded only there are
// gone with it; nothing repairs their member_of lists elsewhere.
func (s *ClanService) DeleteClan(ctx context.Context, id string) (bool, error) {
	deleted, err := s.clans.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		metrics.EntitiesDeletedTotal.WithLabelValues("clan").Inc()
		s.logger.Info().Str("clan_id", id).Msg("clan deleted")
	}
	return deleted, nil
}

func (s *ClanService) ListClans(ctx context.Context, kingdomID string) ([]domain.Clan, error) {
	return s.clans.ListByKingdom(ctx, kingdomID)
}

func (s *ClanService) UpdateClan(ctx context.Context, id string, in ports.UpdateClanInput) (*domain.Clan, error) {
	clan, err := s.clans.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("clan_id", id).Msg("clan updated")
	return clan, nil
}

// AddMember builds the full member record and appends it to the clan's
// array. The membership list is seeded with the owning clan and both
// timestamps are set to the current instant; everything else not supplied
// starts at its zero value.
func (s *ClanService) AddMember(ctx context.Context, clanID string, in ports.NewMemberInput) (*domain.ArmyMember, error) {
	now := s.now().UTC()
	member := domain.ArmyMember{
		ID:               primitive.NewObjectID().Hex(),
		Nickname:         in.Nickname,
		Email:            in.Email,
		Password:         in.Password,
		Rank:             in.Rank,
		MemberOf:         []string{clanID},
		RegistrationDate: now,
		LastLogin:        now,
	}

	if err := s.clans.AddMember(ctx, clanID, member); err != nil {
		return nil, err
	}

	metrics.MembersMutatedTotal.WithLabelValues("add").Inc()
	s.logger.Info().Str("clan_id", clanID).Str("member_id", member.ID).Msg("member added")

	return &member, nil
}

func (s *ClanService) RemoveMember(ctx context.Context, clanID, memberID string) (bool, error) {
	removed, err := s.clans.RemoveMember(ctx, clanID, memberID)
	if err != nil {
		return false, err
	}
	if removed {
		metrics.MembersMutatedTotal.WithLabelValues("remove").Inc()
		s.logger.Info().Str("clan_id", clanID).Str("member_id", memberID).Msg("member removed")
	}
	return removed, nil
}

func (s *ClanService) GetMember(ctx context.Context, clanID, memberID string) (*domain.ArmyMember, error) {
	return s.clans.FindMember(ctx, clanID, memberID)
}

func (s *ClanService) UpdateMember(ctx context.Context, clanID, memberID string, in ports.UpdateMemberInput) (*domain.ArmyMember, error) {
	member, err := s.clans.UpdateMember(ctx, clanID, memberID, in)
	if err != nil {
		return nil, err
	}

	metrics.MembersMutatedTotal.WithLabelValues("update").Inc()
	s.logger.Info().Str("clan_id", clanID).Str("member_id", memberID).Msg("member updated")

	return member, nil
}
