package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ancientrealms/kingdom-system/internal/api/metrics"
	"github.com/ancientrealms/kingdom-system/internal/core/domain"
	"github.com/ancientrealms/kingdom-system/internal/core/ports"
)

type KingdomService struct {
	kingdoms ports.KingdomRepository
	clans    ports.ClanRepository
	logger   zerolog.Logger
}

func NewKingdomService(kingdoms ports.KingdomRepository, clans ports.ClanRepository, logger zerolog.Logger) *KingdomService {
	return &KingdomService{kingdoms: kingdoms, clans: clans, logger: logger}
}

// ListKingdoms fetches every kingdom, then counts each kingdom's clans with
// a separate round-trip. The two reads are not a snapshot; a clan created
// concurrently may or may not be counted.
func (s *KingdomService) ListKingdoms(ctx context.Context) ([]domain.KingdomSummary, error) {
	kingdoms, err := s.kingdoms.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.KingdomSummary, 0, len(kingdoms))
	for _, k := range kingdoms {
		clans, err := s.clans.ListByKingdom(ctx, k.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, domain.KingdomSummary{
			ID:        k.ID,
			Name:      k.Name,
			ClanCount: len(clans),
		})
	}
	return summaries, nil
}

func (s *KingdomService) CreateKingdom(ctx context.Context, name string) (*domain.Kingdom, error) {
	id, err := s.kingdoms.Create(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create kingdom")
		return nil, err
	}

	metrics.KingdomsCreatedTotal.Inc()
	s.logger.Info().Str("kingdom_id", id).Str("name", name).Msg("kingdom created")

	return &domain.Kingdom{ID: id, Name: name}, nil
}

// GetKingdom returns the kingdom hydrated with its fully loaded clan list.
func (s *KingdomService) GetKingdom(ctx context.Context, id string) (*domain.KingdomDetail, error) {
	kingdom, err := s.kingdoms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	clans, err := s.clans.ListByKingdom(ctx, kingdom.ID)
	if err != nil {
		return nil, err
	}

	return &domain.KingdomDetail{
		ID:        kingdom.ID,
		Name:      kingdom.Name,
		ClanCount: len(clans),
		Clans:     clans,
	}, nil
}

// DeleteKingdom removes the kingdom document only. Its clans are left in
// place and stay independently fetchable by identifier.
func (s *KingdomService) DeleteKingdom(ctx context.Context, id string) (bool, error) {
	deleted, err := s.kingdoms.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		metrics.EntitiesDeletedTotal.WithLabelValues("kingdom").Inc()
		s.logger.Info().Str("kingdom_id", id).Msg("kingdom deleted")
	}
	return deleted, nil
}
