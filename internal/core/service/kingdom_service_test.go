package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ancientrealms/kingdom-system/internal/core/domain"
	"github.com/ancientrealms/kingdom-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubKingdomRepo struct {
	kingdoms map[string]*domain.Kingdom
	order    []string
	listErr  error
}

func newStubKingdomRepo() *stubKingdomRepo {
	return &stubKingdomRepo{kingdoms: make(map[string]*domain.Kingdom)}
}

func (r *stubKingdomRepo) List(_ context.Context) ([]domain.Kingdom, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Kingdom, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.kingdoms[id])
	}
	return out, nil
}

func (r *stubKingdomRepo) Create(_ context.Context, name string) (string, error) {
	id := primitive.NewObjectID().Hex()
	r.kingdoms[id] = &domain.Kingdom{ID: id, Name: name}
	r.order = append(r.order, id)
	return id, nil
}

func (r *stubKingdomRepo) FindByID(_ context.Context, id string) (*domain.Kingdom, error) {
	k, ok := r.kingdoms[id]
	if !ok {
		return nil, domain.ErrKingdomNotFound
	}
	clone := *k
	return &clone, nil
}

func (r *stubKingdomRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.kingdoms[id]; !ok {
		return false, nil
	}
	delete(r.kingdoms, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// stubClanRepo mirrors the real Mongo repository's behavior, including the
// update asymmetry and the modified-count semantics of member operations.
type stubClanRepo struct {
	clans map[string]*domain.Clan
}

func newStubClanRepo() *stubClanRepo {
	return &stubClanRepo{clans: make(map[string]*domain.Clan)}
}

func (r *stubClanRepo) Create(_ context.Context, kingdomID, name, description string) (*domain.Clan, error) {
	clan := &domain.Clan{
		ID:          primitive.NewObjectID().Hex(),
		KingdomID:   kingdomID,
		Name:        name,
		Description: description,
		ArmyMembers: []domain.ArmyMember{},
	}
	r.clans[clan.ID] = clan
	clone := *clan
	return &clone, nil
}

func (r *stubClanRepo) FindByID(_ context.Context, id string) (*domain.Clan, error) {
	clan, ok := r.clans[id]
	if !ok {
		return nil, domain.ErrClanNotFound
	}
	clone := *clan
	return &clone, nil
}

func (r *stubClanRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.clans[id]; !ok {
		return false, nil
	}
	delete(r.clans, id)
	return true, nil
}

func (r *stubClanRepo) ListByKingdom(_ context.Context, kingdomID string) ([]domain.Clan, error) {
	out := make([]domain.Clan, 0)
	for _, clan := range r.clans {
		if clan.KingdomID == kingdomID {
			out = append(out, *clan)
		}
	}
	return out, nil
}

func (r *stubClanRepo) Update(_ context.Context, id string, in ports.UpdateClanInput) (*domain.Clan, error) {
	clan, ok := r.clans[id]
	if !ok {
		return nil, domain.ErrClanNotFound
	}
	if in.Name != "" {
		clan.Name = in.Name
	}
	if in.Description != nil {
		clan.Description = *in.Description
	}
	clone := *clan
	return &clone, nil
}

func (r *stubClanRepo) AddMember(_ context.Context, clanID string, member domain.ArmyMember) error {
	clan, ok := r.clans[clanID]
	if !ok {
		return domain.ErrClanNotFound
	}
	clan.ArmyMembers = append(clan.ArmyMembers, member)
	return nil
}

func (r *stubClanRepo) RemoveMember(_ context.Context, clanID, memberID string) (bool, error) {
	clan, ok := r.clans[clanID]
	if !ok {
		return false, nil
	}
	for i, m := range clan.ArmyMembers {
		if m.ID == memberID {
			clan.ArmyMembers = append(clan.ArmyMembers[:i], clan.ArmyMembers[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *stubClanRepo) FindMember(_ context.Context, clanID, memberID string) (*domain.ArmyMember, error) {
	clan, ok := r.clans[clanID]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	for _, m := range clan.ArmyMembers {
		if m.ID == memberID {
			clone := m
			return &clone, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (r *stubClanRepo) UpdateMember(_ context.Context, clanID, memberID string, in ports.UpdateMemberInput) (*domain.ArmyMember, error) {
	clan, ok := r.clans[clanID]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	for i, m := range clan.ArmyMembers {
		if m.ID == memberID {
			updated := domain.ArmyMember{
				ID:               m.ID,
				Nickname:         in.Nickname,
				Email:            in.Email,
				Password:         in.Password,
				Rank:             in.Rank,
				MemberOf:         m.MemberOf,
				Status:           in.Status,
				RegistrationDate: in.RegistrationDate,
				LastLogin:        in.LastLogin,
				Description:      in.Description,
				Phone:            in.Phone,
				ImageAccess:      in.ImageAccess,
				InfoAccess:       in.InfoAccess,
				ManageAccess:     in.ManageAccess,
				MediaAccess:      in.MediaAccess,
			}
			clan.ArmyMembers[i] = updated
			clone := updated
			return &clone, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// ListKingdoms tests
// ---------------------------------------------------------------------------

func TestKingdomService_List_NewKingdomHasZeroClans(t *testing.T) {
	kingdoms := newStubKingdomRepo()
	clans := newStubClanRepo()
	svc := NewKingdomService(kingdoms, clans, discardLogger)

	created, err := svc.CreateKingdom(context.Background(), "Westeros")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	summaries, err := svc.ListKingdoms(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(summaries) != 1 {
		t.Fatalf("expected 1 kingdom, got %d", len(summaries))
	}
	if summaries[0].ID != created.ID {
		t.Errorf("id: want %q, got %q", created.ID, summaries[0].ID)
	}
	if summaries[0].Name != "Westeros" {
		t.Errorf("name: want %q, got %q", "Westeros", summaries[0].Name)
	}
	if summaries[0].ClanCount != 0 {
		t.Errorf("clan_count: want 0, got %d", summaries[0].ClanCount)
	}
}

func TestKingdomService_List_CountsClansPerKingdom(t *testing.T) {
	kingdoms := newStubKingdomRepo()
	clans := newStubClanRepo()
	svc := NewKingdomService(kingdoms, clans, discardLogger)

	first, _ := svc.CreateKingdom(context.Background(), "North")
	second, _ := svc.CreateKingdom(context.Background(), "South")

	for i := 0; i < 3; i++ {
		if _, err := clans.Create(context.Background(), first.ID, "clan", ""); err != nil {
			t.Fatalf("seed clan: %v", err)
		}
	}

	summaries, err := svc.ListKingdoms(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	counts := map[string]int{}
	for _, s := range summaries {
		counts[s.ID] = s.ClanCount
	}
	if counts[first.ID] != 3 {
		t.Errorf("first kingdom: want 3 clans, got %d", counts[first.ID])
	}
	if counts[second.ID] != 0 {
		t.Errorf("second kingdom: want 0 clans, got %d", counts[second.ID])
	}
}

func TestKingdomService_List_RepoError(t *testing.T) {
	kingdoms := newStubKingdomRepo()
	kingdoms.listErr = errors.New("db unavailable")
	svc := NewKingdomService(kingdoms, newStubClanRepo(), discardLogger)

	if _, err := svc.ListKingdoms(context.Background()); err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

// ---------------------------------------------------------------------------
// GetKingdom tests
// ---------------------------------------------------------------------------

func TestKingdomService_Get_HydratesClans(t *testing.T) {
	kingdoms := newStubKingdomRepo()
	clans := newStubClanRepo()
	svc := NewKingdomService(kingdoms, clans, discardLogger)

	kingdom, _ := svc.CreateKingdom(context.Background(), "Dorne")
	for i := 0; i < 2; i++ {
		if _, err := clans.Create(context.Background(), kingdom.ID, "clan", "desc"); err != nil {
			t.Fatalf("seed clan: %v", err)
		}
	}

	detail, err := svc.GetKingdom(context.Background(), kingdom.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if detail.ClanCount != 2 {
		t.Errorf("clan_count: want 2, got %d", detail.ClanCount)
	}
	if len(detail.Clans) != detail.ClanCount {
		t.Errorf("clan list length %d does not match clan_count %d", len(detail.Clans), detail.ClanCount)
	}
}

func TestKingdomService_Get_NotFound(t *testing.T) {
	svc := NewKingdomService(newStubKingdomRepo(), newStubClanRepo(), discardLogger)

	_, err := svc.GetKingdom(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, domain.ErrKingdomNotFound) {
		t.Errorf("expected ErrKingdomNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// DeleteKingdom tests
// ---------------------------------------------------------------------------

func TestKingdomService_Delete_LeavesClansOrphaned(t *testing.T) {
	kingdoms := newStubKingdomRepo()
	clans := newStubClanRepo()
	svc := NewKingdomService(kingdoms, clans, discardLogger)

	kingdom, _ := svc.CreateKingdom(context.Background(), "Valyria")
	clan, err := clans.Create(context.Background(), kingdom.ID, "dragonlords", "")
	if err != nil {
		t.Fatalf("seed clan: %v", err)
	}

	deleted, err := svc.DeleteKingdom(context.Background(), kingdom.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatal("expected deletion to report true")
	}

	// The orphaned clan must stay independently fetchable.
	orphan, err := clans.FindByID(context.Background(), clan.ID)
	if err != nil {
		t.Fatalf("orphan clan should survive kingdom deletion: %v", err)
	}
	if orphan.KingdomID != kingdom.ID {
		t.Errorf("orphan keeps its dangling kingdom reference: want %q, got %q", kingdom.ID, orphan.KingdomID)
	}
}

func TestKingdomService_Delete_MissReportsFalse(t *testing.T) {
	svc := NewKingdomService(newStubKingdomRepo(), newStubClanRepo(), discardLogger)

	deleted, err := svc.DeleteKingdom(context.Background(), primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted {
		t.Error("expected false for a kingdom that does not exist")
	}
}
