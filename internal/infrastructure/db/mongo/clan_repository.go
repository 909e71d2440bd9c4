package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ancientrealms/kingdom-system/internal/core/domain"
	"github.com/ancientrealms/kingdom-system/internal/core/ports"
)

const collectionClans = "clans"

type ClanRepository struct {
	col *mongo.Collection
}

func NewClanRepository(db *mongo.Database) *ClanRepository {
	return &ClanRepository{col: db.Collection(collectionClans)}
}

// memberDoc is the stored shape of an embedded army member. Document keys
// are camelCase; missing fields default to their zero values on decode.
type memberDoc struct {
	ID               primitive.ObjectID `bson:"_id"`
	Nickname         string             `bson:"nickname"`
	Email            string             `bson:"email"`
	Password         string             `bson:"password"`
	Rank             string             `bson:"rank"`
	MemberOf         []string           `bson:"memberOf"`
	Status           string             `bson:"status"`
	RegistrationDate time.Time          `bson:"registrationDate"`
	LastLogin        time.Time          `bson:"lastLogin"`
	Description      string             `bson:"description"`
	Phone            string             `bson:"phone"`
	ImageAccess      bool               `bson:"imageAccess"`
	InfoAccess       bool               `bson:"infoAccess"`
	ManageAccess     bool               `bson:"manageAccess"`
	MediaAccess      bool               `bson:"mediaAccess"`
}

// clanDoc is the stored shape of a clan document.
type clanDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	KingdomID   primitive.ObjectID `bson:"kingdomId"`
	ClanName    string             `bson:"clanName"`
	Description string             `bson:"description"`
	ArmyMembers []memberDoc        `bson:"armyMembers"`
}

func (d memberDoc) toDomain() domain.ArmyMember {
	// Empty membership entries are dropped; the list stays non-nil so it
	// serializes as [] rather than null.
	memberOf := make([]string, 0, len(d.MemberOf))
	for _, id := range d.MemberOf {
		if id != "" {
			memberOf = append(memberOf, id)
		}
	}

	return domain.ArmyMember{
		ID:               d.ID.Hex(),
		Nickname:         d.Nickname,
		Email:            d.Email,
		Password:         d.Password,
		Rank:             d.Rank,
		MemberOf:         memberOf,
		Status:           d.Status,
		RegistrationDate: d.RegistrationDate.UTC(),
		LastLogin:        d.LastLogin.UTC(),
		Description:      d.Description,
		Phone:            d.Phone,
		ImageAccess:      d.ImageAccess,
		InfoAccess:       d.InfoAccess,
		ManageAccess:     d.ManageAccess,
		MediaAccess:      d.MediaAccess,
	}
}

func (d clanDoc) toDomain() domain.Clan {
	members := make([]domain.ArmyMember, 0, len(d.ArmyMembers))
	for _, m := range d.ArmyMembers {
		members = append(members, m.toDomain())
	}

	return domain.Clan{
		ID:          d.ID.Hex(),
		KingdomID:   d.KingdomID.Hex(),
		Name:        d.ClanName,
		Description: d.Description,
		ArmyMembers: members,
	}
}

func memberToDoc(m domain.ArmyMember) (memberDoc, error) {
	oid, err := parseID(m.ID)
	if err != nil {
		return memberDoc{}, err
	}

	return memberDoc{
		ID:               oid,
		Nickname:         m.Nickname,
		Email:            m.Email,
		Password:         m.Password,
		Rank:             m.Rank,
		MemberOf:         m.MemberOf,
		Status:           m.Status,
		RegistrationDate: m.RegistrationDate.UTC(),
		LastLogin:        m.LastLogin.UTC(),
		Description:      m.Description,
		Phone:            m.Phone,
		ImageAccess:      m.ImageAccess,
		InfoAccess:       m.InfoAccess,
		ManageAccess:     m.ManageAccess,
		MediaAccess:      m.MediaAccess,
	}, nil
}

// Create inserts a clan with an explicit new identifier and an empty member
// array, then re-reads and returns the stored document.
func (r *ClanRepository) Create(ctx context.Context, kingdomID, name, description string) (*domain.Clan, error) {
	kingdomOID, err := parseID(kingdomID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := clanDoc{
		ID:          primitive.NewObjectID(),
		KingdomID:   kingdomOID,
		ClanName:    name,
		Description: description,
		ArmyMembers: []memberDoc{},
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert clan: %w", err)
	}

	return r.findByOID(ctx, doc.ID)
}

func (r *ClanRepository) FindByID(ctx context.Context, id string) (*domain.Clan, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.findByOID(ctx, oid)
}

func (r *ClanRepository) findByOID(ctx context.Context, oid primitive.ObjectID) (*domain.Clan, error) {
	var doc clanDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClanNotFound
		}
		return nil, fmt.Errorf("find clan: %w", err)
	}

	clan := doc.toDomain()
	return &clan, nil
}

// Delete removes the clan document. Members embedded only there are gone
// with it; member_of lists elsewhere are not repaired.
func (r *ClanRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete clan: %w", err)
	}
	return res.DeletedCount == 1, nil
}

func (r *ClanRepository) ListByKingdom(ctx context.Context, kingdomID string) ([]domain.Clan, error) {
	kingdomOID, err := parseID(kingdomID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"kingdomId": kingdomOID})
	if err != nil {
		return nil, fmt.Errorf("list clans: %w", err)
	}

	var docs []clanDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list clans: %w", err)
	}

	clans := make([]domain.Clan, 0, len(docs))
	for _, d := range docs {
		clans = append(clans, d.toDomain())
	}
	return clans, nil
}

// Update applies only the supplied fields. A non-empty name sets clanName;
// an empty name is a no-op rather than a clearing. A non-nil description is
// always applied, including the explicit empty string.
func (r *ClanRepository) Update(ctx context.Context, id string, in ports.UpdateClanInput) (*domain.Clan, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if in.Name != "" {
		set["clanName"] = in.Name
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if len(set) == 0 {
		// Nothing to apply; the store rejects an empty $set.
		return r.findByOID(ctx, oid)
	}

	var doc clanDoc
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClanNotFound
		}
		return nil, fmt.Errorf("update clan: %w", err)
	}

	clan := doc.toDomain()
	return &clan, nil
}

// AddMember appends the member to the clan's array in a single atomic
// document write. A zero modified count means the clan does not exist.
func (r *ClanRepository) AddMember(ctx context.Context, clanID string, member domain.ArmyMember) error {
	clanOID, err := parseID(clanID)
	if err != nil {
		return err
	}
	doc, err := memberToDoc(member)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(
		ctx,
		bson.M{"_id": clanOID},
		bson.M{"$push": bson.M{"armyMembers": doc}},
	)
	if err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	if res.ModifiedCount == 0 {
		return domain.ErrClanNotFound
	}
	return nil
}

// RemoveMember pulls the matching member out of the array and reports
// whether a modification occurred. Pulling an absent member is not an error.
func (r *ClanRepository) RemoveMember(ctx context.Context, clanID, memberID string) (bool, error) {
	clanOID, err := parseID(clanID)
	if err != nil {
		return false, err
	}
	memberOID, err := parseID(memberID)
	if err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(
		ctx,
		bson.M{"_id": clanOID},
		bson.M{"$pull": bson.M{"armyMembers": bson.M{"_id": memberOID}}},
	)
	if err != nil {
		return false, fmt.Errorf("remove member: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// FindMember locates one embedded member via a positional projection on the
// compound clan/member filter.
func (r *ClanRepository) FindMember(ctx context.Context, clanID, memberID string) (*domain.ArmyMember, error) {
	clanOID, err := parseID(clanID)
	if err != nil {
		return nil, err
	}
	memberOID, err := parseID(memberID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.findMember(ctx, clanOID, memberOID)
}

func (r *ClanRepository) findMember(ctx context.Context, clanOID, memberOID primitive.ObjectID) (*domain.ArmyMember, error) {
	var doc struct {
		ArmyMembers []memberDoc `bson:"armyMembers"`
	}
	err := r.col.FindOne(
		ctx,
		bson.M{"_id": clanOID, "armyMembers._id": memberOID},
		options.FindOne().SetProjection(bson.M{"armyMembers.$": 1}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	if len(doc.ArmyMembers) == 0 {
		return nil, domain.ErrMemberNotFound
	}

	member := doc.ArmyMembers[0].toDomain()
	return &member, nil
}

// UpdateMember sets every mutable field of the matching array element via an
// array-filtered $set, then re-reads the element. The write is a full
// replace of all thirteen fields, still a single atomic document update.
func (r *ClanRepository) UpdateMember(ctx context.Context, clanID, memberID string, in ports.UpdateMemberInput) (*domain.ArmyMember, error) {
	clanOID, err := parseID(clanID)
	if err != nil {
		return nil, err
	}
	memberOID, err := parseID(memberID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"armyMembers.$[member].nickname":         in.Nickname,
		"armyMembers.$[member].email":            in.Email,
		"armyMembers.$[member].password":         in.Password,
		"armyMembers.$[member].rank":             in.Rank,
		"armyMembers.$[member].status":           in.Status,
		"armyMembers.$[member].registrationDate": in.RegistrationDate.UTC(),
		"armyMembers.$[member].lastLogin":        in.LastLogin.UTC(),
		"armyMembers.$[member].description":      in.Description,
		"armyMembers.$[member].phone":            in.Phone,
		"armyMembers.$[member].imageAccess":      in.ImageAccess,
		"armyMembers.$[member].infoAccess":       in.InfoAccess,
		"armyMembers.$[member].manageAccess":     in.ManageAccess,
		"armyMembers.$[member].mediaAccess":      in.MediaAccess,
	}

	res, err := r.col.UpdateOne(
		ctx,
		bson.M{"_id": clanOID, "armyMembers._id": memberOID},
		bson.M{"$set": set},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{"member._id": memberOID}},
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrMemberNotFound
	}

	return r.findMember(ctx, clanOID, memberOID)
}
