package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ancientrealms/kingdom-system/internal/core/domain"
)

const collectionKingdoms = "kingdoms"

type KingdomRepository struct {
	col *mongo.Collection
}

func NewKingdomRepository(db *mongo.Database) *KingdomRepository {
	return &KingdomRepository{col: db.Collection(collectionKingdoms)}
}

// kingdomDoc is the stored shape of a kingdom. Only the name persists;
// clan counts are derived at read time.
type kingdomDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func (d kingdomDoc) toDomain() domain.Kingdom {
	return domain.Kingdom{ID: d.ID.Hex(), Name: d.Name}
}

// List returns every kingdom with only the name projected, in the store's
// natural iteration order.
func (r *KingdomRepository) List(ctx context.Context) ([]domain.Kingdom, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"name": 1}))
	if err != nil {
		return nil, fmt.Errorf("list kingdoms: %w", err)
	}

	var docs []kingdomDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list kingdoms: %w", err)
	}

	kingdoms := make([]domain.Kingdom, 0, len(docs))
	for _, d := range docs {
		kingdoms = append(kingdoms, d.toDomain())
	}
	return kingdoms, nil
}

// Create inserts a document holding only a name. Duplicate names are
// permitted; no uniqueness index exists on the collection.
func (r *KingdomRepository) Create(ctx context.Context, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, bson.M{"name": name})
	if err != nil {
		return "", fmt.Errorf("insert kingdom: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert kingdom: unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

func (r *KingdomRepository) FindByID(ctx context.Context, id string) (*domain.Kingdom, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc kingdomDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrKingdomNotFound
		}
		return nil, fmt.Errorf("find kingdom: %w", err)
	}

	kingdom := doc.toDomain()
	return &kingdom, nil
}

// Delete removes the kingdom document and reports whether exactly one was
// removed. Dependent clans are never touched.
func (r *KingdomRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete kingdom: %w", err)
	}
	return res.DeletedCount == 1, nil
}
