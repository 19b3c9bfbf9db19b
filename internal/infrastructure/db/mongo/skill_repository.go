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

	"github.com/freelance-directory/api/internal/core/domain"
)

const collectionSkills = "skills"

type SkillRepository struct {
	col *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{col: db.Collection(collectionSkills)}
}

type mongoSkill struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func (m *mongoSkill) toDomain() *domain.Skill {
	return &domain.Skill{ID: m.ID.Hex(), Name: m.Name}
}

func (r *SkillRepository) List(ctx context.Context) ([]*domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find skills: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoSkill
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}

	out := make([]*domain.Skill, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *SkillRepository) FindByID(ctx context.Context, id string) (*domain.Skill, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrSkillNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoSkill
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, notFoundOr(err, "find skill")
	}
	return doc.toDomain(), nil
}

func (r *SkillRepository) Create(ctx context.Context, name string) (*domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSkill{Name: name}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert skill: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *SkillRepository) Rename(ctx context.Context, id, name string) (*domain.Skill, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrSkillNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoSkill
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"name": name}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		return nil, notFoundOr(err, "rename skill")
	}
	return doc.toDomain(), nil
}

func (r *SkillRepository) DeleteByID(ctx context.Context, id string) (*domain.Skill, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrSkillNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoSkill
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, notFoundOr(err, "delete skill")
	}
	return doc.toDomain(), nil
}

// EnsureIndexes backs the name-sorted listing.
func (r *SkillRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}})
	return err
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrSkillNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
