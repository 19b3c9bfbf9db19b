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

const collectionFreelancers = "freelancers"

type FreelancerRepository struct {
	col *mongo.Collection
}

func NewFreelancerRepository(db *mongo.Database) *FreelancerRepository {
	return &FreelancerRepository{col: db.Collection(collectionFreelancers)}
}

type mongoFreelancer struct {
	ID    primitive.ObjectID  `bson:"_id,omitempty"`
	User  *primitive.ObjectID `bson:"user,omitempty"`
	Name  string              `bson:"name"`
	Phone string              `bson:"phone"`
	Skill string              `bson:"skill"`
	Hobby string              `bson:"hobby"`
}

// freelancerView is a freelancer joined with its owning user.
type freelancerView struct {
	mongoFreelancer `bson:",inline"`
	Owner           *mongoUser `bson:"owner,omitempty"`
}

func (v *freelancerView) toDomain() *domain.Freelancer {
	f := v.mongoFreelancer.toDomain()
	if v.Owner != nil {
		f.Owner = v.Owner.toSummary()
	}
	return f
}

func (m *mongoFreelancer) toDomain() *domain.Freelancer {
	return &domain.Freelancer{
		ID:     m.ID.Hex(),
		UserID: hexOrEmpty(m.User),
		Name:   m.Name,
		Phone:  m.Phone,
		Skill:  m.Skill,
		Hobby:  m.Hobby,
	}
}

func fromDomain(f *domain.Freelancer) (mongoFreelancer, error) {
	doc := mongoFreelancer{Name: f.Name, Phone: f.Phone, Skill: f.Skill, Hobby: f.Hobby}
	if f.UserID != "" {
		oid, ok := parseID(f.UserID)
		if !ok {
			return doc, domain.ErrOwnerNotFound
		}
		doc.User = &oid
	}
	return doc, nil
}

// populatePipeline joins the owning user without its password hash, the
// shape clients have always received from freelancer reads.
func populatePipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionUsers,
			"localField":   "user",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$owner", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{"owner.password": 0}}},
		{{Key: "$sort", Value: bson.M{"name": 1}}},
	}
}

func (r *FreelancerRepository) aggregate(ctx context.Context, match bson.M) ([]*domain.Freelancer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, populatePipeline(match))
	if err != nil {
		return nil, fmt.Errorf("aggregate freelancers: %w", err)
	}
	defer cur.Close(ctx)

	var views []freelancerView
	if err := cur.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("decode freelancers: %w", err)
	}

	out := make([]*domain.Freelancer, 0, len(views))
	for i := range views {
		out = append(out, views[i].toDomain())
	}
	return out, nil
}

func (r *FreelancerRepository) List(ctx context.Context) ([]*domain.Freelancer, error) {
	return r.aggregate(ctx, bson.M{})
}

func (r *FreelancerRepository) FindByID(ctx context.Context, id string) (*domain.Freelancer, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrFreelancerNotFound
	}

	found, err := r.aggregate(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domain.ErrFreelancerNotFound
	}
	return found[0], nil
}

func (r *FreelancerRepository) FindByUserID(ctx context.Context, userID string) (*domain.Freelancer, error) {
	oid, ok := parseID(userID)
	if !ok {
		return nil, domain.ErrFreelancerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoFreelancer
	if err := r.col.FindOne(ctx, bson.M{"user": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFreelancerNotFound
		}
		return nil, fmt.Errorf("find freelancer by user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *FreelancerRepository) Create(ctx context.Context, f *domain.Freelancer) (*domain.Freelancer, error) {
	doc, err := fromDomain(f)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, mapWriteError(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

// Update overwrites name, phone, skill, hobby and the owner reference.
func (r *FreelancerRepository) Update(ctx context.Context, f *domain.Freelancer) (*domain.Freelancer, error) {
	oid, ok := parseID(f.ID)
	if !ok {
		return nil, domain.ErrFreelancerNotFound
	}
	doc, err := fromDomain(f)
	if err != nil {
		return nil, err
	}

	set := bson.M{"name": doc.Name, "phone": doc.Phone, "skill": doc.Skill, "hobby": doc.Hobby}
	update := bson.M{"$set": set}
	if doc.User != nil {
		set["user"] = doc.User
	} else {
		update["$unset"] = bson.M{"user": ""}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var updated mongoFreelancer
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFreelancerNotFound
		}
		return nil, mapWriteError(err)
	}
	return updated.toDomain(), nil
}

func (r *FreelancerRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, ok := parseID(id)
	if !ok {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete freelancer: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// EnsureIndexes creates the unique phone index and a partial unique index on
// the owner reference so a user can own at most one profile even under
// concurrent creation.
func (r *FreelancerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"user": bson.M{"$exists": true}}),
		},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func mapWriteError(err error) error {
	switch {
	case duplicateKeyOn(err, "user"):
		return domain.ErrProfileExists
	case duplicateKeyOn(err, "phone"):
		return domain.ErrDuplicatePhone
	}
	return fmt.Errorf("write freelancer: %w", err)
}
