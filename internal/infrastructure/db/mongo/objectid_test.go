package mongo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelance-directory/api/internal/core/domain"
)

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()
	got, ok := parseID(oid.Hex())
	if !ok || got != oid {
		t.Fatalf("expected %s, got %s (ok=%v)", oid.Hex(), got.Hex(), ok)
	}

	for _, bad := range []string{"", "F1", "60136683814c7314ec16a6dz"} {
		if _, ok := parseID(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestMapWriteError(t *testing.T) {
	dupPhone := mongo.WriteException{WriteErrors: []mongo.WriteError{{
		Code:    11000,
		Message: `E11000 duplicate key error collection: fl_db.freelancers index: phone_1 dup key: { phone: "0123" }`,
	}}}
	if err := mapWriteError(dupPhone); !errors.Is(err, domain.ErrDuplicatePhone) {
		t.Fatalf("expected ErrDuplicatePhone, got %v", err)
	}

	dupUser := mongo.WriteException{WriteErrors: []mongo.WriteError{{
		Code:    11000,
		Message: `E11000 duplicate key error collection: fl_db.freelancers index: user_1 dup key: { user: ObjectId('60136683814c7314ec16a6df') }`,
	}}}
	if err := mapWriteError(dupUser); !errors.Is(err, domain.ErrProfileExists) {
		t.Fatalf("expected ErrProfileExists, got %v", err)
	}

	other := errors.New("connection reset")
	if err := mapWriteError(other); !errors.Is(err, other) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestFromDomain(t *testing.T) {
	owner := primitive.NewObjectID()
	doc, err := fromDomain(&domain.Freelancer{UserID: owner.Hex(), Name: "John Smith"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.User == nil || *doc.User != owner {
		t.Fatalf("owner not converted: %+v", doc.User)
	}

	doc, err = fromDomain(&domain.Freelancer{Name: "No Owner"})
	if err != nil || doc.User != nil {
		t.Fatalf("expected nil owner, got %+v (%v)", doc.User, err)
	}

	if _, err := fromDomain(&domain.Freelancer{UserID: "bogus"}); !errors.Is(err, domain.ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}

	raw, err := bson.Marshal(mongoFreelancer{Name: "No Owner"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := bson.Raw(raw).LookupErr("user"); err == nil {
		t.Fatalf("absent owner must not be stored")
	}
}
