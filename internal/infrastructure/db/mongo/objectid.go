package mongo

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// parseID converts a hex id from the API into an ObjectID. Malformed ids
// cannot match any document, so callers treat ok == false as "not found".
func parseID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

func hexOrEmpty(oid *primitive.ObjectID) string {
	if oid == nil || oid.IsZero() {
		return ""
	}
	return oid.Hex()
}

// duplicateKeyOn reports whether err is a duplicate key violation of the
// index whose name starts with field.
func duplicateKeyOn(err error, field string) bool {
	return mongo.IsDuplicateKeyError(err) && strings.Contains(err.Error(), "index: "+field+"_")
}
