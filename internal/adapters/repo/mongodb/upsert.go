package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
)

// upsertUpdate builds the update document for a keyed upsert: every field is
// $set except created_at, which moves into $setOnInsert so reruns keep the
// original insertion timestamp.
func upsertUpdate(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	created := m["created_at"]
	delete(m, "created_at")
	return bson.M{
		"$set":         m,
		"$setOnInsert": bson.M{"created_at": created},
	}, nil
}
