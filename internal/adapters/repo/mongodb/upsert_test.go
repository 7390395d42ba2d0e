package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"salesseed/internal/domain"
)

func TestUpsertUpdateSplitsCreatedAt(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	v := domain.Vendor{
		VendorID:  "V1001",
		Name:      "Acme Supplies",
		Status:    domain.StatusActive,
		Terms:     "NET_30",
		CreatedAt: created,
		UpdatedAt: created,
	}

	update, err := upsertUpdate(v)
	require.NoError(t, err)

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.NotContains(t, set, "created_at")
	assert.Equal(t, "V1001", set["vendor_id"])
	assert.Contains(t, set, "updated_at")

	onInsert, ok := update["$setOnInsert"].(bson.M)
	require.True(t, ok)
	got, ok := onInsert["created_at"].(primitive.DateTime)
	require.True(t, ok)
	assert.True(t, got.Time().UTC().Equal(created))
}
