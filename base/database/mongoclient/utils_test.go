package mongoclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketplace/base/ptr"
)

type patchableListing struct {
	Price     *uint64    `bson:"price,omitempty"`
	Active    *bool      `bson:"active,omitempty"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty"`
	Seller    string     `bson:"seller"`
	Note      string     `bson:"note"`
	Ignored   string     `bson:"-"`
	internal  string
}

func TestMakeBsonM(t *testing.T) {
	now := time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)
	patchable := &patchableListing{
		Price:     ptr.Uint64(1200),
		Active:    ptr.Bool(false),
		UpdatedAt: ptr.Time(now),
		Note:      "repriced",
		Ignored:   "x",
		internal:  "y",
	}

	updater, err := MakeBsonM(patchable)
	require.NoError(t, err)
	assert.Equal(t, bson.M{
		"price":     uint64(1200),
		"active":    false,
		"updatedAt": now,
		// seller is empty, so ignored
		"note": "repriced",
	}, updater)

	// a struct value works as well as a pointer
	updater, err = MakeBsonM(patchableListing{Active: ptr.Bool(true)})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"active": true}, updater)
}

func TestMakeBsonMNotStruct(t *testing.T) {
	_, err := MakeBsonM(ptr.Uint64(1))
	assert.Equal(t, ErrNotStruct, err)

	_, err = MakeBsonM(map[string]interface{}{"price": 1})
	assert.Equal(t, ErrNotStruct, err)
}
