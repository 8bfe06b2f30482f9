package cart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DipakSrm/style-home-direct/models"
)

// setupTestStore creates a miniredis server and returns a RedisStore instance
func setupTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, 0, zerolog.Nop()), mr
}

func TestLoad_RoundTrip(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	state := models.CartState{
		ID: "cart-1",
		Items: []models.CartItem{
			{Product: product("p1", 100, 5), Quantity: 2},
			{Product: product("p2", 49.5, 3), Quantity: 1},
		},
		Total:     249.5,
		UpdatedAt: "2026-08-01T10:00:00Z",
	}

	require.NoError(t, store.Save(ctx, "sess1", state))

	loaded, err := store.Load(ctx, "sess1")
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestLoad_AbsentYieldsEmpty(t *testing.T) {
	store, _ := setupTestStore(t)

	loaded, err := store.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, Empty(), loaded)
}

func TestLoad_MalformedJSONYieldsEmpty(t *testing.T) {
	store, mr := setupTestStore(t)

	require.NoError(t, mr.Set(storeKey("sess1"), `{"items": [truncated`))

	loaded, err := store.Load(context.Background(), "sess1")
	require.NoError(t, err)
	assert.Equal(t, Empty(), loaded)
}

func TestLoad_WrongShapeYieldsEmpty(t *testing.T) {
	store, mr := setupTestStore(t)

	cases := map[string]string{
		"items not a list":   `{"_id":"x","items":{},"total":0,"updatedAt":""}`,
		"items missing":      `{"_id":"x","total":0,"updatedAt":""}`,
		"total not a number": `{"_id":"x","items":[],"total":"12","updatedAt":""}`,
		"id not a string":    `{"_id":12,"items":[],"total":0,"updatedAt":""}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, mr.Set(storeKey("sess1"), raw))

			loaded, err := store.Load(context.Background(), "sess1")
			require.NoError(t, err)
			assert.Equal(t, Empty(), loaded)
		})
	}
}

func TestSave_SingleJSONKey(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	state := AddItem(Empty(), product("p1", 10, 2))
	require.NoError(t, store.Save(ctx, "sess1", state))

	raw, err := mr.Get("cart:sess1")
	require.NoError(t, err)

	var stored models.CartState
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, state, stored)
}

func TestDelete(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess1", AddItem(Empty(), product("p1", 10, 2))))
	assert.True(t, mr.Exists("cart:sess1"))

	require.NoError(t, store.Delete(ctx, "sess1"))
	assert.False(t, mr.Exists("cart:sess1"))

	// deleting an absent key is fine
	require.NoError(t, store.Delete(ctx, "sess1"))
}
