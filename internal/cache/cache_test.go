package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedUser struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)
	t.Cleanup(func() { SetClient(nil) })

	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetchCalls := 0
	fetch := func(dest *cachedUser) func() error {
		return func() error {
			fetchCalls++
			dest.ID = 7
			dest.Name = "ada"
			return nil
		}
	}

	var first cachedUser
	require.NoError(t, Aside(ctx, UserKey(7), &first, UserTTL, fetch(&first)))
	assert.Equal(t, 1, fetchCalls)
	assert.Equal(t, "ada", first.Name)

	// Second read must come from the cache.
	var second cachedUser
	require.NoError(t, Aside(ctx, UserKey(7), &second, UserTTL, fetch(&second)))
	assert.Equal(t, 1, fetchCalls)
	assert.Equal(t, first, second)
}

func TestAside_InvalidateForcesRefetch(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetchCalls := 0
	load := func(dest *cachedUser) func() error {
		return func() error {
			fetchCalls++
			dest.ID = 3
			dest.Name = "grace"
			return nil
		}
	}

	var u cachedUser
	require.NoError(t, Aside(ctx, UserKey(3), &u, UserTTL, load(&u)))
	InvalidateUser(ctx, 3)

	var again cachedUser
	require.NoError(t, Aside(ctx, UserKey(3), &again, UserTTL, load(&again)))
	assert.Equal(t, 2, fetchCalls)
}

func TestAside_NilClientAlwaysFetches(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	fetchCalls := 0
	var u cachedUser
	for i := 0; i < 2; i++ {
		err := Aside(ctx, BlogKey(1), &u, BlogTTL, func() error {
			fetchCalls++
			return nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, fetchCalls)
}

func TestGetJSON_Expiry(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, BlogKey(9), cachedUser{ID: 9}, BlogTTL))
	mr.FastForward(BlogTTL * 2)

	var u cachedUser
	found, err := GetJSON(ctx, BlogKey(9), &u)
	require.NoError(t, err)
	assert.False(t, found)
}
