package session_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/session"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBolt(t *testing.T) *session.BoltStore {
	t.Helper()
	store, err := session.OpenBolt(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	err = client.Ping(context.Background()).Err()
	require.NoError(t, err)
	return client, mr
}

func setupRedis(t *testing.T) *session.RedisStore {
	t.Helper()
	client, _ := setupTestRedis(t)
	store := session.NewRedisStore(client, time.Hour)
	t.Cleanup(func() { store.Close() })
	return store
}

func backends(t *testing.T) map[string]func(t *testing.T) session.Store {
	return map[string]func(t *testing.T) session.Store{
		"bolt":  func(t *testing.T) session.Store { return setupBolt(t) },
		"redis": func(t *testing.T) session.Store { return setupRedis(t) },
	}
}

func receive(t *testing.T, subscription *session.Subscription) session.Change {
	t.Helper()
	select {
	case change, ok := <-subscription.C:
		require.True(t, ok, "subscription closed")
		return change
	case <-time.After(2 * time.Second):
		t.Fatal("no change received")
	}
	return session.Change{}
}

func TestStore_SetGetDelete(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			ctx := context.Background()

			values, err := store.Get(ctx, "missing")
			require.NoError(t, err)
			assert.Empty(t, values)

			require.NoError(t, store.Set(ctx, "s1", map[string]string{"a": "1", "b": "2"}))
			require.NoError(t, store.Set(ctx, "s1", map[string]string{"b": "3"}))

			values, err = store.Get(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"a": "1", "b": "3"}, values)

			require.NoError(t, store.Delete(ctx, "s1", "a", "unknown"))
			values, err = store.Get(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"b": "3"}, values)

			other, err := store.Get(ctx, "s2")
			require.NoError(t, err)
			assert.Empty(t, other)

			assert.ErrorIs(t, store.Set(ctx, "", map[string]string{"a": "1"}), session.ErrInvalidSession)
		})
	}
}

func TestStore_SubscribeReceivesOwnSessionOnly(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			ctx := context.Background()

			subscription, err := store.Subscribe(ctx, "s1")
			require.NoError(t, err)
			defer subscription.Unsubscribe()

			require.NoError(t, store.Set(ctx, "s2", map[string]string{"x": "1"}))
			require.NoError(t, store.Set(ctx, "s1", map[string]string{session.KeyAuthToken: "abc"}))

			change := receive(t, subscription)
			assert.Equal(t, "s1", change.SessionID)
			assert.True(t, change.Has(session.KeyAuthToken))

			require.NoError(t, store.Delete(ctx, "s1", session.KeyAuthToken))
			change = receive(t, subscription)
			assert.Equal(t, []string{session.KeyAuthToken}, change.Keys)
		})
	}
}

func TestStore_UnsubscribeClosesChannel(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store := open(t)

			subscription, err := store.Subscribe(context.Background(), "s1")
			require.NoError(t, err)
			subscription.Unsubscribe()
			subscription.Unsubscribe()

			select {
			case _, ok := <-subscription.C:
				assert.False(t, ok)
			case <-time.After(2 * time.Second):
				t.Fatal("channel not closed")
			}
		})
	}
}

func TestStore_ContextEndsSubscription(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			ctx, cancel := context.WithCancel(context.Background())

			subscription, err := store.Subscribe(ctx, "s1")
			require.NoError(t, err)
			defer subscription.Unsubscribe()
			cancel()

			assert.Eventually(t, func() bool {
				select {
				case _, ok := <-subscription.C:
					return !ok
				default:
					return false
				}
			}, 2*time.Second, 10*time.Millisecond)
		})
	}
}

func TestRedisStore_SharesChangesAcrossInstances(t *testing.T) {
	client, mr := setupTestRedis(t)
	first := session.NewRedisStore(client, time.Hour)
	second := session.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour)
	defer second.Close()
	ctx := context.Background()

	subscription, err := first.Subscribe(ctx, "shared")
	require.NoError(t, err)
	defer subscription.Unsubscribe()

	require.NoError(t, second.Set(ctx, "shared", map[string]string{session.KeyUser: "{}"}))
	assert.True(t, receive(t, subscription).Has(session.KeyUser))

	values, err := first.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, "{}", values[session.KeyUser])
}

func TestRedisStore_SetsTTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := session.NewRedisStore(client, 30*time.Minute)

	require.NoError(t, store.Set(context.Background(), "s1", map[string]string{"a": "1"}))
	assert.Equal(t, 30*time.Minute, mr.TTL("eventbuddy:session:s1"))

	mr.FastForward(31 * time.Minute)
	values, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestBoltStore_Sweep(t *testing.T) {
	store := setupBolt(t)
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.SetClock(func() time.Time { return now })

	require.NoError(t, store.Set(ctx, "old", map[string]string{"a": "1"}))
	now = now.Add(2 * time.Hour)
	require.NoError(t, store.Set(ctx, "fresh", map[string]string{"a": "1"}))

	removed, err := store.Sweep(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	values, err := store.Get(ctx, "old")
	require.NoError(t, err)
	assert.Empty(t, values)

	values, err = store.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, "1", values["a"])
}

func TestBoltStore_SweepNotifiesSubscribers(t *testing.T) {
	store := setupBolt(t)
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.SetClock(func() time.Time { return now })

	require.NoError(t, store.Set(ctx, "old", map[string]string{session.KeyUser: "{}", session.KeyAuthToken: "tok"}))
	subscription, err := store.Subscribe(ctx, "old")
	require.NoError(t, err)
	defer subscription.Unsubscribe()

	now = now.Add(2 * time.Hour)
	removed, err := store.Sweep(ctx, time.Hour)
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	change := receive(t, subscription)
	assert.Equal(t, "old", change.SessionID)
	assert.True(t, change.Has(session.KeyUser))
	assert.True(t, change.Has(session.KeyAuthToken))
}

func TestBoltStore_CloseEndsSubscriptions(t *testing.T) {
	store, err := session.OpenBolt(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)

	subscription, err := store.Subscribe(context.Background(), "s1")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, ok := <-subscription.C
	assert.False(t, ok)
	subscription.Unsubscribe()

	_, err = store.Subscribe(context.Background(), "s1")
	assert.ErrorIs(t, err, session.ErrStoreClosed)
}
