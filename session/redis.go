package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix     = "eventbuddy:session:"        // hash of values: eventbuddy:session:{id}
	sessionChannelPrefix = "eventbuddy:session:events:" // pub/sub: eventbuddy:session:events:{id}
)

// RedisStore keeps sessions as redis hashes. Changes are published on a
// per-session channel so every instance sharing the redis server sees them.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore uses client; idle sessions expire after ttl.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (store *RedisStore) Get(ctx context.Context, sessionID string) (map[string]string, error) {
	values, err := store.client.HGetAll(ctx, store.sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return values, nil
}

func (store *RedisStore) Set(ctx context.Context, sessionID string, values map[string]string) error {
	if sessionID == "" {
		return ErrInvalidSession
	}
	if len(values) == 0 {
		return nil
	}

	fields := make([]any, 0, len(values)*2)
	keys := make([]string, 0, len(values))
	for key, value := range values {
		fields = append(fields, key, value)
		keys = append(keys, key)
	}

	pipe := store.client.TxPipeline()
	pipe.HSet(ctx, store.sessionKey(sessionID), fields...)
	if store.ttl > 0 {
		pipe.Expire(ctx, store.sessionKey(sessionID), store.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return store.publish(ctx, Change{SessionID: sessionID, Keys: keys})
}

func (store *RedisStore) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if sessionID == "" {
		return ErrInvalidSession
	}
	if len(keys) == 0 {
		return nil
	}
	removed, err := store.client.HDel(ctx, store.sessionKey(sessionID), keys...).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session keys: %w", err)
	}
	if removed == 0 {
		return nil
	}
	return store.publish(ctx, Change{SessionID: sessionID, Keys: keys})
}

func (store *RedisStore) Subscribe(ctx context.Context, sessionID string) (*Subscription, error) {
	pubsub := store.client.Subscribe(ctx, store.sessionChannel(sessionID))
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	changes := make(chan Change, subscriptionBuffer)
	stop := make(chan struct{})
	done := make(chan struct{})
	messages := pubsub.Channel()

	go func() {
		defer close(done)
		defer close(changes)
		defer pubsub.Close()
		for {
			select {
			case <-stop:
				return
			case <-ctx.Done():
				return
			case message, ok := <-messages:
				if !ok {
					return
				}
				var change Change
				if err := json.Unmarshal([]byte(message.Payload), &change); err != nil {
					continue
				}
				select {
				case changes <- change:
				default:
				}
			}
		}
	}()

	return newSubscription(changes, func() {
		close(stop)
		<-done
	}), nil
}

func (store *RedisStore) Close() error {
	return store.client.Close()
}

func (store *RedisStore) publish(ctx context.Context, change Change) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return err
	}
	if err := store.client.Publish(ctx, store.sessionChannel(change.SessionID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish session change: %w", err)
	}
	return nil
}

func (store *RedisStore) sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func (store *RedisStore) sessionChannel(sessionID string) string {
	return sessionChannelPrefix + sessionID
}
