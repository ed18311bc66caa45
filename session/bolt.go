package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/boltdb/bolt"
)

var sessionsBucket = []byte("Sessions")

type boltRecord struct {
	Values    map[string]string `json:"values"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// BoltStore keeps sessions in a local bolt file. Change notifications only
// reach subscribers of the same process.
type BoltStore struct {
	db  *bolt.DB
	hub *hub
	now func() time.Time
}

// OpenBolt opens or creates the bolt file at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, errCreate := tx.CreateBucketIfNotExists(sessionsBucket)
		return errCreate
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sessions bucket: %w", err)
	}

	return &BoltStore{db: db, hub: newHub(), now: time.Now}, nil
}

func (store *BoltStore) Get(_ context.Context, sessionID string) (map[string]string, error) {
	values := map[string]string{}
	err := store.db.View(func(tx *bolt.Tx) error {
		record, errRead := readRecord(tx, sessionID)
		if errRead != nil {
			return errRead
		}
		for key, value := range record.Values {
			values[key] = value
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (store *BoltStore) Set(_ context.Context, sessionID string, values map[string]string) error {
	if sessionID == "" {
		return ErrInvalidSession
	}
	keys := make([]string, 0, len(values))
	if err := store.db.Update(func(tx *bolt.Tx) error {
		record, errRead := readRecord(tx, sessionID)
		if errRead != nil {
			return errRead
		}
		for key, value := range values {
			record.Values[key] = value
			keys = append(keys, key)
		}
		return writeRecord(tx, sessionID, record, store.now())
	}); err != nil {
		return err
	}

	store.hub.publish(Change{SessionID: sessionID, Keys: keys})
	return nil
}

func (store *BoltStore) Delete(_ context.Context, sessionID string, keys ...string) error {
	if sessionID == "" {
		return ErrInvalidSession
	}
	var removed []string
	if err := store.db.Update(func(tx *bolt.Tx) error {
		record, errRead := readRecord(tx, sessionID)
		if errRead != nil {
			return errRead
		}
		for _, key := range keys {
			if _, ok := record.Values[key]; ok {
				delete(record.Values, key)
				removed = append(removed, key)
			}
		}
		if len(removed) == 0 {
			return nil
		}
		if len(record.Values) == 0 {
			return tx.Bucket(sessionsBucket).Delete([]byte(sessionID))
		}
		return writeRecord(tx, sessionID, record, store.now())
	}); err != nil {
		return err
	}

	if len(removed) > 0 {
		store.hub.publish(Change{SessionID: sessionID, Keys: removed})
	}
	return nil
}

func (store *BoltStore) Subscribe(ctx context.Context, sessionID string) (*Subscription, error) {
	return store.hub.subscribe(ctx, sessionID)
}

// Sweep deletes sessions that were not written for maxIdle and tells
// their subscribers the auth keys are gone.
func (store *BoltStore) Sweep(_ context.Context, maxIdle time.Duration) (int, error) {
	cutoff := store.now().Add(-maxIdle)
	var expired [][]byte
	err := store.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionsBucket)
		if errScan := bucket.ForEach(func(key, rawRecord []byte) error {
			var record boltRecord
			if errParse := json.Unmarshal(rawRecord, &record); errParse != nil || record.UpdatedAt.Before(cutoff) {
				expired = append(expired, append([]byte(nil), key...))
			}
			return nil
		}); errScan != nil {
			return errScan
		}
		for _, key := range expired {
			if errDelete := bucket.Delete(key); errDelete != nil {
				return errDelete
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}
	for _, key := range expired {
		store.hub.publish(Change{SessionID: string(key), Keys: []string{KeyUser, KeyAuthToken}})
	}
	return len(expired), nil
}

func (store *BoltStore) Close() error {
	store.hub.close()
	return store.db.Close()
}

func readRecord(tx *bolt.Tx, sessionID string) (boltRecord, error) {
	record := boltRecord{Values: map[string]string{}}
	rawRecord := tx.Bucket(sessionsBucket).Get([]byte(sessionID))
	if rawRecord == nil {
		return record, nil
	}
	if err := json.Unmarshal(rawRecord, &record); err != nil {
		return record, fmt.Errorf("cant parse session: %w", err)
	}
	if record.Values == nil {
		record.Values = map[string]string{}
	}
	return record, nil
}

func writeRecord(tx *bolt.Tx, sessionID string, record boltRecord, now time.Time) error {
	record.UpdatedAt = now
	rawRecord, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return tx.Bucket(sessionsBucket).Put([]byte(sessionID), rawRecord)
}
