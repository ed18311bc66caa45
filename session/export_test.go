package session

import "time"

func (store *BoltStore) SetClock(now func() time.Time) {
	store.now = now
}
