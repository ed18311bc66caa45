package session

import (
	"context"
	"sync"
)

const subscriptionBuffer = 8

// Subscription is a stream of Changes for one session.
type Subscription struct {
	C <-chan Change

	once   sync.Once
	cancel func()
}

func newSubscription(changes <-chan Change, cancel func()) *Subscription {
	return &Subscription{C: changes, cancel: cancel}
}

// Unsubscribe stops delivery and closes C. It is safe to call repeatedly.
func (subscription *Subscription) Unsubscribe() {
	subscription.once.Do(subscription.cancel)
}

// hub fans Changes out to in-process subscribers.
type hub struct {
	mutex       sync.Mutex
	subscribers map[string]map[chan Change]struct{}
	closed      bool
}

func newHub() *hub {
	return &hub{subscribers: make(map[string]map[chan Change]struct{})}
}

func (hub *hub) subscribe(ctx context.Context, sessionID string) (*Subscription, error) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	if hub.closed {
		return nil, ErrStoreClosed
	}

	changes := make(chan Change, subscriptionBuffer)
	if hub.subscribers[sessionID] == nil {
		hub.subscribers[sessionID] = make(map[chan Change]struct{})
	}
	hub.subscribers[sessionID][changes] = struct{}{}

	stop := make(chan struct{})
	subscription := newSubscription(changes, func() {
		close(stop)
		hub.remove(sessionID, changes)
	})
	go func() {
		select {
		case <-ctx.Done():
			subscription.Unsubscribe()
		case <-stop:
		}
	}()
	return subscription, nil
}

func (hub *hub) remove(sessionID string, changes chan Change) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	listeners, ok := hub.subscribers[sessionID]
	if !ok {
		return
	}
	if _, ok := listeners[changes]; !ok {
		return
	}
	delete(listeners, changes)
	if len(listeners) == 0 {
		delete(hub.subscribers, sessionID)
	}
	close(changes)
}

// publish never blocks; a subscriber whose buffer is full already has a
// pending notification and rereads state anyway.
func (hub *hub) publish(change Change) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	for changes := range hub.subscribers[change.SessionID] {
		select {
		case changes <- change:
		default:
		}
	}
}

func (hub *hub) close() {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.closed = true
	for sessionID, listeners := range hub.subscribers {
		for changes := range listeners {
			close(changes)
		}
		delete(hub.subscribers, sessionID)
	}
}
