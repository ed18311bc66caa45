package gate

import (
	"context"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/session"
)

// Machine tracks one gate from Checking to Allowed or Denied, re-entering
// either state whenever the auth state is evaluated again.
type Machine struct {
	kind    Kind
	paths   Paths
	current Decision
}

func NewMachine(kind Kind, paths Paths) *Machine {
	return &Machine{
		kind:    kind,
		paths:   paths,
		current: Decision{Kind: kind, Status: Checking, Message: MessageChecking},
	}
}

func (machine *Machine) Current() Decision {
	return machine.current
}

// Apply evaluates state and reports whether the decision changed.
func (machine *Machine) Apply(state session.AuthState) (Decision, bool) {
	next := Evaluate(machine.kind, state, machine.paths)
	changed := next != machine.current
	machine.current = next
	return next, changed
}

// Watch emits the first decision at once and then every changed decision
// after an auth key of the session changes. The channel closes when ctx
// ends.
func (gate *Gate) Watch(ctx context.Context, sessionID string, kind Kind) (<-chan Decision, error) {
	subscription, err := gate.source.Subscribe(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	machine := NewMachine(kind, gate.paths)
	decisions := make(chan Decision, 1)
	first, _ := machine.Apply(gate.source.State(ctx, sessionID))
	decisions <- first

	go func() {
		defer close(decisions)
		defer subscription.Unsubscribe()
		for {
			select {
			case <-ctx.Done():
				return
			case change, ok := <-subscription.C:
				if !ok {
					return
				}
				if !change.Has(session.KeyUser) && !change.Has(session.KeyAuthToken) {
					continue
				}
				decision, changed := machine.Apply(gate.source.State(ctx, sessionID))
				if !changed {
					continue
				}
				select {
				case decisions <- decision:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return decisions, nil
}
