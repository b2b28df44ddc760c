package ws

import (
	"fmt"
	"sync"
)

// Scope keys. Staff subscribe per cafe, customers to their own orders.
func CafeScope(cafeID uint) string { return fmt.Sprintf("cafe:%d", cafeID) }
func UserScope(userID uint) string { return fmt.Sprintf("user:%d", userID) }

// Registry tracks live connections by scope and by user. It is built
// once in main and injected; delivery is best-effort, broken
// connections are pruned and never reported to the caller.
type Registry struct {
	mu     sync.Mutex
	scopes map[string]map[*Client]bool
	users  map[uint]*Client
}

func NewRegistry() *Registry {
	return &Registry{
		scopes: make(map[string]map[*Client]bool),
		users:  make(map[uint]*Client),
	}
}

// Register adds the client to the scope set and makes it the user's
// active connection. A later registration for the same user wins.
func (r *Registry) Register(scope string, userID uint, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.scopes[scope] == nil {
		r.scopes[scope] = make(map[*Client]bool)
	}
	r.scopes[scope][c] = true
	r.users[userID] = c
}

// Unregister removes the client from the scope set, dropping the scope
// entirely once empty. The user entry is cleared only if it still
// points at this exact client, so a fresher connection for the same
// user is never knocked out by an old one going away.
func (r *Registry) Unregister(scope string, userID uint, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set, ok := r.scopes[scope]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(r.scopes, scope)
		}
	}
	if r.users[userID] == c {
		delete(r.users, userID)
	}
}

// BroadcastToScope delivers v to every connection in the scope.
// The member set is snapshotted under the lock and written to outside
// it; connections that fail the write are pruned from the scope set
// only. The user map is left alone: the same user may already have a
// fresher connection registered elsewhere.
func (r *Registry) BroadcastToScope(scope string, v any) {
	r.mu.Lock()
	members := make([]*Client, 0, len(r.scopes[scope]))
	for c := range r.scopes[scope] {
		members = append(members, c)
	}
	r.mu.Unlock()

	var failed []*Client
	for _, c := range members {
		if err := c.Send(v); err != nil {
			failed = append(failed, c)
		}
	}
	if len(failed) == 0 {
		return
	}

	r.mu.Lock()
	if set, ok := r.scopes[scope]; ok {
		for _, c := range failed {
			delete(set, c)
		}
		if len(set) == 0 {
			delete(r.scopes, scope)
		}
	}
	r.mu.Unlock()

	for _, c := range failed {
		c.Close()
	}
}

// SendToUser delivers v to the user's single active connection, if any.
// On failure the mapping is removed only if it still points at the
// connection that failed.
func (r *Registry) SendToUser(userID uint, v any) {
	r.mu.Lock()
	c := r.users[userID]
	r.mu.Unlock()
	if c == nil {
		return
	}

	if err := c.Send(v); err != nil {
		r.mu.Lock()
		if r.users[userID] == c {
			delete(r.users, userID)
		}
		r.mu.Unlock()
		c.Close()
	}
}
