package ws

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu     sync.Mutex
	fail   bool
	closed bool
	sent   []any
}

func (f *fakeConn) WriteJSON(v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("broken pipe")
	}
	f.sent = append(f.sent, v)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func newFakeClient(fail bool) (*Client, *fakeConn) {
	fc := &fakeConn{fail: fail}
	return &Client{conn: fc}, fc
}

func TestRegisterUnregisterLeavesNoResidue(t *testing.T) {
	r := NewRegistry()
	client, _ := newFakeClient(false)
	scope := CafeScope(1)

	r.Register(scope, 10, client)
	require.Len(t, r.scopes[scope], 1)
	require.Same(t, client, r.users[10])

	r.Unregister(scope, 10, client)
	_, ok := r.scopes[scope]
	assert.False(t, ok, "empty scope must be dropped entirely")
	_, ok = r.users[10]
	assert.False(t, ok, "user entry must be gone")
}

func TestRegisterReplacesUserConnection(t *testing.T) {
	r := NewRegistry()
	first, _ := newFakeClient(false)
	second, _ := newFakeClient(false)

	r.Register(CafeScope(1), 10, first)
	r.Register(UserScope(10), 10, second)

	assert.Same(t, second, r.users[10], "last registration wins")
}

func TestUnregisterKeepsFresherUserConnection(t *testing.T) {
	r := NewRegistry()
	stale, _ := newFakeClient(false)
	fresh, _ := newFakeClient(false)

	r.Register(CafeScope(1), 10, stale)
	r.Register(UserScope(10), 10, fresh)

	// The old connection goes away after it was already replaced.
	r.Unregister(CafeScope(1), 10, stale)

	assert.Same(t, fresh, r.users[10], "unregister of a stale connection must not clear the fresher mapping")
}

func TestUnregisterAbsentConnectionIsNoop(t *testing.T) {
	r := NewRegistry()
	client, _ := newFakeClient(false)
	r.Unregister(CafeScope(1), 10, client) // nothing registered
	assert.Empty(t, r.scopes)
	assert.Empty(t, r.users)
}

func TestBroadcastDeliversToEveryScopeMember(t *testing.T) {
	r := NewRegistry()
	scope := CafeScope(7)

	var conns []*fakeConn
	for i := 0; i < 3; i++ {
		client, fc := newFakeClient(false)
		r.Register(scope, uint(100+i), client)
		conns = append(conns, fc)
	}
	other, otherConn := newFakeClient(false)
	r.Register(CafeScope(8), 200, other)

	r.BroadcastToScope(scope, map[string]any{"type": "new_order"})

	for i, fc := range conns {
		assert.Equalf(t, 1, fc.sentCount(), "member %d should get the event", i)
	}
	assert.Equal(t, 0, otherConn.sentCount(), "other scopes must not see the event")
}

func TestBroadcastPrunesDeadConnections(t *testing.T) {
	r := NewRegistry()
	scope := CafeScope(7)
	alive, aliveConn := newFakeClient(false)
	dead, deadConn := newFakeClient(true)
	r.Register(scope, 1, alive)
	r.Register(scope, 2, dead)

	r.BroadcastToScope(scope, map[string]any{"type": "new_order"})

	assert.Equal(t, 1, aliveConn.sentCount())
	assert.True(t, deadConn.closed, "failed connection must be closed")
	assert.Len(t, r.scopes[scope], 1, "dead connection pruned from the scope")
	assert.Contains(t, r.users, uint(2), "user map untouched by broadcast pruning")
}

func TestBroadcastPruneDropsEmptyScope(t *testing.T) {
	r := NewRegistry()
	scope := CafeScope(9)
	dead, _ := newFakeClient(true)
	r.Register(scope, 1, dead)

	r.BroadcastToScope(scope, map[string]any{"type": "new_order"})

	_, ok := r.scopes[scope]
	assert.False(t, ok, "scope with only dead members must leave no residue")
}

func TestBroadcastToUnknownScopeIsNoop(t *testing.T) {
	r := NewRegistry()
	r.BroadcastToScope("cafe:404", map[string]any{"type": "new_order"})
}

func TestSendToUser(t *testing.T) {
	r := NewRegistry()
	client, fc := newFakeClient(false)
	r.Register(UserScope(10), 10, client)

	r.SendToUser(10, map[string]any{"type": "order_status_update"})
	assert.Equal(t, 1, fc.sentCount())

	r.SendToUser(99, map[string]any{"type": "order_status_update"}) // nobody there
}

func TestSendToUserPrunesFailedMapping(t *testing.T) {
	r := NewRegistry()
	dead, deadConn := newFakeClient(true)
	r.Register(UserScope(10), 10, dead)

	r.SendToUser(10, map[string]any{"type": "order_status_update"})

	_, ok := r.users[10]
	assert.False(t, ok, "failed user mapping must be removed")
	assert.True(t, deadConn.closed)
}

func TestConcurrentRegistryUse(t *testing.T) {
	r := NewRegistry()
	scope := CafeScope(1)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			client, _ := newFakeClient(i%5 == 0)
			userID := uint(i)
			r.Register(scope, userID, client)
			r.BroadcastToScope(scope, map[string]any{"type": "new_order", "n": i})
			r.SendToUser(userID, map[string]any{"type": "order_status_update"})
			r.Unregister(scope, userID, client)
		}()
	}
	wg.Wait()

	// every goroutine cleaned up after itself
	assert.Empty(t, r.users)
	for s := range r.scopes {
		assert.NotEqual(t, scope, s, fmt.Sprintf("scope %s should be empty and dropped", s))
	}
}
