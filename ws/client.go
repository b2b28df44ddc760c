package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// conn is the write surface the registry needs from a connection.
type conn interface {
	WriteJSON(v any) error
	Close() error
}

// Client wraps a websocket connection with its own write lock.
// gorilla allows one concurrent writer per connection, and the lock
// also keeps a slow peer from stalling the registry: writes never
// happen while a registry lock is held.
type Client struct {
	mu   sync.Mutex
	conn conn
}

func NewClient(c *websocket.Conn) *Client {
	return &Client{conn: c}
}

// Send writes v as JSON. This is the only write path after admission.
func (c *Client) Send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *Client) Close() error {
	return c.conn.Close()
}
