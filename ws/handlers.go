package ws

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/abu0717/canteen/pkg/resp"
	"github.com/abu0717/canteen/repository"
	"github.com/abu0717/canteen/services"
	"github.com/abu0717/canteen/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler owns the websocket endpoints. Admission (token, user lookup,
// cafe authority) is fully resolved before a connection touches the
// registry; a rejected connection is never registered.
type Handler struct {
	Registry *Registry
	Access   *services.CafeAccess
	Users    *repository.UserRepository
}

func NewHandler(registry *Registry, access *services.CafeAccess, users *repository.UserRepository) *Handler {
	return &Handler{Registry: registry, Access: access, Users: users}
}

// WS route: /ws/cafe/:cafeId — staff scope for one cafe.
func (h *Handler) HandleCafeSocket(c *gin.Context) {
	cafeID64, err := strconv.ParseUint(c.Param("cafeId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cafe id")
		return
	}
	cafeID := uint(cafeID64)

	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	user, err := h.Users.FindByID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Unauthorized(c, "unknown user")
			return
		}
		resp.ServerError(c, err)
		return
	}

	ok, err := h.Access.Authorize(uid, role, cafeID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.Forbidden(c, "no access to this cafe")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	client := NewClient(conn)
	scope := CafeScope(cafeID)
	h.Registry.Register(scope, uid, client)

	_ = client.Send(map[string]any{
		"type":    EventConnectionAck,
		"message": fmt.Sprintf("connected to cafe %d", cafeID),
		"user":    user.Name,
	})

	h.readLoop(conn, client, scope, uid)
}

// WS route: /ws/orders — a customer's own order updates.
func (h *Handler) HandleOrdersSocket(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	user, err := h.Users.FindByID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Unauthorized(c, "unknown user")
			return
		}
		resp.ServerError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	client := NewClient(conn)
	scope := UserScope(uid)
	h.Registry.Register(scope, uid, client)

	_ = client.Send(map[string]any{
		"type":    EventConnectionAck,
		"message": "connected to order updates",
		"user":    user.Name,
	})

	h.readLoop(conn, client, scope, uid)
}

// readLoop blocks on inbound frames until the peer goes away. Inbound
// text is only echoed for now (placeholder for client commands).
// Unregister runs before the handler returns, whatever killed the loop.
func (h *Handler) readLoop(conn *websocket.Conn, client *Client, scope string, userID uint) {
	defer func() {
		h.Registry.Unregister(scope, userID, client)
		client.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if err := client.Send(map[string]any{
			"type":    EventEcho,
			"message": string(data),
		}); err != nil {
			return
		}
	}
}
