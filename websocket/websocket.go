package websocket

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/BuraphaS/first-socket-backend/events"
	"github.com/BuraphaS/first-socket-backend/game"
	"github.com/BuraphaS/first-socket-backend/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow connections from any origin
}

// Client is one websocket connection. Writes are guarded by mu so broadcasts
// from different rooms never interleave a frame.
type Client struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *Client) send(event string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(events.Message{Event: event, Data: payload}); err != nil {
		log.Error().Err(err).Str("connID", c.id).Str("event", event).Msg("Failed to write to connection")
	}
}

// Hub tracks connections and their room memberships and implements
// game.Broadcaster on top of them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	rooms   map[string]map[string]*Client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[string]*Client),
	}
}

func (h *Hub) add(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.id] = c
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c.id)
	for key, members := range h.rooms {
		delete(members, c.id)
		if len(members) == 0 {
			delete(h.rooms, key)
		}
	}
}

// Join subscribes the connection to all future broadcasts for roomKey.
func (h *Hub) Join(roomKey string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	members, ok := h.rooms[roomKey]
	if !ok {
		members = make(map[string]*Client)
		h.rooms[roomKey] = members
	}
	members[c.id] = c
}

func (h *Hub) ToConnection(connID string, event string, payload any) {
	h.mu.RLock()
	c, ok := h.clients[connID]
	h.mu.RUnlock()
	if !ok {
		return
	}
	c.send(event, payload)
}

func (h *Hub) ToRoom(roomKey string, event string, payload any) {
	h.mu.RLock()
	members := make([]*Client, 0, len(h.rooms[roomKey]))
	for _, c := range h.rooms[roomKey] {
		members = append(members, c)
	}
	h.mu.RUnlock()

	for _, c := range members {
		c.send(event, payload)
	}
}

// Handler owns the upgrade endpoint and the per-connection read loop.
type Handler struct {
	hub   *Hub
	rooms *game.Registry
	svc   *game.Service
}

func NewHandler(hub *Hub, rooms *game.Registry, svc *game.Service) *Handler {
	return &Handler{hub: hub, rooms: rooms, svc: svc}
}

func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade error")
		return
	}

	client := &Client{id: utils.NewConnectionID(), conn: conn}
	h.hub.add(client)
	log.Info().Str("connID", client.id).Str("remote", conn.RemoteAddr().String()).Msg("Client connected")

	defer func() {
		h.hub.remove(client)
		conn.Close()
		log.Info().Str("connID", client.id).Msg("Client disconnected")
	}()

	for {
		var env events.Envelope
		if err := conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error().Err(err).Str("connID", client.id).Msg("WebSocket closed unexpectedly")
			}
			return
		}
		h.dispatch(client, env)
	}
}
