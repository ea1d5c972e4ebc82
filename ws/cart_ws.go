package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"tableside/services"
)

// CartHub relays cart updates between diners sitting at the same table.
// Payloads are opaque to the server: nothing is persisted, delivery is
// best-effort, last write wins.
type CartHub struct {
	rooms      map[string]map[*websocket.Conn]bool // table token -> connections
	broadcast  chan roomMessage
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	tables     *services.TableService
}

type subscription struct {
	conn  *websocket.Conn
	token string
}

type roomMessage struct {
	token  string
	sender *websocket.Conn
	data   []byte
}

func NewCartHub(tables *services.TableService) *CartHub {
	return &CartHub{
		rooms:      make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan roomMessage),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		tables:     tables,
	}
}

func (h *CartHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.rooms[sub.token] == nil {
				h.rooms[sub.token] = make(map[*websocket.Conn]bool)
			}
			h.rooms[sub.token][sub.conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[sub.token]; conns != nil {
				delete(conns, sub.conn)
				if len(conns) == 0 {
					delete(h.rooms, sub.token)
				}
			}
			h.mu.Unlock()
			sub.conn.Close()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.rooms[msg.token] {
				if conn == msg.sender {
					continue
				}
				if err := conn.WriteMessage(websocket.TextMessage, msg.data); err != nil {
					conn.Close()
					delete(h.rooms[msg.token], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	// storefront is served from another origin in dev
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Join upgrades the connection and pumps messages for one table room.
// GET /ws/cart/:token
func (h *CartHub) Join(c *gin.Context) {
	token := c.Param("token")
	if _, err := h.tables.ResolveByToken(token); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "unknown table"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("ws upgrade failed:", err)
		return
	}

	sub := subscription{conn: conn, token: token}
	h.register <- sub

	go func() {
		defer func() { h.unregister <- sub }()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			h.broadcast <- roomMessage{token: token, sender: conn, data: data}
		}
	}()
}
