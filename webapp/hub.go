package webapp

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/prathyushnallamothu/reactagent"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Hub fans run trace steps out to connected websocket clients, so a
// browser can watch the reasoning and observations of in-flight runs.
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan reactagent.Step
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mutex      sync.Mutex
}

// NewHub creates a hub and starts its broadcast loop
func NewHub() *Hub {
	h := &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan reactagent.Step, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
	go h.run()
	return h
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Broadcast sends a step to all connected clients. Safe to use as the
// Runner's OnStep callback.
func (h *Hub) Broadcast(step reactagent.Step) {
	h.broadcast <- step
}

// HandleConn upgrades an HTTP request and keeps the connection registered
// until the client goes away.
func (h *Hub) HandleConn(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}

	h.register <- conn

	defer func() {
		h.unregister <- conn
		conn.Close()
	}()

	// Drain client messages; the stream is one-way but reads detect closes
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			delete(h.clients, client)
			h.mutex.Unlock()

		case step := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients {
				if err := client.WriteJSON(step); err != nil {
					log.Printf("Error broadcasting to client: %v", err)
					client.Close()
					delete(h.clients, client)
				}
			}
			h.mutex.Unlock()
		}
	}
}
