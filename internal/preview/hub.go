// Package preview pushes regenerated documents to open live-preview
// frames over websockets.
package preview

import (
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The editor SPA runs on its own dev origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans regenerated documents out to every preview frame subscribed
// to a restaurant. The zero value is not usable; call NewHub.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[*websocket.Conn]bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*websocket.Conn]bool)}
}

// RegisterRoutes mounts the preview websocket endpoint.
func (h *Hub) RegisterRoutes(r chi.Router) {
	r.Get("/ws/preview/{id}", h.handleSubscribe)
}

func (h *Hub) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("preview upgrade failed: %v", err)
		return
	}

	h.add(id, conn)

	// Reads are only serviced to detect the close; previews never send
	// data upstream.
	go func() {
		defer h.remove(id, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) add(id string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[id] == nil {
		h.subs[id] = make(map[*websocket.Conn]bool)
	}
	h.subs[id][conn] = true
}

func (h *Hub) remove(id string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns := h.subs[id]; conns != nil {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.subs, id)
		}
	}
	conn.Close()
}

// Broadcast sends the freshly generated document to every frame
// previewing the restaurant. Dead connections are dropped as they fail.
func (h *Hub) Broadcast(id, html string) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.subs[id]))
	for conn := range h.subs[id] {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(html)); err != nil {
			h.remove(id, conn)
		}
	}
}

// Subscribers returns how many frames are previewing the restaurant.
func (h *Hub) Subscribers(id string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[id])
}
