package websocket

import (
	"CourseCatalog/interfaces"
	"encoding/json"
	"log"
	"sync"
)

// Hub maintains the set of subscribed clients and fans catalog events out
// to them.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Outbound catalog events.
	broadcast chan []byte

	mu sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// NotifyCatalogChange implements interfaces.CatalogNotifier: the catalog
// service calls it on every admin mutation.
func (h *Hub) NotifyCatalogChange(event interfaces.CatalogEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[WebSocket] Failed to marshal catalog event: %v", err)
		return
	}
	h.broadcast <- data
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Slow consumer, drop the connection.
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}
