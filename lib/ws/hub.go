package ws

import "sync"

// Hub maintains the set of active Clients and fans recalculation updates out
// to the editing surfaces subscribed to a page.
type Hub struct {
	// Registered Clients.
	Clients        map[*Client]bool
	ClientsRWMutex sync.RWMutex

	// Register requests from the Clients.
	Register chan *Client

	// Unregister requests from Clients.
	Unregister chan *Client

	// Outbound messages scoped to one page.
	Broadcast chan PageMessage
}

// PageMessage is a payload addressed to all clients of one page.
type PageMessage struct {
	PageId  string
	Payload []byte
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan PageMessage),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			if client == nil {
				continue
			}
			h.ClientsRWMutex.Lock()
			h.Clients[client] = true
			h.ClientsRWMutex.Unlock()
		case client := <-h.Unregister:
			if client == nil {
				continue
			}
			h.ClientsRWMutex.Lock()
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
			}
			h.ClientsRWMutex.Unlock()
		case message := <-h.Broadcast:
			h.ClientsRWMutex.Lock()
			for client := range h.Clients {
				if client == nil || client.PageId != message.PageId {
					continue
				}
				select {
				case client.Send <- message.Payload:
				default:
					delete(h.Clients, client)
					close(client.Send)
				}
			}
			h.ClientsRWMutex.Unlock()
		}
	}
}
