package broadcast

import (
	"context"
	"domain-auction/internal/metrics"
	"domain-auction/internal/models"
	"domain-auction/utils"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	DefaultSendBuffer   = 256
	DefaultPingInterval = 54 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API is consumed cross-origin by the browser front end
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SnapshotSource provides the domain list a freshly started hub begins from
type SnapshotSource interface {
	Domains() []models.Domain
}

// Hub fans DOMAINS_UPDATE snapshots out to every connected websocket client.
// The client set is owned by the Run goroutine.
type Hub struct {
	source       SnapshotSource
	sendBuffer   int
	pingInterval time.Duration
	metrics      metrics.Recorder

	clients    map[*Client]bool
	latest     []byte
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}

	clientCount atomic.Int64
}

// NewHub creates a hub. Non-positive sizes fall back to the defaults and a nil
// recorder disables metrics.
func NewHub(source SnapshotSource, sendBuffer int, pingInterval time.Duration, rec metrics.Recorder) *Hub {
	if sendBuffer <= 0 {
		sendBuffer = DefaultSendBuffer
	}
	if pingInterval <= 0 {
		pingInterval = DefaultPingInterval
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Hub{
		source:       source,
		sendBuffer:   sendBuffer,
		pingInterval: pingInterval,
		metrics:      rec,
		clients:      make(map[*Client]bool),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		broadcast:    make(chan []byte, 256),
		done:         make(chan struct{}),
	}
}

// Run is the hub's main loop. It returns once ctx is cancelled, closing every
// client connection on the way out.
func (h *Hub) Run(ctx context.Context) {
	latest, err := encodeDomainsUpdate(h.source.Domains())
	if err != nil {
		utils.Error("failed to encode initial snapshot", map[string]any{"error": err.Error()})
	}
	h.latest = latest

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.removeClient(client)
			}
			close(h.done)
			utils.Info("broadcast hub stopped", nil)
			return

		case client := <-h.register:
			h.clients[client] = true
			h.refreshCount()
			go client.writePump(h.pingInterval)
			if h.latest != nil {
				h.deliver(client, h.latest)
			}
			utils.Info("websocket client connected", map[string]any{"client_id": client.ID, "clients": len(h.clients)})

		case client := <-h.unregister:
			h.removeClient(client)

		case payload := <-h.broadcast:
			h.latest = payload
			delivered := 0
			for client := range h.clients {
				if h.deliver(client, payload) {
					delivered++
				}
			}
			h.metrics.RecordBroadcast(delivered)
			utils.Debug("domains snapshot broadcast", map[string]any{"clients": delivered})
		}
	}
}

// PublishDomains queues a snapshot for every connected client
func (h *Hub) PublishDomains(domains []models.Domain) {
	payload, err := encodeDomainsUpdate(domains)
	if err != nil {
		utils.Error("failed to encode domains snapshot", map[string]any{"error": err.Error()})
		return
	}
	select {
	case h.broadcast <- payload:
	case <-h.done:
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	return int(h.clientCount.Load())
}

// ServeWS upgrades the request to a websocket and registers the connection
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("failed to upgrade websocket connection", map[string]any{"error": err.Error()})
		return
	}

	client := &Client{
		ID:   utils.GenerateID(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, h.sendBuffer),
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.readPump(h.pingInterval)
}

// deliver queues payload for client, dropping a client whose queue is full
func (h *Hub) deliver(client *Client, payload []byte) bool {
	select {
	case client.send <- payload:
		return true
	default:
		utils.Warn("dropping slow websocket client", map[string]any{"client_id": client.ID})
		h.removeClient(client)
		return false
	}
}

func (h *Hub) removeClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	h.refreshCount()
	utils.Info("websocket client disconnected", map[string]any{"client_id": client.ID, "clients": len(h.clients)})
}

func (h *Hub) refreshCount() {
	h.clientCount.Store(int64(len(h.clients)))
	h.metrics.SetBroadcastClients(len(h.clients))
}
