package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"smartagri/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMessage = 64 * 1024
	sendBuffer = 16
)

// Conn is the part of *websocket.Conn the pumps use.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

// Client is one dashboard connection. A client is keyed by its connection id,
// not by user: the same account may have several dashboards open.
type Client struct {
	ID   string
	Conn Conn
	Send chan []byte

	// Handle receives every decoded message except pings.
	Handle func(c *Client, msg WSMessage)

	closeOnce sync.Once
	closed    chan struct{}
}

func NewClient(conn Conn, handle func(c *Client, msg WSMessage)) *Client {
	return &Client{
		ID:     uuid.New().String(),
		Conn:   conn,
		Send:   make(chan []byte, sendBuffer),
		Handle: handle,
		closed: make(chan struct{}),
	}
}

// Closed is closed once the manager has dropped the client.
func (c *Client) Closed() <-chan struct{} {
	return c.closed
}

// Manager tracks every open dashboard connection.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
	done       chan struct{}
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Start runs the registration loop until ctx is done. On exit every client
// still connected is dropped.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		defer close(m.done)
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ID] = client
				m.mutex.Unlock()
				logger.Debug("Dashboard client registered: %s", client.ID)

			case client := <-m.Unregister:
				m.drop(client)
				logger.Debug("Dashboard client unregistered: %s", client.ID)

			case <-ctx.Done():
				m.mutex.RLock()
				clients := make([]*Client, 0, len(m.clients))
				for _, c := range m.clients {
					clients = append(clients, c)
				}
				m.mutex.RUnlock()
				for _, c := range clients {
					m.drop(c)
				}
				return
			}
		}
	}()
}

// Add registers client. It reports false once the manager has stopped.
func (m *Manager) Add(client *Client) bool {
	select {
	case m.Register <- client:
		return true
	case <-m.done:
		return false
	}
}

// Remove unregisters client. It never blocks after the manager has stopped.
func (m *Manager) Remove(client *Client) {
	select {
	case m.Unregister <- client:
	case <-m.done:
		m.drop(client)
	}
}

func (m *Manager) drop(client *Client) {
	m.mutex.Lock()
	if _, ok := m.clients[client.ID]; ok {
		delete(m.clients, client.ID)
		client.closeOnce.Do(func() { close(client.closed) })
	}
	m.mutex.Unlock()
}

// Count returns the number of registered connections.
func (m *Manager) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}

// SendToClient queues message for the client with id. It reports false if the
// client is gone or its queue is full.
func (m *Manager) SendToClient(id string, message []byte) bool {
	m.mutex.RLock()
	client, ok := m.clients[id]
	m.mutex.RUnlock()

	if !ok {
		return false
	}
	return client.Queue(message)
}

// Queue puts message on the send queue without blocking.
func (c *Client) Queue(message []byte) bool {
	select {
	case <-c.closed:
		return false
	default:
	}
	select {
	case c.Send <- message:
		return true
	default:
		logger.Warn("Dashboard client %s send queue full, dropping message", c.ID)
		return false
	}
}

// Deliver puts message on the send queue, waiting for room until the client
// is dropped or stop is closed.
func (c *Client) Deliver(message []byte, stop <-chan struct{}) bool {
	select {
	case c.Send <- message:
		return true
	case <-c.closed:
		return false
	case <-stop:
		return false
	}
}

// ReadPump reads messages until the connection fails, then unregisters the
// client.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Remove(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessage)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Dashboard client %s read error: %v", c.ID, err)
			}
			return
		}

		msg, err := DecodeMessage(data)
		if err != nil {
			logger.Debug("Dashboard client %s sent invalid message: %v", c.ID, err)
			c.Queue(ErrorMessage("invalid message format"))
			continue
		}

		if msg.Type == MessageTypePing {
			c.Queue(Encode(MessageTypePong, map[string]string{"status": "alive"}))
			continue
		}

		if c.Handle != nil {
			c.Handle(c, msg)
		}
	}
}

// WritePump writes queued messages and keeps the connection alive with pings.
// It returns once the client is dropped or a write fails.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Debug("Dashboard client %s write error: %v", c.ID, err)
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.closed:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
