package broadcast

import (
	"context"
	"domain-auction/utils"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
)

// Subscriber is the receiving end of the broadcast channel. It keeps the most
// recent snapshot and does not reconnect.
type Subscriber struct {
	conn *websocket.Conn

	mu      sync.Mutex
	last    Message
	hasLast bool
}

// Dial connects to a hub endpoint such as ws://localhost:8080/ws
func Dial(ctx context.Context, url string) (*Subscriber, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("broadcast: dial %s: %w", url, err)
	}
	return &Subscriber{conn: conn}, nil
}

// Listen reads snapshots until the connection closes or ctx is cancelled,
// calling onUpdate for each one. A normal close returns nil.
func (s *Subscriber) Listen(ctx context.Context, onUpdate func(Message)) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			s.conn.Close()
		case <-stop:
		}
	}()

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("broadcast: read: %w", err)
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			utils.Warn("ignoring malformed broadcast frame", map[string]any{"error": err.Error()})
			continue
		}
		if msg.Type != MessageTypeDomainsUpdate {
			utils.Debug("ignoring broadcast frame", map[string]any{"type": msg.Type})
			continue
		}

		s.mu.Lock()
		s.last = msg
		s.hasLast = true
		s.mu.Unlock()

		if onUpdate != nil {
			onUpdate(msg)
		}
	}
}

// Snapshot returns the last snapshot received, if any
func (s *Subscriber) Snapshot() (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.hasLast
}

// Close sends a close frame and releases the connection
func (s *Subscriber) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	writeErr := s.conn.WriteMessage(websocket.CloseMessage, msg)
	closeErr := s.conn.Close()
	if closeErr != nil && !errors.Is(closeErr, websocket.ErrCloseSent) {
		return closeErr
	}
	if writeErr != nil && !errors.Is(writeErr, websocket.ErrCloseSent) {
		return writeErr
	}
	return nil
}
