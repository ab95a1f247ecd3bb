package notification

import (
	"domain-auction/internal/auctionerrors"
	"domain-auction/internal/models"
	"fmt"
	"sync"
	"time"
)

// DefaultTTL is how long a notification stays visible unless dismissed earlier
const DefaultTTL = 5 * time.Second

// Center holds the in-memory list of ephemeral notifications. Expired entries
// are dropped lazily on every access.
type Center struct {
	mu     sync.Mutex
	items  []models.Notification
	lastID int64
	ttl    time.Duration
	now    func() time.Time
}

// NewCenter creates a notification center with the given display window
func NewCenter(ttl time.Duration) *Center {
	return NewCenterWithClock(ttl, time.Now)
}

// NewCenterWithClock creates a notification center driven by the supplied clock
func NewCenterWithClock(ttl time.Duration, now func() time.Time) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl, now: now}
}

// Add appends a notification with a fresh id
func (c *Center) Add(kind models.NotificationType, title, message string) models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneLocked()

	c.lastID++
	n := models.Notification{
		ID:        c.lastID,
		Type:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: c.now().UTC(),
	}
	c.items = append(c.items, n)
	return n
}

// List returns the notifications still inside their display window, oldest first
func (c *Center) List() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneLocked()
	return append([]models.Notification{}, c.items...)
}

// Remove dismisses a notification before it expires
func (c *Center) Remove(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneLocked()
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove notification %d: %w", id, auctionerrors.ErrNotificationNotFound)
}

// MarkRead flags a notification as read
func (c *Center) MarkRead(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneLocked()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Read = true
			return nil
		}
	}
	return fmt.Errorf("mark notification %d read: %w", id, auctionerrors.ErrNotificationNotFound)
}

func (c *Center) pruneLocked() {
	cutoff := c.now().Add(-c.ttl)
	kept := c.items[:0]
	for _, n := range c.items {
		if n.CreatedAt.After(cutoff) {
			kept = append(kept, n)
		}
	}
	c.items = kept
}
