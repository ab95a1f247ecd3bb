package activity

import (
	"domain-auction/internal/models"
	"sync"
	"time"
)

// AnonymousUserID attributes actions taken with no signed-in user
const AnonymousUserID = 0

// Log is an append-only, concurrency-safe record of user actions
type Log struct {
	mu      sync.RWMutex
	entries []models.ActivityLog
	now     func() time.Time
}

// NewLog creates an empty activity log
func NewLog() *Log {
	return &Log{now: time.Now}
}

// NewLogWithClock creates an empty activity log stamping entries with now
func NewLogWithClock(now func() time.Time) *Log {
	return &Log{now: now}
}

// Append records an action and returns the stored entry
func (l *Log) Append(userID int, action string) models.ActivityLog {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := models.ActivityLog{
		ID:        len(l.entries) + 1,
		UserID:    userID,
		Action:    action,
		Timestamp: l.now().UTC(),
	}
	l.entries = append(l.entries, entry)
	return entry
}

// All returns every entry, oldest first
func (l *Log) All() []models.ActivityLog {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]models.ActivityLog{}, l.entries...)
}

// ForUser returns the entries attributed to userID, oldest first
func (l *Log) ForUser(userID int) []models.ActivityLog {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := []models.ActivityLog{}
	for _, e := range l.entries {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	return entries
}

// Len returns the number of recorded entries
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
