package auction

import (
	"domain-auction/internal/activity"
	"domain-auction/internal/credentials"
	"domain-auction/internal/export"
	"domain-auction/internal/metrics"
	"domain-auction/internal/models"
	"domain-auction/internal/notification"
	"domain-auction/internal/repository"
	"domain-auction/internal/stats"
	"domain-auction/utils"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// DomainPublisher receives the full domain snapshot after every change to it
type DomainPublisher interface {
	PublishDomains(domains []models.Domain)
}

// Ledger owns the auction state: domains, accounts, bids, the signed-in
// session and the activity and notification logs derived from them. All
// mutations are serialised through mu.
type Ledger struct {
	mu            sync.Mutex
	sessionUserID int // 0 when nobody is signed in

	repo     repository.AuctionDB
	activity *activity.Log
	notes    *notification.Center
	hasher   credentials.Hasher
	metrics  metrics.Recorder
	now      func() time.Time

	pubMu      sync.Mutex
	publishers []DomainPublisher
}

// Option configures a Ledger
type Option func(*Ledger)

// WithClock replaces the wall clock used to stamp bids and logins
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithHasher replaces the password hasher
func WithHasher(h credentials.Hasher) Option {
	return func(l *Ledger) { l.hasher = h }
}

// WithMetrics attaches a metrics recorder
func WithMetrics(m metrics.Recorder) Option {
	return func(l *Ledger) { l.metrics = m }
}

// NewLedger creates a Ledger over repo
func NewLedger(repo repository.AuctionDB, log *activity.Log, notes *notification.Center, opts ...Option) *Ledger {
	l := &Ledger{
		repo:     repo,
		activity: log,
		notes:    notes,
		hasher:   credentials.NewBcryptHasher(credentials.DefaultCost),
		metrics:  metrics.Nop{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Subscribe registers a publisher for domain snapshots
func (l *Ledger) Subscribe(p DomainPublisher) {
	l.pubMu.Lock()
	defer l.pubMu.Unlock()
	l.publishers = append(l.publishers, p)
}

// publishDomains pushes the current snapshot. It must be called without mu held;
// pubMu keeps snapshots from being delivered out of order.
func (l *Ledger) publishDomains() {
	l.pubMu.Lock()
	defer l.pubMu.Unlock()

	if len(l.publishers) == 0 {
		return
	}
	domains := l.repo.ListDomains()
	for _, p := range l.publishers {
		p.PublishDomains(domains)
	}
}

// Notify raises a user-facing notification
func (l *Ledger) Notify(kind models.NotificationType, title, message string) models.Notification {
	l.metrics.RecordNotification(string(kind))
	return l.notes.Add(kind, title, message)
}

// Notifications returns the notifications still on display
func (l *Ledger) Notifications() []models.Notification {
	return l.notes.List()
}

// DismissNotification removes a notification before it expires
func (l *Ledger) DismissNotification(id int64) error {
	if err := l.notes.Remove(id); err != nil {
		return fmt.Errorf("service: failed to dismiss notification: %w", err)
	}
	return nil
}

// MarkNotificationRead flags a notification as read
func (l *Ledger) MarkNotificationRead(id int64) error {
	if err := l.notes.MarkRead(id); err != nil {
		return fmt.Errorf("service: failed to mark notification read: %w", err)
	}
	return nil
}

// ActivityLogs returns the whole audit trail
func (l *Ledger) ActivityLogs() []models.ActivityLog {
	return l.activity.All()
}

// UserActivity returns the audit entries attributed to userID
func (l *Ledger) UserActivity(userID int) []models.ActivityLog {
	return l.activity.ForUser(userID)
}

// Statistics recomputes the bidding summary from the current collections
func (l *Ledger) Statistics() models.Statistics {
	return stats.Compute(l.repo.ListBids(), l.repo.ListDomains(), l.repo.ListUsers())
}

// Export renders the named collection ("domains", "users" or "bids") as JSON text
func (l *Ledger) Export(kind string) (string, error) {
	k, err := export.ParseKind(kind)
	if err != nil {
		l.Notify(models.NotificationError, "Export Failed", fmt.Sprintf("Failed to export %s data.", kind))
		return "", fmt.Errorf("service: %w", err)
	}

	out, err := export.Export(k, l.repo.ListDomains(), l.repo.ListUsers(), l.repo.ListBids())
	if err != nil {
		return "", fmt.Errorf("service: failed to export %s: %w", kind, err)
	}
	return out, nil
}

// record appends an activity entry for the acting session. Callers hold mu.
func (l *Ledger) record(action string) {
	entry := l.activity.Append(l.sessionUserID, action)
	utils.Debug("activity recorded", map[string]any{
		"activity_id": entry.ID,
		"user_id":     entry.UserID,
		"action":      entry.Action,
	})
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
