// Package watcher periodically derives "outbid" and "ending soon"
// notifications from the auction state.
package watcher

import (
	"context"
	"domain-auction/internal/models"
	"domain-auction/utils"
	"fmt"
	"strconv"
	"sync"
	"time"
)

const (
	DefaultInterval  = 5 * time.Second
	DefaultThreshold = time.Minute
)

//go:generate mockgen -destination=mock_watcher.go -package=watcher . AuctionState

// AuctionState is the part of the ledger the watcher reads and notifies through
type AuctionState interface {
	Domains() []models.Domain
	CurrentUser() (models.SessionUser, bool)
	Notify(kind models.NotificationType, title, message string) models.Notification
}

type outbidKey struct {
	userID     int
	domainID   int
	currentBid float64
}

type endingKey struct {
	domainID int
	endTime  int64
}

// Watcher raises each condition once: outbid per (user, domain, current bid)
// and ending soon per (domain, end time).
type Watcher struct {
	state     AuctionState
	interval  time.Duration
	threshold time.Duration
	now       func() time.Time

	mu         sync.Mutex
	outbid     map[outbidKey]bool
	endingSoon map[endingKey]bool
}

// New creates a watcher. Non-positive durations fall back to the defaults and
// a nil clock uses time.Now.
func New(state AuctionState, interval, threshold time.Duration, now func() time.Time) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if now == nil {
		now = time.Now
	}
	return &Watcher{
		state:      state,
		interval:   interval,
		threshold:  threshold,
		now:        now,
		outbid:     make(map[outbidKey]bool),
		endingSoon: make(map[endingKey]bool),
	}
}

// Run checks the state once per interval until ctx is cancelled
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	utils.Info("auction watcher started", map[string]any{"interval": w.interval.String(), "threshold": w.threshold.String()})
	for {
		select {
		case <-ctx.Done():
			utils.Info("auction watcher stopped", nil)
			return
		case <-ticker.C:
			w.Check()
		}
	}
}

// Check evaluates every domain once and returns the notifications it raised
func (w *Watcher) Check() []models.Notification {
	w.mu.Lock()
	defer w.mu.Unlock()

	domains := w.state.Domains()
	user, signedIn := w.state.CurrentUser()
	latest := latestBids(user.Bids)
	now := w.now()

	var raised []models.Notification
	for _, domain := range domains {
		if signedIn {
			if bid, ok := latest[domain.ID]; ok && bid.Amount < domain.CurrentBid {
				key := outbidKey{userID: user.ID, domainID: domain.ID, currentBid: domain.CurrentBid}
				if !w.outbid[key] {
					w.outbid[key] = true
					raised = append(raised, w.state.Notify(models.NotificationInfo, "Outbid",
						fmt.Sprintf("You've been outbid on %s. Current bid is $%s.", domain.Name, strconv.FormatFloat(domain.CurrentBid, 'f', -1, 64))))
				}
			}
		}

		remaining := domain.EndTime.Sub(now)
		if remaining > 0 && remaining <= w.threshold {
			key := endingKey{domainID: domain.ID, endTime: domain.EndTime.UnixNano()}
			if !w.endingSoon[key] {
				w.endingSoon[key] = true
				raised = append(raised, w.state.Notify(models.NotificationInfo, "Auction Ending Soon",
					fmt.Sprintf("The auction for %s is ending in less than %s!", domain.Name, describeWindow(w.threshold))))
			}
		}
	}

	if len(raised) > 0 {
		utils.Debug("watcher raised notifications", map[string]any{"count": len(raised)})
	}
	return raised
}

// describeWindow renders the ending-soon threshold for messages, e.g. "a minute",
// "5 minutes", "30 seconds" or "1m30s".
func describeWindow(d time.Duration) string {
	switch {
	case d == time.Minute:
		return "a minute"
	case d == time.Second:
		return "a second"
	case d%time.Minute == 0:
		return fmt.Sprintf("%d minutes", d/time.Minute)
	case d < time.Minute && d%time.Second == 0:
		return fmt.Sprintf("%d seconds", d/time.Second)
	default:
		return d.String()
	}
}

// latestBids maps each domain to the user's most recent bid on it
func latestBids(bids []models.Bid) map[int]models.Bid {
	latest := make(map[int]models.Bid, len(bids))
	for _, b := range bids {
		prev, ok := latest[b.DomainID]
		if !ok || b.Date.After(prev.Date) || (b.Date.Equal(prev.Date) && b.ID > prev.ID) {
			latest[b.DomainID] = b
		}
	}
	return latest
}
