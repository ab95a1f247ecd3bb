package watcher

import (
	"context"
	"domain-auction/internal/models"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var watchNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return watchNow }

func TestWatcher_Check(t *testing.T) {
	t.Parallel()

	jane := models.User{ID: 2, Name: "Jane Smith"}

	tests := []struct {
		name          string
		domains       []models.Domain
		session       models.SessionUser
		signedIn      bool
		expectedTitle []string
	}{
		{
			name:     "nothing_to_report",
			domains:  []models.Domain{{ID: 1, Name: "example.com", CurrentBid: 1000, EndTime: watchNow.Add(time.Hour)}},
			session:  models.SessionUser{User: jane, Bids: []models.Bid{{ID: 1, UserID: 2, DomainID: 1, Amount: 1000, Date: watchNow}}},
			signedIn: true,
		},
		{
			name:          "outbid",
			domains:       []models.Domain{{ID: 1, Name: "example.com", CurrentBid: 1100, EndTime: watchNow.Add(time.Hour)}},
			session:       models.SessionUser{User: jane, Bids: []models.Bid{{ID: 1, UserID: 2, DomainID: 1, Amount: 1050, Date: watchNow}}},
			signedIn:      true,
			expectedTitle: []string{"Outbid"},
		},
		{
			name:    "latest_bid_decides",
			domains: []models.Domain{{ID: 1, Name: "example.com", CurrentBid: 1100, EndTime: watchNow.Add(time.Hour)}},
			session: models.SessionUser{User: jane, Bids: []models.Bid{
				{ID: 1, UserID: 2, DomainID: 1, Amount: 1050, Date: watchNow.Add(-time.Minute)},
				{ID: 3, UserID: 2, DomainID: 1, Amount: 1100, Date: watchNow},
			}},
			signedIn: true,
		},
		{
			name:          "ending_soon_without_session",
			domains:       []models.Domain{{ID: 1, Name: "example.com", CurrentBid: 1000, EndTime: watchNow.Add(30 * time.Second)}},
			expectedTitle: []string{"Auction Ending Soon"},
		},
		{
			name:     "already_ended",
			domains:  []models.Domain{{ID: 1, Name: "example.com", CurrentBid: 1000, EndTime: watchNow.Add(-time.Second)}},
			signedIn: false,
		},
		{
			name:          "outbid_and_ending_soon",
			domains:       []models.Domain{{ID: 1, Name: "example.com", CurrentBid: 1100, EndTime: watchNow.Add(time.Minute)}},
			session:       models.SessionUser{User: jane, Bids: []models.Bid{{ID: 1, UserID: 2, DomainID: 1, Amount: 1050, Date: watchNow}}},
			signedIn:      true,
			expectedTitle: []string{"Outbid", "Auction Ending Soon"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			state := NewMockAuctionState(ctrl)
			state.EXPECT().Domains().Return(tc.domains)
			state.EXPECT().CurrentUser().Return(tc.session, tc.signedIn)
			for _, title := range tc.expectedTitle {
				title := title
				state.EXPECT().Notify(models.NotificationInfo, title, gomock.Any()).
					DoAndReturn(func(kind models.NotificationType, title, message string) models.Notification {
						return models.Notification{Type: kind, Title: title, Message: message}
					})
			}

			w := New(state, time.Second, time.Minute, clock)
			raised := w.Check()

			require.Len(t, raised, len(tc.expectedTitle))
			for i, title := range tc.expectedTitle {
				require.Equal(t, title, raised[i].Title)
			}
		})
	}
}

func TestWatcher_Messages(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	state := NewMockAuctionState(ctrl)
	state.EXPECT().Domains().Return([]models.Domain{{ID: 1, Name: "example.com", CurrentBid: 1100, EndTime: watchNow.Add(10 * time.Second)}})
	state.EXPECT().CurrentUser().Return(models.SessionUser{
		User: models.User{ID: 2},
		Bids: []models.Bid{{ID: 1, UserID: 2, DomainID: 1, Amount: 1050, Date: watchNow}},
	}, true)
	state.EXPECT().Notify(models.NotificationInfo, "Outbid", "You've been outbid on example.com. Current bid is $1100.")
	state.EXPECT().Notify(models.NotificationInfo, "Auction Ending Soon", "The auction for example.com is ending in less than a minute!")

	New(state, time.Second, time.Minute, clock).Check()
}

// The ending-soon text follows the configured threshold
func TestWatcher_EndingSoonUsesThreshold(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	state := NewMockAuctionState(ctrl)
	state.EXPECT().Domains().Return([]models.Domain{{ID: 2, Name: "mydomain.net", CurrentBid: 500, EndTime: watchNow.Add(4 * time.Minute)}})
	state.EXPECT().CurrentUser().Return(models.SessionUser{}, false)
	state.EXPECT().Notify(models.NotificationInfo, "Auction Ending Soon", "The auction for mydomain.net is ending in less than 5 minutes!")

	New(state, time.Second, 5*time.Minute, clock).Check()
}

func TestDescribeWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: time.Minute, want: "a minute"},
		{in: time.Second, want: "a second"},
		{in: 5 * time.Minute, want: "5 minutes"},
		{in: 2 * time.Hour, want: "120 minutes"},
		{in: 30 * time.Second, want: "30 seconds"},
		{in: 90 * time.Second, want: "1m30s"},
		{in: 1500 * time.Millisecond, want: "1.5s"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, describeWindow(tc.in), tc.in.String())
	}
}

// A condition is reported once until the state it depends on changes
func TestWatcher_Deduplicates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := models.SessionUser{
		User: models.User{ID: 2},
		Bids: []models.Bid{{ID: 1, UserID: 2, DomainID: 1, Amount: 1050, Date: watchNow}},
	}
	outbidAt := func(current float64) []models.Domain {
		return []models.Domain{{ID: 1, Name: "example.com", CurrentBid: current, EndTime: watchNow.Add(time.Hour)}}
	}

	state := NewMockAuctionState(ctrl)
	gomock.InOrder(
		state.EXPECT().Domains().Return(outbidAt(1100)),
		state.EXPECT().Domains().Return(outbidAt(1100)),
		state.EXPECT().Domains().Return(outbidAt(1200)),
	)
	state.EXPECT().CurrentUser().Return(session, true).Times(3)
	state.EXPECT().Notify(models.NotificationInfo, "Outbid", gomock.Any()).Times(2)

	w := New(state, time.Second, time.Minute, clock)
	w.Check()
	w.Check()
	w.Check()
}

func TestWatcher_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	state := NewMockAuctionState(ctrl)
	state.EXPECT().Domains().Return(nil).AnyTimes()
	state.EXPECT().CurrentUser().Return(models.SessionUser{}, false).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		New(state, 10*time.Millisecond, time.Minute, clock).Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	w := New(nil, 0, -1, nil)
	require.Equal(t, DefaultInterval, w.interval)
	require.Equal(t, DefaultThreshold, w.threshold)
	require.NotNil(t, w.now)
}
