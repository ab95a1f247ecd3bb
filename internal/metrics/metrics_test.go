package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordBidAccepted(1050)
	c.RecordBidAccepted(1100)
	c.RecordBidRejected("too_low")
	c.RecordNotification("success")
	c.RecordHTTPRequest(http.MethodPost, "/bids", http.StatusCreated, 5*time.Millisecond)
	c.SetBroadcastClients(3)
	c.RecordBroadcast(3)

	require.Equal(t, 2.0, testutil.ToFloat64(c.bidsAccepted))
	require.Equal(t, 1.0, testutil.ToFloat64(c.bidsRejected.WithLabelValues("too_low")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.notifications.WithLabelValues("success")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.httpRequests.WithLabelValues("POST", "/bids", "201")))
	require.Equal(t, 3.0, testutil.ToFloat64(c.broadcastClients))
	require.Equal(t, 3.0, testutil.ToFloat64(c.broadcastSent))
}

func TestHandler(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordBidAccepted(10)

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.Contains(w.Body.String(), "auction_bids_accepted_total 1"))
}

func TestNop(t *testing.T) {
	t.Parallel()

	var r Recorder = Nop{}
	r.RecordBidAccepted(1)
	r.RecordBidRejected("x")
	r.RecordNotification("info")
	r.RecordHTTPRequest("GET", "/", 200, time.Second)
	r.SetBroadcastClients(1)
	r.RecordBroadcast(1)
}
