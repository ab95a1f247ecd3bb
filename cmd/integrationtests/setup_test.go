package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"domain-auction/internal/activity"
	auction "domain-auction/internal/auctionService"
	"domain-auction/internal/credentials"
	"domain-auction/internal/notification"
	"domain-auction/internal/repository"
	"domain-auction/internal/seed"
	"domain-auction/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// NewSeededLedger builds a ledger over an in-memory store loaded with fixture
func NewSeededLedger(t *testing.T, fixture seed.Fixture) *auction.Ledger {
	t.Helper()
	repo := repository.NewMemoryRepo()
	hasher := credentials.NewBcryptHasher(bcrypt.MinCost)
	_, err := seed.Load(repo, hasher, time.Now(), fixture)
	require.NoError(t, err)
	return auction.NewLedger(repo, activity.NewLog(), notification.NewCenter(time.Minute), auction.WithHasher(hasher))
}

// SetupTestRouter initializes the router over the demo catalogue for integration testing.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	fixture, err := seed.Default()
	require.NoError(t, err)
	return SetupTestRouterWithFixture(t, fixture)
}

// SetupTestRouterWithFixture initializes the router and seeds the store with fixture.
func SetupTestRouterWithFixture(t *testing.T, fixture seed.Fixture) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return server.SetupRouter(NewSeededLedger(t, fixture), server.RouterOptions{})
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router http.Handler, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == http.StatusCreated {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}

// Login signs a seeded user in through the API
func Login(t *testing.T, router http.Handler, email, password string) {
	t.Helper()
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)
}
