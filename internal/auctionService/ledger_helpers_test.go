package auction

import (
	"domain-auction/internal/activity"
	"domain-auction/internal/credentials"
	"domain-auction/internal/models"
	"domain-auction/internal/notification"
	"domain-auction/internal/repository"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// testEnv bundles a ledger with direct access to its collaborators
type testEnv struct {
	ledger   *Ledger
	repo     *repository.MemoryRepo
	activity *activity.Log
	notes    *notification.Center
	hasher   credentials.Hasher
	admin    models.User
	bidder   models.User
	premium  models.Domain
	standard models.Domain
}

// newTestEnv seeds the demo catalogue: example.com (1000, +50, reserve 1500),
// mydomain.net (500, +25), John Doe (admin) and Jane Smith (user)
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repo := repository.NewMemoryRepo()
	hasher := credentials.NewBcryptHasher(bcrypt.MinCost)
	log := activity.NewLogWithClock(fixedClock)
	notes := notification.NewCenterWithClock(time.Hour, fixedClock)

	env := &testEnv{
		ledger:   NewLedger(repo, log, notes, WithClock(fixedClock), WithHasher(hasher)),
		repo:     repo,
		activity: log,
		notes:    notes,
		hasher:   hasher,
	}

	reserve := 1500.0
	var err error
	env.premium, err = repo.InsertDomain(models.Domain{
		Name:                "example.com",
		CurrentBid:          1000,
		StartingBid:         1000,
		EndTime:             testNow.Add(24 * time.Hour),
		Description:         "A premium .com domain",
		Category:            models.CategoryPremium,
		MinimumBidIncrement: 50,
		ReservePrice:        &reserve,
	})
	require.NoError(t, err)

	env.standard, err = repo.InsertDomain(models.Domain{
		Name:                "mydomain.net",
		CurrentBid:          500,
		StartingBid:         500,
		EndTime:             testNow.Add(48 * time.Hour),
		Description:         "Versatile .net domain",
		Category:            models.CategoryStandard,
		MinimumBidIncrement: 25,
	})
	require.NoError(t, err)

	env.admin = env.seedUser(t, "John Doe", "john@example.com", "password123", models.RoleAdmin, []string{models.PermissionAll})
	env.bidder = env.seedUser(t, "Jane Smith", "jane@example.com", "password456", models.RoleUser, models.DefaultPermissions())

	return env
}

func (e *testEnv) seedUser(t *testing.T, name, email, password string, role models.Role, perms []string) models.User {
	t.Helper()

	hash, err := e.hasher.Hash(password)
	require.NoError(t, err)

	user, err := e.repo.InsertUser(models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Permissions:  perms,
		IsActive:     true,
		CreatedAt:    testNow.Add(-30 * 24 * time.Hour),
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) loginBidder(t *testing.T) {
	t.Helper()
	_, err := e.ledger.Login("jane@example.com", "password456")
	require.NoError(t, err)
}

// lastNotification returns the most recently raised notification
func (e *testEnv) lastNotification(t *testing.T) models.Notification {
	t.Helper()
	items := e.notes.List()
	require.NotEmpty(t, items)
	return items[len(items)-1]
}

// recordingPublisher captures every snapshot it is handed
type recordingPublisher struct {
	mu        sync.Mutex
	snapshots [][]models.Domain
}

func (p *recordingPublisher) PublishDomains(domains []models.Domain) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshots = append(p.snapshots, domains)
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.snapshots)
}

func (p *recordingPublisher) last() []models.Domain {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.snapshots) == 0 {
		return nil
	}
	return p.snapshots[len(p.snapshots)-1]
}
