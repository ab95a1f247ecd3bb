package seed

import (
	"domain-auction/internal/auctionerrors"
	"domain-auction/internal/credentials"
	"domain-auction/internal/models"
	"domain-auction/internal/repository"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var seedNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func TestLoad_DefaultFixture(t *testing.T) {
	t.Parallel()

	fixture, err := Default()
	require.NoError(t, err)

	repo := repository.NewMemoryRepo()
	hasher := credentials.NewBcryptHasher(bcrypt.MinCost)

	summary, err := Load(repo, hasher, seedNow, fixture)
	require.NoError(t, err)
	require.Equal(t, Summary{Domains: 2, Users: 2, Bids: 1}, summary)

	premium, err := repo.GetDomain(1)
	require.NoError(t, err)
	require.Equal(t, "example.com", premium.Name)
	require.Equal(t, 1000.0, premium.CurrentBid)
	require.Equal(t, 50.0, premium.MinimumBidIncrement)
	require.Equal(t, models.CategoryPremium, premium.Category)
	require.NotNil(t, premium.ReservePrice)
	require.Equal(t, 1500.0, *premium.ReservePrice)
	require.Equal(t, seedNow.Add(24*time.Hour), premium.EndTime)

	standard, err := repo.GetDomain(2)
	require.NoError(t, err)
	require.Nil(t, standard.ReservePrice)
	require.Equal(t, seedNow.Add(48*time.Hour), standard.EndTime)

	john, err := repo.FindUserByEmail("john@example.com")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, john.Role)
	require.Equal(t, []string{models.PermissionAll}, john.Permissions)
	require.True(t, hasher.Compare(john.PasswordHash, "password123"))
	require.Equal(t, seedNow.Add(-30*24*time.Hour), john.CreatedAt)

	jane, err := repo.FindUserByEmail("jane@example.com")
	require.NoError(t, err)
	require.Equal(t, models.DefaultPermissions(), jane.Permissions)
	require.True(t, jane.IsActive)

	bids := repo.ListBids()
	require.Len(t, bids, 1)
	require.Equal(t, 1, bids[0].ID)
	require.Equal(t, jane.ID, bids[0].UserID)
	require.Equal(t, 1000.0, bids[0].Amount)

	added, err := repo.InsertDomain(models.Domain{Name: "next.io"})
	require.NoError(t, err)
	require.Equal(t, 3, added.ID, "ids continue after seeded ones")
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		fixture       Fixture
		expectedError error
	}{
		{
			name:          "domain_without_name",
			fixture:       Fixture{Domains: []DomainFixture{{ID: 1, CurrentBid: 10}}},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "user_without_password",
			fixture:       Fixture{Users: []UserFixture{{ID: 1, Email: "a@example.com"}}},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name: "duplicate_email",
			fixture: Fixture{Users: []UserFixture{
				{Email: "a@example.com", Password: "x"},
				{Email: "a@example.com", Password: "y"},
			}},
			expectedError: auctionerrors.ErrEmailTaken,
		},
		{
			name:          "bid_on_unknown_user",
			fixture:       Fixture{Bids: []BidFixture{{UserID: 7, DomainID: 1, Amount: 10}}},
			expectedError: auctionerrors.ErrUserNotFound,
		},
		{
			name: "bid_on_unknown_domain",
			fixture: Fixture{
				Users: []UserFixture{{Email: "a@example.com", Password: "x"}},
				Bids:  []BidFixture{{UserID: 1, DomainID: 9, Amount: 10}},
			},
			expectedError: auctionerrors.ErrDomainNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := repository.NewMemoryRepo()
			_, err := Load(repo, credentials.NewBcryptHasher(bcrypt.MinCost), seedNow, tc.fixture)
			require.ErrorIs(t, err, tc.expectedError)
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("defaults_for_role_and_permissions", func(t *testing.T) {
		fixture, err := Parse(strings.NewReader(`
users:
  - name: Alice
    email: alice@example.com
    password: s3cret
`))
		require.NoError(t, err)

		repo := repository.NewMemoryRepo()
		_, err = Load(repo, credentials.NewBcryptHasher(bcrypt.MinCost), seedNow, fixture)
		require.NoError(t, err)

		alice, err := repo.FindUserByEmail("alice@example.com")
		require.NoError(t, err)
		require.Equal(t, models.RoleUser, alice.Role)
		require.Equal(t, models.DefaultPermissions(), alice.Permissions)
	})

	t.Run("empty_document", func(t *testing.T) {
		fixture, err := Parse(strings.NewReader(""))
		require.NoError(t, err)
		require.Empty(t, fixture.Domains)
	})

	t.Run("unknown_field", func(t *testing.T) {
		_, err := Parse(strings.NewReader("domains:\n  - name: a.io\n    price: 10\n"))
		require.Error(t, err)
	})

	t.Run("bad_duration", func(t *testing.T) {
		_, err := Parse(strings.NewReader("domains:\n  - name: a.io\n    endsIn: tomorrow\n"))
		require.Error(t, err)
	})
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte("domains:\n  - id: 5\n    name: file.io\n    currentBid: 42\n    endsIn: 1h\n"), 0o600))

	fixture, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, fixture.Domains, 1)
	require.Equal(t, 5, fixture.Domains[0].ID)
	require.Equal(t, time.Hour, fixture.Domains[0].EndsIn)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
