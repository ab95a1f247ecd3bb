// Package seed loads fixture data into a fresh repository at startup.
package seed

import (
	"bytes"
	"domain-auction/internal/auctionerrors"
	"domain-auction/internal/credentials"
	"domain-auction/internal/models"
	"domain-auction/internal/repository"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultFixture []byte

// Fixture is the on-disk shape of a seed file. Times are expressed relative to
// the moment the fixture is loaded.
type Fixture struct {
	Domains []DomainFixture `yaml:"domains"`
	Users   []UserFixture   `yaml:"users"`
	Bids    []BidFixture    `yaml:"bids"`
}

type DomainFixture struct {
	ID                  int             `yaml:"id"`
	Name                string          `yaml:"name"`
	CurrentBid          float64         `yaml:"currentBid"`
	StartingBid         float64         `yaml:"startingBid"`
	EndsIn              time.Duration   `yaml:"endsIn"`
	Description         string          `yaml:"description"`
	Category            models.Category `yaml:"category"`
	MinimumBidIncrement float64         `yaml:"minimumBidIncrement"`
	ReservePrice        *float64        `yaml:"reservePrice"`
}

type UserFixture struct {
	ID          int           `yaml:"id"`
	Name        string        `yaml:"name"`
	Email       string        `yaml:"email"`
	Password    string        `yaml:"password"`
	Role        models.Role   `yaml:"role"`
	Permissions []string      `yaml:"permissions"`
	Disabled    bool          `yaml:"disabled"`
	CreatedAgo  time.Duration `yaml:"createdAgo"`
}

type BidFixture struct {
	UserID    int           `yaml:"userId"`
	DomainID  int           `yaml:"domainId"`
	Amount    float64       `yaml:"amount"`
	PlacedAgo time.Duration `yaml:"placedAgo"`
}

// Summary counts what Load inserted
type Summary struct {
	Domains int
	Users   int
	Bids    int
}

// Default returns the embedded demo catalogue
func Default() (Fixture, error) {
	return Parse(bytes.NewReader(defaultFixture))
}

// ReadFile parses the fixture stored at path
func ReadFile(path string) (Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("seed: open %s: %w", path, err)
	}
	defer f.Close()

	fixture, err := Parse(f)
	if err != nil {
		return Fixture{}, fmt.Errorf("seed: %s: %w", path, err)
	}
	return fixture, nil
}

// Parse decodes a YAML fixture, rejecting unknown keys
func Parse(r io.Reader) (Fixture, error) {
	var fixture Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fixture); err != nil && !errors.Is(err, io.EOF) {
		return Fixture{}, fmt.Errorf("decode fixture: %w", err)
	}
	return fixture, nil
}

// Load inserts the fixture into repo. Passwords are hashed with hasher and
// relative times are resolved against now.
func Load(repo repository.AuctionDB, hasher credentials.Hasher, now time.Time, fixture Fixture) (Summary, error) {
	var summary Summary
	now = now.UTC()

	for _, d := range fixture.Domains {
		if d.Name == "" {
			return summary, fmt.Errorf("seed: domain %d has no name: %w", d.ID, auctionerrors.ErrInvalidInput)
		}
		starting := d.StartingBid
		if starting == 0 {
			starting = d.CurrentBid
		}
		_, err := repo.InsertDomain(models.Domain{
			ID:                  d.ID,
			Name:                d.Name,
			CurrentBid:          d.CurrentBid,
			StartingBid:         starting,
			EndTime:             now.Add(d.EndsIn),
			Description:         d.Description,
			Category:            d.Category,
			MinimumBidIncrement: d.MinimumBidIncrement,
			ReservePrice:        d.ReservePrice,
		})
		if err != nil {
			return summary, fmt.Errorf("seed: domain %s: %w", d.Name, err)
		}
		summary.Domains++
	}

	for _, u := range fixture.Users {
		if u.Email == "" || u.Password == "" {
			return summary, fmt.Errorf("seed: user %d needs an email and a password: %w", u.ID, auctionerrors.ErrInvalidInput)
		}
		hash, err := hasher.Hash(u.Password)
		if err != nil {
			return summary, fmt.Errorf("seed: hash password for %s: %w", u.Email, err)
		}

		role := u.Role
		if role == "" {
			role = models.RoleUser
		}
		perms := u.Permissions
		if len(perms) == 0 {
			perms = models.DefaultPermissions()
		}

		_, err = repo.InsertUser(models.User{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: hash,
			Role:         role,
			Permissions:  perms,
			IsActive:     !u.Disabled,
			LastLogin:    now,
			CreatedAt:    now.Add(-u.CreatedAgo),
		})
		if err != nil {
			return summary, fmt.Errorf("seed: user %s: %w", u.Email, err)
		}
		summary.Users++
	}

	for i, b := range fixture.Bids {
		if _, err := repo.GetUser(b.UserID); err != nil {
			return summary, fmt.Errorf("seed: bid %d: %w", i+1, err)
		}
		_, err := repo.RecordBid(models.Bid{
			UserID:   b.UserID,
			DomainID: b.DomainID,
			Amount:   b.Amount,
			Date:     now.Add(-b.PlacedAgo),
		})
		if err != nil {
			return summary, fmt.Errorf("seed: bid %d: %w", i+1, err)
		}
		summary.Bids++
	}

	return summary, nil
}
