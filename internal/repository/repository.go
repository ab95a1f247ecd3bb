package repository

import (
	"domain-auction/internal/auctionerrors"
	model "domain-auction/internal/models"
	"fmt"
	"sort"
	"sync"
)

//go:generate mockgen -destination=mock_repository.go -package=repository domain-auction/internal/repository AuctionDB

// AuctionDB defines the entity storage interface for the auction system
type AuctionDB interface {
	InsertDomain(domain model.Domain) (model.Domain, error)
	GetDomain(domainID int) (model.Domain, error)
	ListDomains() []model.Domain
	SaveDomain(domain model.Domain) error
	DeleteDomain(domainID int) (model.Domain, error)

	InsertUser(user model.User) (model.User, error)
	GetUser(userID int) (model.User, error)
	FindUserByEmail(email string) (model.User, error)
	ListUsers() []model.User
	SaveUser(user model.User) error
	DeleteUser(userID int) (model.User, error)

	RecordBid(bid model.Bid) (model.Bid, error)
	ListBids() []model.Bid
	GetBidsByUser(userID int) []model.Bid
	GetBidsByDomain(domainID int) []model.Bid
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu      sync.RWMutex
	domains map[int]model.Domain // key: domainID
	users   map[int]model.User   // key: userID
	bids    []model.Bid          // acceptance order

	lastDomainID int
	lastUserID   int
	lastBidID    int
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		domains: make(map[int]model.Domain),
		users:   make(map[int]model.User),
	}
}

// InsertDomain stores a domain under a fresh id. A non-zero id is kept as long as it is unused.
func (r *MemoryRepo) InsertDomain(domain model.Domain) (model.Domain, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if domain.ID == 0 {
		r.lastDomainID++
		domain.ID = r.lastDomainID
	} else {
		if _, exists := r.domains[domain.ID]; exists {
			return model.Domain{}, fmt.Errorf("insert domain %d: %w - id already in use", domain.ID, auctionerrors.ErrInvalidInput)
		}
		if domain.ID > r.lastDomainID {
			r.lastDomainID = domain.ID
		}
	}

	r.domains[domain.ID] = domain
	return domain, nil
}

// GetDomain returns a domain by id
func (r *MemoryRepo) GetDomain(domainID int) (model.Domain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	domain, ok := r.domains[domainID]
	if !ok {
		return model.Domain{}, fmt.Errorf("get domain %d: %w", domainID, auctionerrors.ErrDomainNotFound)
	}
	return domain, nil
}

// ListDomains returns all domains ordered by id
func (r *MemoryRepo) ListDomains() []model.Domain {
	r.mu.RLock()
	defer r.mu.RUnlock()

	domains := make([]model.Domain, 0, len(r.domains))
	for _, d := range r.domains {
		domains = append(domains, d)
	}
	sort.Slice(domains, func(i, j int) bool { return domains[i].ID < domains[j].ID })
	return domains
}

// SaveDomain replaces an existing domain
func (r *MemoryRepo) SaveDomain(domain model.Domain) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.domains[domain.ID]; !ok {
		return fmt.Errorf("save domain %d: %w", domain.ID, auctionerrors.ErrDomainNotFound)
	}
	r.domains[domain.ID] = domain
	return nil
}

// DeleteDomain removes a domain and returns what was removed. Its bids stay in the ledger.
func (r *MemoryRepo) DeleteDomain(domainID int) (model.Domain, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	domain, ok := r.domains[domainID]
	if !ok {
		return model.Domain{}, fmt.Errorf("delete domain %d: %w", domainID, auctionerrors.ErrDomainNotFound)
	}
	delete(r.domains, domainID)
	return domain, nil
}

// InsertUser stores a user under a fresh id, rejecting emails that are already registered
func (r *MemoryRepo) InsertUser(user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return model.User{}, fmt.Errorf("insert user %s: %w", user.Email, auctionerrors.ErrEmailTaken)
		}
	}

	if user.ID == 0 {
		r.lastUserID++
		user.ID = r.lastUserID
	} else {
		if _, exists := r.users[user.ID]; exists {
			return model.User{}, fmt.Errorf("insert user %d: %w - id already in use", user.ID, auctionerrors.ErrInvalidInput)
		}
		if user.ID > r.lastUserID {
			r.lastUserID = user.ID
		}
	}

	user.Permissions = append([]string(nil), user.Permissions...)
	r.users[user.ID] = user
	return copyUser(user), nil
}

// GetUser returns a user by id
func (r *MemoryRepo) GetUser(userID int) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %d: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return copyUser(user), nil
}

// FindUserByEmail returns the user registered with the exact email
func (r *MemoryRepo) FindUserByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.sortedUserIDs() {
		if user := r.users[id]; user.Email == email {
			return copyUser(user), nil
		}
	}
	return model.User{}, fmt.Errorf("find user %s: %w", email, auctionerrors.ErrUserNotFound)
}

// ListUsers returns all users ordered by id
func (r *MemoryRepo) ListUsers() []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.users))
	for _, id := range r.sortedUserIDs() {
		users = append(users, copyUser(r.users[id]))
	}
	return users
}

// SaveUser replaces an existing user. Email uniqueness is only enforced on insert.
func (r *MemoryRepo) SaveUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("save user %d: %w", user.ID, auctionerrors.ErrUserNotFound)
	}
	r.users[user.ID] = copyUser(user)
	return nil
}

// DeleteUser removes a user and returns what was removed
func (r *MemoryRepo) DeleteUser(userID int) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("delete user %d: %w", userID, auctionerrors.ErrUserNotFound)
	}
	delete(r.users, userID)
	return user, nil
}

// RecordBid stores an accepted bid under the next sequential id and moves the
// domain's current bid to the bid amount
func (r *MemoryRepo) RecordBid(bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	domain, ok := r.domains[bid.DomainID]
	if !ok {
		return model.Bid{}, fmt.Errorf("record bid for domain %d: %w", bid.DomainID, auctionerrors.ErrDomainNotFound)
	}

	r.lastBidID++
	bid.ID = r.lastBidID
	r.bids = append(r.bids, bid)

	domain.CurrentBid = bid.Amount
	r.domains[domain.ID] = domain

	return bid, nil
}

// ListBids returns every accepted bid in acceptance order
func (r *MemoryRepo) ListBids() []model.Bid {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.Bid{}, r.bids...)
}

// GetBidsByUser returns the bids a user has placed, oldest first
func (r *MemoryRepo) GetBidsByUser(userID int) []model.Bid {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := []model.Bid{}
	for _, b := range r.bids {
		if b.UserID == userID {
			bids = append(bids, b)
		}
	}
	return bids
}

// GetBidsByDomain returns the bids placed on a domain, oldest first
func (r *MemoryRepo) GetBidsByDomain(domainID int) []model.Bid {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := []model.Bid{}
	for _, b := range r.bids {
		if b.DomainID == domainID {
			bids = append(bids, b)
		}
	}
	return bids
}

func (r *MemoryRepo) sortedUserIDs() []int {
	ids := make([]int, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func copyUser(user model.User) model.User {
	user.Permissions = append([]string(nil), user.Permissions...)
	return user
}
