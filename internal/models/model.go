package models

import "time"

// Category classifies a domain lot
type Category string

const (
	CategoryPremium  Category = "premium"
	CategoryStandard Category = "standard"
)

// Role is the access level of a user account
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// Permission strings granted to accounts. PermissionAll grants every capability.
const (
	PermissionAll          = "all"
	PermissionViewAuctions = "view_auctions"
	PermissionPlaceBids    = "place_bids"
)

// DefaultPermissions returns the permission set given to self-registered users
func DefaultPermissions() []string {
	return []string{PermissionViewAuctions, PermissionPlaceBids}
}

// Domain represents a named auction lot
type Domain struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	CurrentBid          float64   `json:"currentBid"`
	StartingBid         float64   `json:"startingBid"`
	EndTime             time.Time `json:"endTime"`
	Description         string    `json:"description"`
	Category            Category  `json:"category,omitempty"`
	MinimumBidIncrement float64   `json:"minimumBidIncrement"`
	ReservePrice        *float64  `json:"reservePrice"`
}

// MinimumNextBid is the lowest amount the lot currently accepts
func (d Domain) MinimumNextBid() float64 {
	return d.CurrentBid + d.MinimumBidIncrement
}

// DomainInput carries the fields of a domain about to be listed
type DomainInput struct {
	Name                string    `json:"name"`
	CurrentBid          float64   `json:"currentBid"`
	StartingBid         float64   `json:"startingBid"`
	EndTime             time.Time `json:"endTime"`
	Description         string    `json:"description"`
	Category            Category  `json:"category,omitempty"`
	MinimumBidIncrement float64   `json:"minimumBidIncrement"`
	ReservePrice        *float64  `json:"reservePrice"`
}

// DomainPatch is a partial update of a listed domain. Nil fields are left untouched.
// Bid amounts are not patchable: currentBid only moves through accepted bids.
type DomainPatch struct {
	Name                *string    `json:"name,omitempty"`
	Description         *string    `json:"description,omitempty"`
	Category            *Category  `json:"category,omitempty"`
	EndTime             *time.Time `json:"endTime,omitempty"`
	MinimumBidIncrement *float64   `json:"minimumBidIncrement,omitempty"`
	ReservePrice        *float64   `json:"reservePrice,omitempty"`
	ClearReservePrice   bool       `json:"clearReservePrice,omitempty"`
}

// User represents an account. PasswordHash never leaves the process.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Permissions  []string  `json:"permissions"`
	IsActive     bool      `json:"isActive"`
	LastLogin    time.Time `json:"lastLogin"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HasPermission reports whether the user holds the capability, directly or via "all"
func (u User) HasPermission(permission string) bool {
	for _, p := range u.Permissions {
		if p == permission || p == PermissionAll {
			return true
		}
	}
	return false
}

// UserPatch is a partial update of an account
type UserPatch struct {
	Name        *string   `json:"name,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Password    *string   `json:"password,omitempty"`
	Role        *Role     `json:"role,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
	IsActive    *bool     `json:"isActive,omitempty"`
}

// SessionUser is the signed-in user together with their bid history
type SessionUser struct {
	User
	Bids []Bid `json:"bids"`
}

// Bid represents an accepted bid on a domain
type Bid struct {
	ID       int       `json:"id"`
	UserID   int       `json:"userId"`
	DomainID int       `json:"domainId"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
}

// NotificationType is the severity of a user-facing message
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationInfo    NotificationType = "info"
)

// Notification is an ephemeral user-facing message
type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ActivityLog is an append-only audit entry
type ActivityLog struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// Statistics summarises bidding activity
type Statistics struct {
	TotalBids          int     `json:"totalBids"`
	AverageBid         float64 `json:"averageBid"`
	HighestBid         float64 `json:"highestBid"`
	MostActiveDomainID int     `json:"mostActiveDomainId"`
	MostActiveDomain   string  `json:"mostActiveDomain"`
	MostActiveUserID   int     `json:"mostActiveUserId"`
	MostActiveUser     string  `json:"mostActiveUser"`
}
