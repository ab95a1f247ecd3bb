package export

import (
	"domain-auction/internal/auctionerrors"
	"domain-auction/internal/models"
	"encoding/json"
	"fmt"
	"time"
)

// Kind names an exportable collection
type Kind string

const (
	KindDomains Kind = "domains"
	KindUsers   Kind = "users"
	KindBids    Kind = "bids"
)

// Kinds lists every exportable collection
var Kinds = []Kind{KindDomains, KindUsers, KindBids}

// userRecord is the exported shape of a user. It has no password field.
type userRecord struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
	Permissions []string    `json:"permissions"`
	IsActive    bool        `json:"isActive"`
	LastLogin   time.Time   `json:"lastLogin"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// ParseKind validates a collection name
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("export %q: %w", name, auctionerrors.ErrUnknownExportType)
}

// Export renders one collection as two-space indented JSON
func Export(kind Kind, domains []models.Domain, users []models.User, bids []models.Bid) (string, error) {
	var data any
	switch kind {
	case KindDomains:
		data = nonNil(domains)
	case KindUsers:
		records := make([]userRecord, 0, len(users))
		for _, u := range users {
			records = append(records, userRecord{
				ID:          u.ID,
				Name:        u.Name,
				Email:       u.Email,
				Role:        u.Role,
				Permissions: nonNil(u.Permissions),
				IsActive:    u.IsActive,
				LastLogin:   u.LastLogin,
				CreatedAt:   u.CreatedAt,
			})
		}
		data = records
	case KindBids:
		data = nonNil(bids)
	default:
		return "", fmt.Errorf("export %q: %w", kind, auctionerrors.ErrUnknownExportType)
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export %s: %w", kind, err)
	}
	return string(out), nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
