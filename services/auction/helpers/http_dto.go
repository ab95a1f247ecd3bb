package helpers

import (
	"domain-auction/internal/models"
	"time"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	DomainID int     `json:"domainId" binding:"required,gt=0"`
	UserID   int     `json:"userId" binding:"required,gt=0"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	ID       int     `json:"id"`
	DomainID int     `json:"domainId"`
	UserID   int     `json:"userId"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

type AddDomainRequest struct {
	Name                string          `json:"name" binding:"required"`
	CurrentBid          float64         `json:"currentBid" binding:"gte=0"`
	StartingBid         float64         `json:"startingBid" binding:"gte=0"`
	EndTime             time.Time       `json:"endTime" binding:"required"`
	Description         string          `json:"description"`
	Category            models.Category `json:"category" binding:"omitempty,oneof=premium standard"`
	MinimumBidIncrement float64         `json:"minimumBidIncrement"`
	ReservePrice        *float64        `json:"reservePrice"`
}

type UpdateDomainRequest struct {
	Name                *string          `json:"name" binding:"omitempty,min=1"`
	Description         *string          `json:"description"`
	Category            *models.Category `json:"category" binding:"omitempty,oneof=premium standard"`
	EndTime             *time.Time       `json:"endTime"`
	MinimumBidIncrement *float64         `json:"minimumBidIncrement"`
	ReservePrice        *float64         `json:"reservePrice"`
	ClearReservePrice   bool             `json:"clearReservePrice"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Name        *string      `json:"name" binding:"omitempty,min=1"`
	Email       *string      `json:"email" binding:"omitempty,email"`
	Password    *string      `json:"password" binding:"omitempty,min=1"`
	Role        *models.Role `json:"role" binding:"omitempty,oneof=admin moderator user"`
	Permissions *[]string    `json:"permissions"`
	IsActive    *bool        `json:"isActive"`
}

type ResetPasswordResponse struct {
	UserID   int    `json:"userId"`
	Password string `json:"password"`
}

// NewBidResponse renders a bid with an RFC 3339 date
func NewBidResponse(bid models.Bid) BidResponse {
	return BidResponse{
		ID:       bid.ID,
		DomainID: bid.DomainID,
		UserID:   bid.UserID,
		Amount:   bid.Amount,
		Date:     bid.Date.UTC().Format(time.RFC3339),
	}
}

// NewBidResponses renders bids, never returning nil
func NewBidResponses(bids []models.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, NewBidResponse(b))
	}
	return out
}

func (r AddDomainRequest) ToInput() models.DomainInput {
	return models.DomainInput{
		Name:                r.Name,
		CurrentBid:          r.CurrentBid,
		StartingBid:         r.StartingBid,
		EndTime:             r.EndTime,
		Description:         r.Description,
		Category:            r.Category,
		MinimumBidIncrement: r.MinimumBidIncrement,
		ReservePrice:        r.ReservePrice,
	}
}

func (r UpdateDomainRequest) ToPatch() models.DomainPatch {
	return models.DomainPatch{
		Name:                r.Name,
		Description:         r.Description,
		Category:            r.Category,
		EndTime:             r.EndTime,
		MinimumBidIncrement: r.MinimumBidIncrement,
		ReservePrice:        r.ReservePrice,
		ClearReservePrice:   r.ClearReservePrice,
	}
}

func (r UpdateUserRequest) ToPatch() models.UserPatch {
	return models.UserPatch{
		Name:        r.Name,
		Email:       r.Email,
		Password:    r.Password,
		Role:        r.Role,
		Permissions: r.Permissions,
		IsActive:    r.IsActive,
	}
}
