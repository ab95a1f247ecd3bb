package broadcast

import (
	"domain-auction/internal/models"
	"encoding/json"
	"time"
)

// MessageTypeDomainsUpdate tags a full domain snapshot
const MessageTypeDomainsUpdate = "DOMAINS_UPDATE"

// Message is the only frame the hub sends
type Message struct {
	Type    string          `json:"type"`
	Domains []DomainPayload `json:"domains"`
}

// DomainPayload is the wire form of a domain. Starting bids are not broadcast.
type DomainPayload struct {
	ID                  int             `json:"id"`
	Name                string          `json:"name"`
	CurrentBid          float64         `json:"currentBid"`
	EndTime             time.Time       `json:"endTime"`
	Description         string          `json:"description"`
	Category            models.Category `json:"category"`
	MinimumBidIncrement float64         `json:"minimumBidIncrement"`
	ReservePrice        *float64        `json:"reservePrice"`
}

// NewDomainsUpdate builds a snapshot message from domains
func NewDomainsUpdate(domains []models.Domain) Message {
	payload := make([]DomainPayload, 0, len(domains))
	for _, d := range domains {
		payload = append(payload, DomainPayload{
			ID:                  d.ID,
			Name:                d.Name,
			CurrentBid:          d.CurrentBid,
			EndTime:             d.EndTime.UTC(),
			Description:         d.Description,
			Category:            d.Category,
			MinimumBidIncrement: d.MinimumBidIncrement,
			ReservePrice:        d.ReservePrice,
		})
	}
	return Message{Type: MessageTypeDomainsUpdate, Domains: payload}
}

func encodeDomainsUpdate(domains []models.Domain) ([]byte, error) {
	return json.Marshal(NewDomainsUpdate(domains))
}
