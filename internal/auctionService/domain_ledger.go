package auction

import (
	"domain-auction/internal/auctionerrors"
	"domain-auction/internal/models"
	"domain-auction/utils"
	"fmt"
	"math"
)

// Domains returns every listed domain ordered by id
func (l *Ledger) Domains() []models.Domain {
	return l.repo.ListDomains()
}

// Domain returns a single listed domain
func (l *Ledger) Domain(domainID int) (models.Domain, error) {
	domain, err := l.repo.GetDomain(domainID)
	if err != nil {
		return models.Domain{}, fmt.Errorf("service: failed to get domain %d: %w", domainID, err)
	}
	return domain, nil
}

// AddDomain lists a new domain under a fresh id
func (l *Ledger) AddDomain(input models.DomainInput) (models.Domain, error) {
	domain, err := l.addDomain(input)
	if err != nil {
		return models.Domain{}, err
	}
	l.publishDomains()
	return domain, nil
}

func (l *Ledger) addDomain(input models.DomainInput) (models.Domain, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	domain := models.Domain{
		Name:                input.Name,
		CurrentBid:          input.CurrentBid,
		StartingBid:         input.StartingBid,
		EndTime:             input.EndTime,
		Description:         input.Description,
		Category:            input.Category,
		MinimumBidIncrement: input.MinimumBidIncrement,
		ReservePrice:        copyAmount(input.ReservePrice),
	}
	if domain.StartingBid == 0 {
		domain.StartingBid = domain.CurrentBid
	}
	if domain.CurrentBid < domain.StartingBid {
		domain.CurrentBid = domain.StartingBid
	}

	stored, err := l.repo.InsertDomain(domain)
	if err != nil {
		l.Notify(models.NotificationError, "Domain Not Added", fmt.Sprintf("Domain %s could not be added.", input.Name))
		return models.Domain{}, fmt.Errorf("service: failed to add domain %s: %w", input.Name, err)
	}

	l.record("Added new domain: " + stored.Name)
	l.Notify(models.NotificationSuccess, "Domain Added", fmt.Sprintf("New domain %s has been added to the system.", stored.Name))
	utils.Info("domain added", map[string]any{
		"domain_id":   stored.ID,
		"name":        stored.Name,
		"current_bid": stored.CurrentBid,
		"end_time":    stored.EndTime,
	})
	return stored, nil
}

// UpdateDomain merges patch into an existing domain
func (l *Ledger) UpdateDomain(domainID int, patch models.DomainPatch) (models.Domain, error) {
	domain, err := l.updateDomain(domainID, patch)
	if err != nil {
		return models.Domain{}, err
	}
	l.publishDomains()
	return domain, nil
}

func (l *Ledger) updateDomain(domainID int, patch models.DomainPatch) (models.Domain, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	domain, err := l.repo.GetDomain(domainID)
	if err != nil {
		l.Notify(models.NotificationError, "Update Failed", fmt.Sprintf("Domain %d was not found.", domainID))
		return models.Domain{}, fmt.Errorf("service: failed to update domain %d: %w", domainID, err)
	}
	previousName := domain.Name

	applyDomainPatch(&domain, patch)

	if err := l.repo.SaveDomain(domain); err != nil {
		l.Notify(models.NotificationError, "Update Failed", fmt.Sprintf("Domain %s could not be updated.", previousName))
		return models.Domain{}, fmt.Errorf("service: failed to save domain %d: %w", domainID, err)
	}

	l.record("Updated domain: " + previousName)
	l.Notify(models.NotificationSuccess, "Domain Updated", fmt.Sprintf("Domain %s has been updated.", domain.Name))
	utils.Info("domain updated", map[string]any{"domain_id": domainID, "name": domain.Name})
	return domain, nil
}

// RemoveDomain delists a domain. Bids already placed on it stay in the ledger.
func (l *Ledger) RemoveDomain(domainID int) error {
	if err := l.removeDomain(domainID); err != nil {
		return err
	}
	l.publishDomains()
	return nil
}

func (l *Ledger) removeDomain(domainID int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed, err := l.repo.DeleteDomain(domainID)
	if err != nil {
		l.Notify(models.NotificationError, "Remove Failed", fmt.Sprintf("Domain %d was not found.", domainID))
		return fmt.Errorf("service: failed to remove domain %d: %w", domainID, err)
	}

	l.record("Removed domain: " + removed.Name)
	l.Notify(models.NotificationInfo, "Domain Removed", fmt.Sprintf("Domain %s has been removed from the system.", removed.Name))
	utils.Info("domain removed", map[string]any{"domain_id": domainID, "name": removed.Name})
	return nil
}

// PlaceBid validates and records a bid by the signed-in user. A rejected bid
// leaves every collection untouched and raises an error notification.
func (l *Ledger) PlaceBid(userID, domainID int, amount float64) (models.Bid, error) {
	bid, err := l.placeBid(userID, domainID, amount)
	if err != nil {
		return models.Bid{}, err
	}
	l.publishDomains()
	return bid, nil
}

func (l *Ledger) placeBid(userID, domainID int, amount float64) (models.Bid, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	domain, err := l.validateBid(userID, domainID, amount)
	if err != nil {
		return models.Bid{}, err
	}

	bid, err := l.repo.RecordBid(models.Bid{
		UserID:   userID,
		DomainID: domainID,
		Amount:   amount,
		Date:     l.now().UTC(),
	})
	if err != nil {
		l.metrics.RecordBidRejected("store")
		l.Notify(models.NotificationError, "Bid Failed", "Your bid could not be recorded.")
		return models.Bid{}, fmt.Errorf("service: failed to record bid on domain %d by user %d: %w", domainID, userID, err)
	}

	l.metrics.RecordBidAccepted(amount)
	l.Notify(models.NotificationSuccess, "Bid Placed", fmt.Sprintf("Your bid of $%s on %s was successful!", formatAmount(amount), domain.Name))
	l.record(fmt.Sprintf("Placed bid of $%s on domain %s", formatAmount(amount), domain.Name))
	utils.Info("bid accepted", map[string]any{
		"bid_id":       bid.ID,
		"domain_id":    domainID,
		"user_id":      userID,
		"amount":       amount,
		"previous_bid": domain.CurrentBid,
	})
	return bid, nil
}

// validateBid checks the session and the bid floor. Callers hold mu.
func (l *Ledger) validateBid(userID, domainID int, amount float64) (models.Domain, error) {
	if l.sessionUserID == 0 || l.sessionUserID != userID {
		l.rejectBid("not_authenticated", "You must be logged in to place a bid.")
		return models.Domain{}, fmt.Errorf("service: %w - bids must be placed by the signed-in user", auctionerrors.ErrNotAuthenticated)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		l.rejectBid("invalid_amount", "Invalid bid amount.")
		return models.Domain{}, fmt.Errorf("service: %w - non-positive or non-finite bid amount", auctionerrors.ErrInvalidBid)
	}

	domain, err := l.repo.GetDomain(domainID)
	if err != nil {
		l.rejectBid("domain_not_found", "Invalid bid amount.")
		return models.Domain{}, fmt.Errorf("service: failed to place bid: %w", err)
	}

	if amount <= domain.CurrentBid || amount < domain.MinimumNextBid() {
		l.rejectBid("too_low", "Invalid bid amount.")
		return models.Domain{}, fmt.Errorf("service: %w - minimum acceptable bid is %.2f", auctionerrors.ErrBidTooLow, domain.MinimumNextBid())
	}
	return domain, nil
}

func (l *Ledger) rejectBid(reason, message string) {
	l.metrics.RecordBidRejected(reason)
	l.Notify(models.NotificationError, "Bid Failed", message)
	utils.Warn("bid rejected", map[string]any{"reason": reason})
}

// Bids returns every accepted bid in acceptance order
func (l *Ledger) Bids() []models.Bid {
	return l.repo.ListBids()
}

// BidsForDomain returns the bids placed on a listed domain
func (l *Ledger) BidsForDomain(domainID int) ([]models.Bid, error) {
	if _, err := l.repo.GetDomain(domainID); err != nil {
		return nil, fmt.Errorf("service: failed to get bids for domain %d: %w", domainID, err)
	}
	return l.repo.GetBidsByDomain(domainID), nil
}

func applyDomainPatch(domain *models.Domain, patch models.DomainPatch) {
	if patch.Name != nil {
		domain.Name = *patch.Name
	}
	if patch.Description != nil {
		domain.Description = *patch.Description
	}
	if patch.Category != nil {
		domain.Category = *patch.Category
	}
	if patch.EndTime != nil {
		domain.EndTime = *patch.EndTime
	}
	if patch.MinimumBidIncrement != nil {
		domain.MinimumBidIncrement = *patch.MinimumBidIncrement
	}
	if patch.ClearReservePrice {
		domain.ReservePrice = nil
	} else if patch.ReservePrice != nil {
		domain.ReservePrice = copyAmount(patch.ReservePrice)
	}
}

func copyAmount(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
