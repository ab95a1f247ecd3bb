// Package stats reduces the bid ledger to summary figures.
package stats

import "domain-auction/internal/models"

// Compute summarises bids. The most active domain and user are the ids with the
// most bids; ties go to whichever id appears first in bid order. Ids that no
// longer resolve to a domain or user keep their id but report an empty name.
func Compute(bids []models.Bid, domains []models.Domain, users []models.User) models.Statistics {
	var s models.Statistics
	if len(bids) == 0 {
		return s
	}

	var sum float64
	s.HighestBid = bids[0].Amount
	for _, b := range bids {
		sum += b.Amount
		if b.Amount > s.HighestBid {
			s.HighestBid = b.Amount
		}
	}
	s.TotalBids = len(bids)
	s.AverageBid = sum / float64(len(bids))

	s.MostActiveDomainID = mostFrequent(bids, func(b models.Bid) int { return b.DomainID })
	s.MostActiveUserID = mostFrequent(bids, func(b models.Bid) int { return b.UserID })

	for _, d := range domains {
		if d.ID == s.MostActiveDomainID {
			s.MostActiveDomain = d.Name
			break
		}
	}
	for _, u := range users {
		if u.ID == s.MostActiveUserID {
			s.MostActiveUser = u.Name
			break
		}
	}
	return s
}

func mostFrequent(bids []models.Bid, key func(models.Bid) int) int {
	counts := make(map[int]int)
	var order []int
	for _, b := range bids {
		k := key(b)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	best, bestCount := 0, 0
	for _, k := range order {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best
}
