package handler

import (
	"net/http"

	"domain-auction/internal/models"
	"domain-auction/services/auction/helpers"
	"domain-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_bidding_service.go -package=handler . BiddingServiceInterface

type BiddingServiceInterface interface {
	PlaceBid(userID, domainID int, amount float64) (models.Bid, error)
	Bids() []models.Bid
	BidsForDomain(domainID int) ([]models.Bid, error)
	BidsForUser(userID int) ([]models.Bid, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// RecordBidHandler handles POST /bids
func (h *BiddingHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.UserID, req.DomainID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "RecordBidHandler", "failed to record bid", err, map[string]any{
			"domain_id": req.DomainID,
			"user_id":   req.UserID,
			"amount":    req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":    bid.ID,
		"domain_id": bid.DomainID,
		"user_id":   bid.UserID,
		"amount":    bid.Amount,
	})
}

// ListBidsHandler handles GET /bids
func (h *BiddingHandler) ListBidsHandler(c *gin.Context) {
	bids := helpers.NewBidResponses(h.service.Bids())

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("ListBidsHandler", "bids retrieved successfully", map[string]any{"count": len(bids)})
}

// GetBidsByDomainHandler handles GET /domains/:domain_id/bids
func (h *BiddingHandler) GetBidsByDomainHandler(c *gin.Context) {
	domainID, ok := helpers.ParseIDParam(c, "GetBidsByDomainHandler", "domain_id")
	if !ok {
		return
	}

	bids, err := h.service.BidsForDomain(domainID)
	if err != nil {
		helpers.RespondError(c, "GetBidsByDomainHandler", "error retrieving bids", err, map[string]any{"domain_id": domainID})
		return
	}

	resp := helpers.NewBidResponses(bids)
	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByDomainHandler", "bids retrieved successfully", map[string]any{
		"domain_id": domainID,
		"count":     len(resp),
	})
}

// GetBidsByUserHandler handles GET /users/:user_id/bids
func (h *BiddingHandler) GetBidsByUserHandler(c *gin.Context) {
	userID, ok := helpers.ParseIDParam(c, "GetBidsByUserHandler", "user_id")
	if !ok {
		return
	}

	bids, err := h.service.BidsForUser(userID)
	if err != nil {
		helpers.RespondError(c, "GetBidsByUserHandler", "error retrieving bids", err, map[string]any{"user_id": userID})
		return
	}

	resp := helpers.NewBidResponses(bids)
	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByUserHandler", "bids retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(resp),
	})
}
