package handler

import (
	"net/http"

	"domain-auction/internal/models"
	"domain-auction/services/auction/helpers"
	"domain-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_domain_service.go -package=handler . DomainServiceInterface

type DomainServiceInterface interface {
	Domains() []models.Domain
	Domain(domainID int) (models.Domain, error)
	AddDomain(input models.DomainInput) (models.Domain, error)
	UpdateDomain(domainID int, patch models.DomainPatch) (models.Domain, error)
	RemoveDomain(domainID int) error
}

type DomainHandler struct {
	service DomainServiceInterface
}

func NewDomainHandler(service DomainServiceInterface) *DomainHandler {
	return &DomainHandler{service: service}
}

// ListDomainsHandler handles GET /domains
func (h *DomainHandler) ListDomainsHandler(c *gin.Context) {
	domains := h.service.Domains()

	utils.JSONResponse(c, http.StatusOK, domains, "domains retrieved successfully")
	helpers.LogSuccess("ListDomainsHandler", "domains retrieved successfully", map[string]any{"count": len(domains)})
}

// GetDomainHandler handles GET /domains/:domain_id
func (h *DomainHandler) GetDomainHandler(c *gin.Context) {
	domainID, ok := helpers.ParseIDParam(c, "GetDomainHandler", "domain_id")
	if !ok {
		return
	}

	domain, err := h.service.Domain(domainID)
	if err != nil {
		helpers.RespondError(c, "GetDomainHandler", "error retrieving domain", err, map[string]any{"domain_id": domainID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, domain, "domain retrieved successfully")
}

// AddDomainHandler handles POST /domains
func (h *DomainHandler) AddDomainHandler(c *gin.Context) {
	var req helpers.AddDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddDomainHandler", err)
		return
	}

	domain, err := h.service.AddDomain(req.ToInput())
	if err != nil {
		helpers.RespondError(c, "AddDomainHandler", "failed to add domain", err, map[string]any{"name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, domain, "domain added successfully")
	helpers.LogSuccess("AddDomainHandler", "domain added successfully", map[string]any{
		"domain_id": domain.ID,
		"name":      domain.Name,
	})
}

// UpdateDomainHandler handles PATCH /domains/:domain_id
func (h *DomainHandler) UpdateDomainHandler(c *gin.Context) {
	domainID, ok := helpers.ParseIDParam(c, "UpdateDomainHandler", "domain_id")
	if !ok {
		return
	}

	var req helpers.UpdateDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateDomainHandler", err)
		return
	}

	domain, err := h.service.UpdateDomain(domainID, req.ToPatch())
	if err != nil {
		helpers.RespondError(c, "UpdateDomainHandler", "failed to update domain", err, map[string]any{"domain_id": domainID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, domain, "domain updated successfully")
	helpers.LogSuccess("UpdateDomainHandler", "domain updated successfully", map[string]any{"domain_id": domainID})
}

// RemoveDomainHandler handles DELETE /domains/:domain_id
func (h *DomainHandler) RemoveDomainHandler(c *gin.Context) {
	domainID, ok := helpers.ParseIDParam(c, "RemoveDomainHandler", "domain_id")
	if !ok {
		return
	}

	if err := h.service.RemoveDomain(domainID); err != nil {
		helpers.RespondError(c, "RemoveDomainHandler", "failed to remove domain", err, map[string]any{"domain_id": domainID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"id": domainID}, "domain removed successfully")
	helpers.LogSuccess("RemoveDomainHandler", "domain removed successfully", map[string]any{"domain_id": domainID})
}
