// Package apiv1 is the key-authenticated integration API. Its response
// shapes are part of the published contract and deliberately differ from the
// web app's envelope, so handlers write plain JSON documents.
package apiv1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicehub/internal/domain"
)

type Handler struct {
	services      ServiceLister
	customers     CustomerReader
	professionals ProfessionalReader
	requests      RequestLister
}

func NewHandler(services ServiceLister, customers CustomerReader, professionals ProfessionalReader, requests RequestLister) *Handler {
	return &Handler{
		services:      services,
		customers:     customers,
		professionals: professionals,
		requests:      requests,
	}
}

// RegisterRoutes mounts the v1 endpoints. The group is expected to carry
// APIKeyAuth.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
	rg.GET("/me", h.Me)
	rg.GET("/my-requests", h.MyRequests)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.services.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": 500, "message": "Failed to load services."})
		return
	}

	out := make([]gin.H, len(services))
	for i, s := range services {
		out[i] = gin.H{
			"id":          s.ID,
			"name":        s.ServiceType,
			"description": s.Description,
			"base_price":  s.BasePrice,
		}
	}
	c.JSON(http.StatusOK, gin.H{"services": out})
}

func (h *Handler) Me(c *gin.Context) {
	user := c.MustGet("api_user").(*domain.User)
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"address":  user.Address,
		"pin":      user.Pin,
	}})
}

// MyRequests lists the caller's requests from whichever side of the
// marketplace they are on. Accounts without a role profile get an empty list
// rather than an error.
func (h *Handler) MyRequests(c *gin.Context) {
	user := c.MustGet("api_user").(*domain.User)
	ctx := c.Request.Context()

	var (
		requests []domain.ServiceRequest
		err      error
	)
	switch user.Role {
	case domain.RoleCustomer:
		if customer, cerr := h.customers.GetByUserID(ctx, user.ID); cerr == nil {
			requests, err = h.requests.ListByCustomer(ctx, customer.ID)
		}
	case domain.RoleProfessional:
		if prof, perr := h.professionals.GetByUserID(ctx, user.ID); perr == nil {
			requests, err = h.requests.ListByProfessional(ctx, prof.ID)
		}
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": 500, "message": "Failed to load requests."})
		return
	}

	out := make([]gin.H, len(requests))
	for i, r := range requests {
		row := gin.H{
			"id":             r.ID,
			"status":         r.Status,
			"proposed_price": r.ProposedPrice,
			"date_requested": r.DateOfRequest,
		}
		if r.Service != nil {
			row["service"] = r.Service.ServiceType
		}
		if r.Customer != nil && r.Customer.User != nil {
			row["customer"] = r.Customer.User.Username
		}
		if r.Professional != nil && r.Professional.User != nil {
			row["professional"] = r.Professional.User.Username
		}
		out[i] = row
	}
	c.JSON(http.StatusOK, gin.H{"requests": out})
}
