package review

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"servicehub/internal/domain"
	"servicehub/internal/policy"
	"servicehub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterCustomerRoutes(rg *gin.RouterGroup) {
	rg.POST("/requests/:id/review", h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request id")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
		return
	}

	actor := policy.Actor{
		Role:       domain.UserRole(c.GetString("role")),
		CustomerID: c.GetInt64("customer_id"),
	}

	rv, err := h.service.Create(c.Request.Context(), actor, id, req)
	if err != nil {
		switch err {
		case ErrRequestNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not allowed to review this request")
		case ErrAccountBlocked:
			response.Error(c, http.StatusForbidden, "ACCOUNT_BLOCKED", err.Error())
		case ErrNotClosed, ErrNotAssigned:
			response.Error(c, http.StatusConflict, "STATE_CONFLICT", err.Error())
		case ErrAlreadyReviewed:
			response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save review")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": rv})
}
