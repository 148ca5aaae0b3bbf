package request

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

// RegisterCustomerRoutes mounts the customer-facing lifecycle endpoints. The
// group is expected to carry JWTAuth + RequireRole + RequireCustomer.
func (h *Handler) RegisterCustomerRoutes(rg *gin.RouterGroup) {
	rg.POST("/requests", h.Create)
	rg.GET("/requests", h.History)
	rg.PATCH("/requests/:id", h.UpdatePrice)
	rg.POST("/requests/:id/pay", h.Pay)
}

func (h *Handler) RegisterProfessionalRoutes(rg *gin.RouterGroup) {
	rg.GET("/requests", h.Incoming)
	rg.GET("/requests/handled", h.Handled)
	rg.POST("/requests/:id/handle", h.Handle)
	rg.POST("/requests/:id/close", h.Close)
	rg.GET("/summary", h.Summary)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/requests/:id/reassign", h.Reassign)
	rg.POST("/requests/:id/close", h.Close)
}

// actorFromContext rebuilds the policy actor from what the auth and profile
// middlewares stored. The profile gates already reject blocked accounts, so
// Blocked is false for any request that reaches a handler.
func actorFromContext(c *gin.Context) policy.Actor {
	return policy.Actor{
		Role:           domain.UserRole(c.GetString("role")),
		CustomerID:     c.GetInt64("customer_id"),
		ProfessionalID: c.GetInt64("professional_id"),
		Verified:       c.GetBool("verified"),
	}
}

func requestID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request id")
		return 0, false
	}
	return id, true
}

func writeServiceError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not allowed to perform this action")
	case ErrAccountBlocked:
		response.Error(c, http.StatusForbidden, "ACCOUNT_BLOCKED", err.Error())
	case ErrNotVerified:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case ErrStateConflict:
		response.Error(c, http.StatusConflict, "STATE_CONFLICT", err.Error())
	case ErrInvalidAction:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case ErrActiveRequestExists, ErrProfessionalUnavailable:
		response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	sr, err := h.service.Create(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"request": sr})
}

func (h *Handler) History(c *gin.Context) {
	requests, err := h.service.HistoryForCustomer(c.Request.Context(), c.GetInt64("customer_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}

func (h *Handler) UpdatePrice(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	var req UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	sr, err := h.service.EditPrice(c.Request.Context(), actorFromContext(c), id, req.ProposedPrice)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"request": sr})
}

func (h *Handler) Pay(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	sr, err := h.service.Pay(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"request": sr})
}

func (h *Handler) Incoming(c *gin.Context) {
	requests, err := h.service.IncomingForProfessional(c.Request.Context(), c.GetInt64("professional_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}

func (h *Handler) Handled(c *gin.Context) {
	requests, err := h.service.HandledForProfessional(c.Request.Context(), c.GetInt64("professional_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}

func (h *Handler) Handle(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	var req HandleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	sr, err := h.service.Handle(c.Request.Context(), actorFromContext(c), id, req.Action)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"request": sr})
}

func (h *Handler) Close(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	sr, err := h.service.Close(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"request": sr})
}

func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.service.SummaryForProfessional(c.Request.Context(), c.GetInt64("professional_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}

func (h *Handler) Reassign(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	var req ReassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	sr, err := h.service.Reassign(c.Request.Context(), actorFromContext(c), id, req.ProfessionalID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"request": sr})
}
