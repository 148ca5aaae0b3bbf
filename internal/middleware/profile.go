package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicehub/internal/pkg/response"
	"servicehub/internal/repository"
)

// ProfileGate loads the acting user's role profile and enforces the blocked
// check at the start of every guarded operation, not only at login. A user
// blocked mid-session is denied on their very next request.
type ProfileGate struct {
	customers     *repository.CustomerRepository
	professionals *repository.ProfessionalRepository
}

func NewProfileGate(customers *repository.CustomerRepository, professionals *repository.ProfessionalRepository) *ProfileGate {
	return &ProfileGate{customers: customers, professionals: professionals}
}

// RequireCustomer resolves the customer profile for the authenticated user and
// stores customer_id in the context.
func (g *ProfileGate) RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")

		customer, err := g.customers.GetByUserID(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "No customer profile for this account")
			c.Abort()
			return
		}

		if customer.AdminBlocked {
			response.Error(c, http.StatusForbidden, "ACCOUNT_BLOCKED", "Your account has been suspended by an administrator")
			c.Abort()
			return
		}

		c.Set("customer_id", customer.ID)
		c.Next()
	}
}

// RequireProfessional resolves the professional profile, denies blocked
// accounts and stores professional_id and verified in the context. Unverified
// professionals pass through; the verification gate applies to accepting work,
// not to viewing the dashboard.
func (g *ProfileGate) RequireProfessional() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")

		prof, err := g.professionals.GetByUserID(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "No professional profile for this account")
			c.Abort()
			return
		}

		if prof.AdminBlocked {
			response.Error(c, http.StatusForbidden, "ACCOUNT_BLOCKED", "Your account has been suspended by an administrator")
			c.Abort()
			return
		}

		c.Set("professional_id", prof.ID)
		c.Set("verified", prof.IsVerified)
		c.Next()
	}
}
