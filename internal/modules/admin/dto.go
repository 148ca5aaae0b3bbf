package admin

import "servicehub/internal/domain"

type ServicePayload struct {
	ServiceType string  `json:"service_type" binding:"required,min=2,max=80"`
	Description string  `json:"description" binding:"max=2000"`
	BasePrice   float64 `json:"base_price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url" binding:"omitempty,max=255"`
}

// Dashboard is the admin landing payload: everything the moderation screens
// need in one response.
type Dashboard struct {
	Services             []domain.Service        `json:"services"`
	Professionals        []domain.Professional   `json:"professionals"`
	PendingVerification  []domain.Professional   `json:"pending_verification"`
	ActiveRequests       []domain.ServiceRequest `json:"active_requests"`
	RejectedRequests     []domain.ServiceRequest `json:"rejected_requests"`
	RequestCountByStatus map[string]int64        `json:"request_count_by_status"`
}

// ChartSeries matches the labels/data pairs the admin charts render.
type ChartSeries struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
}

type ChartData struct {
	RequestsByStatus    ChartSeries `json:"requests_by_status"`
	RatingsDistribution ChartSeries `json:"ratings_distribution"`
}

type SearchResult struct {
	Customers     []domain.Customer     `json:"customers,omitempty"`
	Professionals []domain.Professional `json:"professionals,omitempty"`
}
