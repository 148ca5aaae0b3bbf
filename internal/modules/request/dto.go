package request

type CreateRequest struct {
	ProfessionalID int64   `json:"professional_id" binding:"required"`
	ServiceID      int64   `json:"service_id"`
	ProposedPrice  float64 `json:"proposed_price" binding:"required,gt=0"`
	Remarks        string  `json:"remarks" binding:"max=500"`
}

type UpdatePriceRequest struct {
	ProposedPrice float64 `json:"proposed_price" binding:"required,gt=0"`
}

type HandleRequest struct {
	Action string `json:"action" binding:"required"`
}

type ReassignRequest struct {
	ProfessionalID int64 `json:"professional_id" binding:"required"`
}

// Summary mirrors the professional's dashboard stats. AverageRating keeps the
// original zero-coalescing here, unlike the public profile where no reviews
// means null.
type Summary struct {
	Accepted      int64   `json:"accepted"`
	Closed        int64   `json:"closed"`
	Rejected      int64   `json:"rejected"`
	AverageRating float64 `json:"avg_rating"`
}
