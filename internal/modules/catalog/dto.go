package catalog

import "servicehub/internal/domain"

// ProfessionalListing is a search result row: the professional plus the
// rating aggregate the listing page shows next to the name. AvgRating is 0
// for professionals nobody has reviewed yet.
type ProfessionalListing struct {
	domain.Professional
	AvgRating float64 `json:"avg_rating"`
}

// ProfessionalProfile is the public detail view. AvgRating is null when there
// are no reviews, so clients can tell "no reviews" apart from a genuine zero.
type ProfessionalProfile struct {
	Professional *domain.Professional `json:"professional"`
	Reviews      []domain.Review      `json:"reviews"`
	AvgRating    *float64             `json:"avg_rating"`
}
