package review

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Remarks string `json:"remarks" binding:"max=500"`
}
