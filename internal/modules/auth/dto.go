package auth

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=customer professional"`
	Address  string `json:"address" binding:"max=200"`
	Pin      string `json:"pin" binding:"max=20"`

	// professional-only fields
	ServiceID   int64  `json:"service_id"`
	Description string `json:"description" binding:"max=500"`
	Experience  int    `json:"experience"`
	Document    string `json:"document" binding:"max=255"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Username    string `json:"username" validate:"omitempty,min=3,max=80"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address" validate:"max=200"`
	Pin         string `json:"pin" validate:"max=20"`
	Password    string `json:"password" validate:"omitempty,min=6"`
	Description string `json:"description" validate:"max=500"`
	Experience  *int   `json:"experience"`
}
