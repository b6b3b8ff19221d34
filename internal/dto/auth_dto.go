package dto

// RegisterRequest is the self-service registration payload.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required,max=150"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Password2   string `json:"password2" binding:"required"`
	FirstName   string `json:"first_name" binding:"omitempty,max=150"`
	LastName    string `json:"last_name" binding:"omitempty,max=150"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=32"`
}

// UpdateProfileRequest edits the caller's own profile. Username and password
// are immutable here; nil fields are left untouched.
type UpdateProfileRequest struct {
	Email       *string `json:"email" binding:"omitempty,email"`
	FirstName   *string `json:"first_name" binding:"omitempty,max=150"`
	LastName    *string `json:"last_name" binding:"omitempty,max=150"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=32"`
}

// LoginRequest carries username/password credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the bearer token and basic identity.
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresIn int           `json:"expires_in"` // seconds
	User      *UserResponse `json:"user"`
}

// ProfileResponse is the authenticated user's own record.
type ProfileResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	IsStaff     bool   `json:"is_staff"`
	LastLoginAt string `json:"last_login_at,omitempty"`
}
