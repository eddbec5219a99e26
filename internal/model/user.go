package model

// UserInfo is the identity block returned alongside a login token.
type UserInfo struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Profile is the authenticated user's full profile.
type Profile struct {
	UserID        int    `json:"userID"`
	Username      string `json:"username"`
	Role          string `json:"role"`
	FirstName     string `json:"firstName"`
	MiddleName    string `json:"middleName,omitempty"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Username      string `json:"username" validate:"required"`
	Password      string `json:"password" validate:"required,min=6"`
	FirstName     string `json:"firstName" validate:"required"`
	MiddleName    string `json:"middleName,omitempty"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	ContactNumber string `json:"contactNumber" validate:"required"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the bearer token and the user it belongs to.
type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

// UpdateProfileRequest carries profile fields being changed.
type UpdateProfileRequest struct {
	FirstName     *string `json:"firstName,omitempty"`
	MiddleName    *string `json:"middleName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	ContactNumber *string `json:"contactNumber,omitempty"`
}
