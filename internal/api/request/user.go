package request

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /api/users/refresh and /api/users/logout.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}
