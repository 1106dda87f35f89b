package dto

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,containsuppercase,containslowercase,containsdigit,containssymbol"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}
