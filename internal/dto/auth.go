package dto

// LoginRequest defines the operator login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued JWT token.
type LoginResponse struct {
	Token string `json:"token"`
}
