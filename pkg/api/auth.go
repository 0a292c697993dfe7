package api

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email"`    // lookup key, case-sensitive
	Password string `json:"password"` // plaintext over the wire, verified against a salted hash
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token string `json:"token"` // signed session token, valid for 24h
	User  User   `json:"user"`  // public projection, no password field
}

// ValidateResponse represents the result of a token check
type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"userId"`
}

// ErrorResponse is the uniform error shape for every failing endpoint
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// MessageResponse wraps a plain informational message
type MessageResponse struct {
	Message string `json:"message"`
}
