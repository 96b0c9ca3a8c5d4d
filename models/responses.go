package models

// MeResponse is the body of GET /api/auth/me.
type MeResponse struct {
	Username string `json:"username"`
}

// LoginResponse is the body of POST /api/auth/login. AccessToken is present
// in the bearer-token deployment; in the cookie deployment the session is
// established via Set-Cookie and the body carries no token.
type LoginResponse struct {
	AccessToken string `json:"accessToken,omitempty"`
}

// ErrorResponse is the error body shape shared by all endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
}
