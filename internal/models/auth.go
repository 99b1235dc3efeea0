package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// required: true
	// example: Taro
	Name string `json:"name" validate:"notblank,max=100"`

	// required: true
	// example: taro@example.com
	Email string `json:"email" validate:"notblank,max=255"`

	// required: true
	// example: secret123
	Password string `json:"password" validate:"notblank,min=6"`

	// example: Japan
	Country *string `json:"country"`

	// example: photography
	Hobby *string `json:"hobby"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// example: taro@example.com
	Email string `json:"email"`

	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginResponse is the user record plus a signed access token
// swagger:model LoginResponse
type LoginResponse struct {
	UserResponse

	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// example: bearer
	TokenType string `json:"token_type"`
}
