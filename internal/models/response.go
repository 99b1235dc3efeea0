package models

// ErrorResponse is the body of every error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Cat not found
	Detail string `json:"detail"`
}

// BannerResponse is returned by the root endpoint
// swagger:model BannerResponse
type BannerResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthResponse is returned by the health endpoint
// swagger:model HealthResponse
type HealthResponse struct {
	// example: healthy
	Status string `json:"status"`
}

// TestResponse is returned by the smoke test endpoint
// swagger:model TestResponse
type TestResponse struct {
	Message string `json:"message"`
	Data    string `json:"data"`
}
