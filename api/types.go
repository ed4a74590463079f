package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	contentHandler contentHandler
	healthHandler  healthHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"post not found"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"page"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// HealthResponse is returned by the liveness endpoint
type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	Database    string `json:"database" example:"ok"`
	StartupTime string `json:"startupTime" example:"2024-01-01T12:00:00Z"`
}
