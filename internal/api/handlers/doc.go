package handlers

// ErrorResponse is the error body returned by the raw price endpoint.
type ErrorResponse struct {
	Error string `json:"error" example:"JustTCG API key not configured"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// ReadinessResponse reports each dependency check by name.
type ReadinessResponse struct {
	Status string            `json:"status" example:"ready"`
	Checks map[string]string `json:"checks"`
}
