package models

// ErrorResponse is the uniform error envelope returned on every failure path.
// The HTTP status code carries the error taxonomy; Detail is a human-readable
// explanation safe to show to the caller.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Status string `json:"status"`
}

// StatusResponse is a minimal success envelope for operations that return no
// entity (e.g. VIP deletion, Pro upgrade).
type StatusResponse struct {
	Status string `json:"status"`
	IsPro  *bool  `json:"is_pro,omitempty"`
}

// RootHealthResponse is the body of the unauthenticated GET / liveness check.
type RootHealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse is the body of GET /health, which additionally reports
// database reachability.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}
