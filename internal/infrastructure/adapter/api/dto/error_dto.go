package dto

// ErrorResponse is the error shape the portal frontend expects.
// Every handled error serializes as {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse acknowledges a mutating admin action.
// ID carries the generated identifier for create actions.
type SuccessResponse struct {
	Success bool   `json:"success"`
	ID      uint64 `json:"id,omitempty"`
}
