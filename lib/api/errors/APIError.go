package errors

// Error is the standardized API error response.
type Error struct {
	Message string `json:"message"`
	Error   int    `json:"error"`
}
