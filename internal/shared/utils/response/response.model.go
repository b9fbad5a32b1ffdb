package response

// StandardApiResponse is the envelope every endpoint answers with
type StandardApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"` // Human-readable message
	Data    interface{} `json:"data,omitempty"`    // Payload for success
}
