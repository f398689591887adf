package types

// MessageResponse is the standard mutation acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// ErrorEnvelope is the wire shape for every failed request.
type ErrorEnvelope struct {
	Error string `json:"error"`
}
