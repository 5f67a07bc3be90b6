package model

// Envelope wraps every roster API response body.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Ok reports whether the envelope carries a positive result with a payload.
func (e Envelope[T]) Ok() bool {
	return e.Success && e.Data != nil
}
