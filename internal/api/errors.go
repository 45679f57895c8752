package api

import "fmt"

// ServerError is a failure reported by the server itself, either through a
// non-200 status or a message other than MessageOK.
type ServerError struct {
	Op      string // "info", "refresh", "click", "gacha"
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Status != 0 && e.Status != 200 {
		return fmt.Sprintf("api: %s failed (status %d): %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s failed: %s", e.Op, e.Message)
}
