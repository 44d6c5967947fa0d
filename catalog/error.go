package catalog

import "fmt"

// Error is a structured response indicating a non-2xx reply from the catalog
// service. Message carries the service's own wording when it sent any.
type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("catalog: status=%d %s", e.Status, e.Message)
}
