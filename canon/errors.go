package canon

import "fmt"

// HandError reports a malformed hand rejected at the package boundary.
type HandError struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (e *HandError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("hand error(reason=%s): %s", e.Reason, e.Message)
}

func handErrorf(reason, format string, args ...any) *HandError {
	return &HandError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}
