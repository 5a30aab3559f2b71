package entity

// ToastKind classifies a toast notification.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

// ValidToastKind reports whether kind is one of the supported values.
func ValidToastKind(kind ToastKind) bool {
	switch kind {
	case ToastSuccess, ToastError, ToastInfo:
		return true
	}

	return false
}

// Toast is an ephemeral user-facing notification. It is removed
// automatically after a fixed delay, or earlier when dismissed by hand.
type Toast struct {
	ID      int64     `json:"id"`      // Process-unique, monotonically increasing.
	Message string    `json:"message"` // Text shown to the user.
	Kind    ToastKind `json:"kind"`    // success, error or info.
}
