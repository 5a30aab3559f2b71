package usecase

import "lanche/internal/domain/entity"

// ToastUsecase manages transient, auto-dismissing user-facing messages,
// decoupled from the cart.
type ToastUsecase interface {
	// Show appends a toast with a fresh process-unique ID and schedules
	// its removal after the configured delay. An empty kind defaults to
	// success.
	Show(message string, kind entity.ToastKind) entity.Toast

	// Dismiss removes the toast with that ID early and cancels its expiry
	// timer; no-op when the ID is already gone.
	Dismiss(id int64)

	// Toasts returns a snapshot copy of the live toast list.
	Toasts() []entity.Toast
}
