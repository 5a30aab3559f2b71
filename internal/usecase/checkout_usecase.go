package usecase

// CheckoutUsecase holds the shared checkout overlay flag. No validation,
// no side effects beyond the flag itself.
type CheckoutUsecase interface {
	Open()
	Close()
	IsOpen() bool
}
