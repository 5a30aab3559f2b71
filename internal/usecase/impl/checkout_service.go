package impl

import (
	"sync"

	"lanche/internal/usecase"
)

type checkoutService struct {
	mu   sync.Mutex
	open bool
}

// NewCheckoutService creates the shared checkout overlay flag.
func NewCheckoutService() usecase.CheckoutUsecase {
	return &checkoutService{}
}

func (s *checkoutService) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.open = true
}

func (s *checkoutService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.open = false
}

func (s *checkoutService) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.open
}
