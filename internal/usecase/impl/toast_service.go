package impl

import (
	"log/slog"
	"sync"
	"time"

	"lanche/config"
	"lanche/internal/domain/entity"
	"lanche/internal/usecase"
)

type toastService struct {
	mu     sync.Mutex
	toasts []entity.Toast
	timers map[int64]*time.Timer
	nextID int64
	ttl    time.Duration
	logger *slog.Logger
}

// NewToastService creates the shared toast list. Each toast is removed
// automatically after the configured TTL; the expiry timer is tracked per
// ID so an early dismissal cancels it instead of leaving it dangling.
func NewToastService(cfg *config.Config, logger *slog.Logger) usecase.ToastUsecase {
	return &toastService{
		timers: make(map[int64]*time.Timer),
		ttl:    cfg.Toast.TTL,
		logger: logger,
	}
}

// Show appends a toast with a fresh process-unique ID and schedules its
// removal after the TTL.
func (s *toastService) Show(message string, kind entity.ToastKind) entity.Toast {
	if kind == "" {
		kind = entity.ToastSuccess
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	toast := entity.Toast{
		ID:      s.nextID,
		Message: message,
		Kind:    kind,
	}
	s.nextID++
	s.toasts = append(s.toasts, toast)

	// Expiry looks the toast up by ID, not by position, so it stays safe
	// when the list has been reordered or the toast is already gone.
	s.timers[toast.ID] = time.AfterFunc(s.ttl, func() {
		s.expire(toast.ID)
	})

	s.logger.Debug("toast shown",
		slog.Int64("id", toast.ID),
		slog.String("kind", string(kind)),
	)

	return toast
}

// Dismiss removes the toast with that ID early and cancels its expiry
// timer; no-op when the ID is already gone.
func (s *toastService) Dismiss(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(id)
}

// Toasts returns a snapshot copy of the live toast list.
func (s *toastService) Toasts() []entity.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	toasts := make([]entity.Toast, len(s.toasts))
	copy(toasts, s.toasts)

	return toasts
}

func (s *toastService) expire(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(id)
}

func (s *toastService) removeLocked(id int64) {
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}

	for i, toast := range s.toasts {
		if toast.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)

			return
		}
	}
}
