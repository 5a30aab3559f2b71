package impl

import (
	"testing"
	"time"

	"lanche/config"
	"lanche/internal/domain/entity"
	"lanche/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestToastService(t *testing.T, ttl time.Duration) usecase.ToastUsecase {
	t.Helper()

	cfg := &config.Config{}
	cfg.Toast.TTL = ttl

	return NewToastService(cfg, testLogger())
}

func TestToastService_Show_AssignsIncreasingIDs(t *testing.T) {
	service := createTestToastService(t, time.Minute)

	first := service.Show("Item adicionado ao carrinho", entity.ToastSuccess)
	second := service.Show("Falha ao salvar", entity.ToastError)
	third := service.Show("Carrinho atualizado", entity.ToastInfo)

	assert.Less(t, first.ID, second.ID)
	assert.Less(t, second.ID, third.ID)
	assert.Len(t, service.Toasts(), 3)
}

func TestToastService_Show_DefaultsToSuccess(t *testing.T) {
	service := createTestToastService(t, time.Minute)

	toast := service.Show("pronto", "")

	assert.Equal(t, entity.ToastSuccess, toast.Kind)
}

func TestToastService_AutoExpiry(t *testing.T) {
	service := createTestToastService(t, 20*time.Millisecond)

	service.Show("some", entity.ToastInfo)
	require.Len(t, service.Toasts(), 1)

	assert.Eventually(t, func() bool {
		return len(service.Toasts()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestToastService_Dismiss_RemovesEarlyAndCancelsTimer(t *testing.T) {
	service := createTestToastService(t, time.Minute)

	toast := service.Show("dismiss me", entity.ToastInfo)
	keep := service.Show("keep me", entity.ToastInfo)

	service.Dismiss(toast.ID)

	toasts := service.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, keep.ID, toasts[0].ID)
}

func TestToastService_Dismiss_UnknownID_IsNoOp(t *testing.T) {
	service := createTestToastService(t, time.Minute)

	service.Show("still here", entity.ToastSuccess)
	service.Dismiss(12345)

	assert.Len(t, service.Toasts(), 1)
}

func TestToastService_ExpiryAfterDismiss_DoesNotRemoveWrongToast(t *testing.T) {
	service := createTestToastService(t, 30*time.Millisecond)

	first := service.Show("first", entity.ToastInfo)
	service.Show("second", entity.ToastInfo)

	// Dismiss the first by hand; when its original expiry slot fires the
	// lookup by ID must not take out the second toast instead.
	service.Dismiss(first.ID)

	time.Sleep(10 * time.Millisecond)
	toasts := service.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "second", toasts[0].Message)

	assert.Eventually(t, func() bool {
		return len(service.Toasts()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestToastService_ToastsSnapshotIsACopy(t *testing.T) {
	service := createTestToastService(t, time.Minute)

	service.Show("original", entity.ToastSuccess)

	snapshot := service.Toasts()
	snapshot[0].Message = "mutated"

	assert.Equal(t, "original", service.Toasts()[0].Message)
}
