package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutService_OpenClose(t *testing.T) {
	service := NewCheckoutService()

	assert.False(t, service.IsOpen())

	service.Open()
	assert.True(t, service.IsOpen())

	// Opening twice stays open.
	service.Open()
	assert.True(t, service.IsOpen())

	service.Close()
	assert.False(t, service.IsOpen())

	service.Close()
	assert.False(t, service.IsOpen())
}
