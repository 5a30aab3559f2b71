package repository

import (
	"context"

	"lanche/internal/errors"
)

// ErrSlotNotFound is returned when the named storage slot has never been
// written.
var ErrSlotNotFound = errors.New("storage slot not found")

// CartStorage is the durable key-value storage the cart persists itself
// into. Each slot holds one opaque document that is overwritten wholesale
// on every save; there is no append log and no partial update.
type CartStorage interface {
	// Load reads the document stored under key. Returns ErrSlotNotFound
	// when the slot has never been written.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the document stored under key.
	Save(ctx context.Context, key string, data []byte) error
}
