package postgres

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// IDLength is the width of the varchar primary keys.
const IDLength = 32

// NewID returns a random 32 character identifier.
func NewID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// IsID validates an identifier produced by NewID.
func IsID(id string) error {
	if len(id) != IDLength {
		return fmt.Errorf("%w: want %d characters, got %d", ErrInvalidID, IDLength, len(id))
	}
	if _, err := hex.DecodeString(id); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return nil
}
