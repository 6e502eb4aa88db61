/*
Package randx provides generators for unique identifiers used across the
application: UUID v4 identifiers for chat messages and sessions, and random
object keys for uploaded profile pictures.
*/
package randx

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// MessageID generates a UUID v4 string identifying a chat message.
func MessageID() string {
	return uuid.New().String()
}

// SessionID generates a UUID v4 string identifying a device session.
func SessionID() string {
	return uuid.New().String()
}

// PictureKey generates a random object key for an uploaded profile picture,
// namespaced under the owning user's ID.
func PictureKey(userID string) (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate random picture key: %w", err)
	}

	return fmt.Sprintf("pictures/%s/%s", userID, hex.EncodeToString(raw)), nil
}
