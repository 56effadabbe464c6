// utils/utils.go

package utils

import (
	"github.com/google/uuid"
)

// NewConnectionID returns a fresh id for a websocket connection.
func NewConnectionID() string {
	return uuid.New().String()
}
