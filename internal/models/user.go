package models

import (
	"time"

	"github.com/thenoetrevino/dragboard/internal/types"
)

// User is the principal that owns at most one board
type User struct {
	ID        types.UserID `json:"id"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"createdAt"`
}
