package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task is a shopping-list entry. Tasks are owned by the task CRUD surface and
// only read here; open task titles drive passive matching.
type Task struct {
	ID          uuid.UUID `json:"id"`
	OwnerUserID uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Category    string    `json:"category,omitempty"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}
