package repository

import (
	"context"

	"github.com/google/uuid"
)

// TaskRepository is a read-only view of the task list owned by the task CRUD service.
type TaskRepository interface {
	// FindOpenTaskTitles returns the titles of the user's tasks that are not completed.
	FindOpenTaskTitles(ctx context.Context, userID uuid.UUID) ([]string, error)
}
