package postgres

import (
	"context"

	"nexttoyou/internal/domain/repository"
	"nexttoyou/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// taskRepository implements the repository.TaskRepository interface.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{
		db: db,
	}
}

// FindOpenTaskTitles retrieves the titles of the user's uncompleted tasks, oldest first.
func (repo *taskRepository) FindOpenTaskTitles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var titles []string

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.TaskModel{}).
		Where("owner_user_id = ? AND is_completed = ?", userID, false).
		Order("created_at ASC").
		Pluck("title", &titles).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find open task titles")
	}

	return titles, nil
}
