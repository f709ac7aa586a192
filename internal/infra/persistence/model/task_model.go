package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskModel is the GORM-specific struct for the 'tasks' table.
// The table is written by the task CRUD service; this module only reads it.
type TaskModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerUserID uuid.UUID `gorm:"type:uuid;not null;index:idx_tasks_owner_open,priority:1"`
	Title       string    `gorm:"type:text;not null"`
	Category    string    `gorm:"type:varchar(100)"`
	IsCompleted bool      `gorm:"not null;default:false;index:idx_tasks_owner_open,priority:2"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
