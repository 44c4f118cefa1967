// Package tasks persists tasks. Every statement is scoped by owner: a task
// id alone never selects, changes or removes a row.
package tasks

import (
	"context"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	Get(ctx context.Context, userID string, id int64) (*models.Task, error)
	List(ctx context.Context, userID string) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	SetCompleted(ctx context.Context, userID string, id int64, completed bool, at time.Time) (*models.Task, error)
	Delete(ctx context.Context, userID string, id int64) error
}
