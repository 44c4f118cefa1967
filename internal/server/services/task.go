package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskkeeper/internal/timex"
)

const (
	maxTitleLen       = 255
	maxDescriptionLen = 1000
)

// TaskInput carries the caller-supplied fields of a new task. Owner and
// timestamps are never taken from it.
type TaskInput struct {
	Title       string
	Description *string
	Completed   bool
	DueDate     *string
}

// TaskPatch is a partial update: nil fields are left untouched. An empty
// DueDate clears the due date.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	DueDate     *string
}

// TaskService owns the task lifecycle. Every method takes the owner
// explicitly and passes it down to the store as a filter.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         timex.Clock
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m, now: timex.UTCNow}
}

// WithClock replaces the time source and returns the service.
func (s *TaskService) WithClock(c timex.Clock) *TaskService {
	s.now = c
	return s
}

// Create validates in and stores a new task for owner.
func (s *TaskService) Create(ctx context.Context, owner string, in TaskInput) (*models.Task, error) {
	now := s.now().UTC()

	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}
	if err := validateDescription(in.Description); err != nil {
		return nil, err
	}
	dueDate, err := normalizeDueDate(in.DueDate, now)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		UserID:      owner,
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created *models.Task
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		created, err = s.repomanager.Tasks(tx).Create(ctx, task)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return created, nil
}

// Get returns the task id of owner. Tasks of other owners are reported as
// common.ErrorNotFound.
func (s *TaskService) Get(ctx context.Context, owner string, id int64) (*models.Task, error) {
	var task *models.Task
	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		task, err = s.repomanager.Tasks(conn).Get(ctx, owner, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// List returns all tasks of owner. No tasks is an empty slice, not an error.
func (s *TaskService) List(ctx context.Context, owner string) ([]*models.Task, error) {
	var list []*models.Task
	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		list, err = s.repomanager.Tasks(conn).List(ctx, owner)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Update applies the non-nil fields of p and refreshes UpdatedAt. Read and
// write happen in one transaction.
func (s *TaskService) Update(ctx context.Context, owner string, id int64, p TaskPatch) (*models.Task, error) {
	now := s.now().UTC()

	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return nil, err
		}
	}
	if err := validateDescription(p.Description); err != nil {
		return nil, err
	}
	var dueDate *string
	if p.DueDate != nil && *p.DueDate != "" {
		var err error
		if dueDate, err = normalizeDueDate(p.DueDate, now); err != nil {
			return nil, err
		}
	}

	var updated *models.Task
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tasks(tx)

		task, err := repo.Get(ctx, owner, id)
		if err != nil {
			return err
		}

		if p.Title != nil {
			task.Title = *p.Title
		}
		if p.Description != nil {
			task.Description = p.Description
		}
		if p.Completed != nil {
			task.Completed = *p.Completed
		}
		if p.DueDate != nil {
			task.DueDate = dueDate
		}
		task.UpdatedAt = clampUpdatedAt(now, task.CreatedAt)

		updated, err = repo.Update(ctx, task)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Toggle sets Completed to the given value. It is not a flip: repeating the
// call leaves the flag as is and only advances UpdatedAt.
func (s *TaskService) Toggle(ctx context.Context, owner string, id int64, completed bool) (*models.Task, error) {
	now := s.now().UTC()

	var task *models.Task
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		task, err = s.repomanager.Tasks(tx).SetCompleted(ctx, owner, id, completed, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the task and reports true on success.
func (s *TaskService) Delete(ctx context.Context, owner string, id int64) (bool, error) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Tasks(tx).Delete(ctx, owner, id)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if common.RuneLen(title) > maxTitleLen {
		return fmt.Errorf("%w: title must be at most %d characters", common.ErrValidation, maxTitleLen)
	}
	return nil
}

func validateDescription(d *string) error {
	if d != nil && common.RuneLen(*d) > maxDescriptionLen {
		return fmt.Errorf("%w: description must be at most %d characters", common.ErrValidation, maxDescriptionLen)
	}
	return nil
}

// normalizeDueDate parses a YYYY-MM-DD date and rejects days before now's
// UTC day. Nil or empty input yields nil.
func normalizeDueDate(d *string, now time.Time) (*string, error) {
	if d == nil || *d == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(common.DateLayout, *d, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: due_date must be a date in YYYY-MM-DD format", common.ErrValidation)
	}
	if parsed.Before(timex.StartOfDay(now)) {
		return nil, fmt.Errorf("%w: due_date cannot be in the past", common.ErrValidation)
	}
	out := parsed.Format(common.DateLayout)
	return &out, nil
}

func clampUpdatedAt(at, createdAt time.Time) time.Time {
	if at.Before(createdAt) {
		return createdAt
	}
	return at
}
