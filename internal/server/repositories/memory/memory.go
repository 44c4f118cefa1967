// Package memory holds map-backed repositories with the same owner-scoping
// and error semantics as the PostgreSQL ones. Service and HTTP tests run
// against them; they ignore the DBTX handle they are vended with.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// Store is the shared state behind the in-memory repositories.
type Store struct {
	mu     sync.Mutex
	users  map[string]models.User
	tasks  map[int64]models.Task
	nextID int64
}

func NewStore() *Store {
	return &Store{
		users: make(map[string]models.User),
		tasks: make(map[int64]models.Task),
	}
}

// Users returns a users.Repository over the store.
func (s *Store) Users() *UsersRepository { return &UsersRepository{s: s} }

// Tasks returns a tasks.Repository over the store.
func (s *Store) Tasks() *TasksRepository { return &TasksRepository{s: s} }

type UsersRepository struct{ s *Store }

func (r *UsersRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return nil, common.ErrDuplicateEmail
		}
	}
	user.CreatedAt = time.Now().UTC()
	r.s.users[user.ID] = *user
	return user, nil
}

func (r *UsersRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *UsersRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

type TasksRepository struct{ s *Store }

func (r *TasksRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextID++
	task.ID = r.s.nextID
	r.s.tasks[task.ID] = *task
	out := *task
	return &out, nil
}

func (r *TasksRepository) Get(ctx context.Context, userID string, id int64) (*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tasks[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (r *TasksRepository) List(ctx context.Context, userID string) ([]*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*models.Task, 0)
	for _, t := range r.s.tasks {
		if t.UserID == userID {
			t := t
			result = append(result, &t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *TasksRepository) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.tasks[task.ID]
	if !ok || cur.UserID != task.UserID {
		return nil, common.ErrorNotFound
	}
	cur.Title = task.Title
	cur.Description = task.Description
	cur.Completed = task.Completed
	cur.DueDate = task.DueDate
	cur.UpdatedAt = task.UpdatedAt
	r.s.tasks[cur.ID] = cur
	return &cur, nil
}

func (r *TasksRepository) SetCompleted(ctx context.Context, userID string, id int64, completed bool, at time.Time) (*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.tasks[id]
	if !ok || cur.UserID != userID {
		return nil, common.ErrorNotFound
	}
	if at.Before(cur.CreatedAt) {
		at = cur.CreatedAt
	}
	cur.Completed = completed
	cur.UpdatedAt = at
	r.s.tasks[id] = cur
	return &cur, nil
}

func (r *TasksRepository) Delete(ctx context.Context, userID string, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.tasks[id]
	if !ok || cur.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.s.tasks, id)
	return nil
}
