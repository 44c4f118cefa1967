// Package rest exposes the task API over HTTP using a chi router. Every
// route under /api/{user_id} is authenticated and restricted to the user it
// names.
package rest

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// UserService is the part of services.UserService the handlers use.
type UserService interface {
	SignUp(ctx context.Context, email, name, password string) (*services.AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*services.AuthResult, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// TaskService is the part of services.TaskService the handlers use.
type TaskService interface {
	Create(ctx context.Context, owner string, in services.TaskInput) (*models.Task, error)
	Get(ctx context.Context, owner string, id int64) (*models.Task, error)
	List(ctx context.Context, owner string) ([]*models.Task, error)
	Update(ctx context.Context, owner string, id int64, p services.TaskPatch) (*models.Task, error)
	Toggle(ctx context.Context, owner string, id int64, completed bool) (*models.Task, error)
	Delete(ctx context.Context, owner string, id int64) (bool, error)
}

type Handler struct {
	users  UserService
	tasks  TaskService
	guard  *auth.Guard
	logger logging.Logger
}

func NewHandler(l logging.Logger, g *auth.Guard, us UserService, ts TaskService) *Handler {
	return &Handler{
		users:  us,
		tasks:  ts,
		guard:  g,
		logger: l.With("module", "rest"),
	}
}

// Routes builds the router. origins is the CORS allow-list.
func (h *Handler) Routes(origins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", h.root)
	r.Get("/health", h.health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.signUp)
		r.Post("/signin", h.signIn)
		r.Get("/health", h.health)
		r.With(h.authenticate).Get("/validate-token", h.validateToken)
	})

	r.Route("/api/{user_id}/tasks", func(r chi.Router) {
		r.Use(h.authenticate, h.requireOwner)

		r.Post("/", h.createTask)
		r.Get("/", h.listTasks)
		r.Get("/{task_id}", h.getTask)
		r.Put("/{task_id}", h.updateTask)
		r.Delete("/{task_id}", h.deleteTask)
		r.Patch("/{task_id}/complete", h.toggleTask)
	})

	return r
}
