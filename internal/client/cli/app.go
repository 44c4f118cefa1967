package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/client/client"
	"github.com/dmitrijs2005/taskkeeper/internal/client/config"
)

// TaskAPI is the server surface the commands need. *client.APIClient
// implements it.
type TaskAPI interface {
	SignUp(ctx context.Context, email, name string, password []byte) (*client.AuthResponse, error)
	SignIn(ctx context.Context, email string, password []byte) (*client.AuthResponse, error)
	ListTasks(ctx context.Context, s *client.Session) ([]client.Task, error)
	CreateTask(ctx context.Context, s *client.Session, t client.NewTask) (*client.Task, error)
	SetCompleted(ctx context.Context, s *client.Session, id int64, completed bool) (*client.Task, error)
	DeleteTask(ctx context.Context, s *client.Session, id int64) error
}

type App struct {
	config  *config.Config
	api     TaskAPI
	session *client.Session
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    client.NewAPIClient(c.ServerURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run executes args as a single command, or starts the REPL when args is empty.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.Root(ctx)
		return nil
	}
	return a.Exec(ctx, args[0], args[1:])
}

// currentSession returns the in-memory session, loading it from the token
// file on first use.
func (a *App) currentSession() (*client.Session, error) {
	if a.session != nil {
		return a.session, nil
	}
	s, err := client.LoadSession(a.config.TokenFile)
	if err != nil {
		return nil, err
	}
	a.session = s
	return s, nil
}

func (a *App) setSession(res *client.AuthResponse) error {
	s := &client.Session{Token: res.Token, UserID: res.User.ID, Email: res.User.Email}
	if err := client.SaveSession(a.config.TokenFile, s); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	a.session = s
	return nil
}

// explain turns common failures into a hint for the user.
func (a *App) explain(err error) error {
	switch {
	case errors.Is(err, client.ErrNoSession):
		fmt.Fprintln(a.out, "You are not logged in. Use 'login' or 'register'.")
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintln(a.out, "Your session has expired. Please 'login' again.")
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Server is unavailable:", a.config.ServerURL)
	}
	return err
}
