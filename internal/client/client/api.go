package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	UserID      string    `json:"user_id"`
	DueDate     *string   `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask is the body of a create request. Optional fields are omitted when nil.
type NewTask struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

// APIClient talks to one TaskKeeper server.
type APIClient struct {
	baseURL string
	http    *http.Client
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *APIClient) SignUp(ctx context.Context, email, name string, password []byte) (*AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"email": email, "name": name, "password": string(password)}
	if err := c.do(ctx, http.MethodPost, "/auth/signup", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) SignIn(ctx context.Context, email string, password []byte) (*AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"email": email, "password": string(password)}
	if err := c.do(ctx, http.MethodPost, "/auth/signin", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping checks that the server answers its health endpoint.
func (c *APIClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "", nil, nil)
}

func (c *APIClient) ListTasks(ctx context.Context, s *Session) ([]Task, error) {
	var out []Task
	if err := c.do(ctx, http.MethodGet, tasksPath(s), s.Token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) CreateTask(ctx context.Context, s *Session, t NewTask) (*Task, error) {
	var out Task
	if err := c.do(ctx, http.MethodPost, tasksPath(s), s.Token, t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) SetCompleted(ctx context.Context, s *Session, id int64, completed bool) (*Task, error) {
	var out Task
	path := fmt.Sprintf("%s/%d/complete", tasksPath(s), id)
	if err := c.do(ctx, http.MethodPatch, path, s.Token, map[string]bool{"completed": completed}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) DeleteTask(ctx context.Context, s *Session, id int64) error {
	path := fmt.Sprintf("%s/%d", tasksPath(s), id)
	return c.do(ctx, http.MethodDelete, path, s.Token, nil, nil)
}

func tasksPath(s *Session) string {
	return "/api/" + url.PathEscape(s.UserID) + "/tasks"
}

func (c *APIClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Kind = "http_error"
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
