package api

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

	log "github.com/sirupsen/logrus"

	"taskmaster/internal/model"
)

// Client talks to the remote task service. It is a thin RPC surface: no
// retries, no caching, no state beyond the credential source wired into its
// transport. All state handling lives in the store.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &bearerTransport{tokens: tokens},
		},
	}
}

// ListTasks retrieves every task visible to the current user, in server
// order.
func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask retrieves a single task by id.
func (c *Client) GetTask(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask submits a draft and returns the created task with its
// server-assigned id, owner and timestamps.
func (c *Client) CreateTask(ctx context.Context, draft model.TaskDraft) (*model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", draft, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask submits a partial body and returns the full authoritative
// representation, including the server-recomputed updatedAt.
func (c *Client) UpdateTask(ctx context.Context, id string, update model.TaskUpdate) (*model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), update, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task. The service acknowledges with no body.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil)
}

// AddComment posts a comment to a task's comment sub-resource and returns
// the created comment with its resolved author.
func (c *Client) AddComment(ctx context.Context, taskID, content string) (*model.Comment, error) {
	body := map[string]string{"content": content}
	var comment model.Comment
	if err := c.do(ctx, http.MethodPost, "/tasks/"+url.PathEscape(taskID)+"/comments", body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// Credentials is what a successful login or registration yields.
type Credentials struct {
	Token string
	User  model.User
}

type authResponse struct {
	Token string `json:"token"`
	model.User
}

// Login exchanges email and password for a bearer credential.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &Credentials{Token: resp.Token, User: resp.User}, nil
}

// Register creates an account and logs it in.
func (c *Client) Register(ctx context.Context, username, email, password string) (*Credentials, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &resp); err != nil {
		return nil, err
	}
	return &Credentials{Token: resp.Token, User: resp.User}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.WithFields(log.Fields{"method": method, "path": path}).Debug("remote call")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeFailure(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeFailure turns a non-success response into an *Error carrying the
// service's message when it sent one. The service uses both {"message": …}
// and {"error": …} shapes depending on the endpoint.
func decodeFailure(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	var payload struct {
		Message string `json:"message"`
		Reason  string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&payload); err == nil {
		if payload.Message != "" {
			apiErr.Message = payload.Message
		} else if payload.Reason != "" {
			apiErr.Message = payload.Reason
		}
	}

	log.WithFields(log.Fields{"status": resp.StatusCode, "message": apiErr.Message}).
		Warn("remote call failed")
	return apiErr
}
