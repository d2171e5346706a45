// Package client talks to the task service and unwraps its response
// envelope, surfacing non-200 codes as errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/veldt/taskdeck/pkg/task"
)

// APIError is a non-200 envelope code with its message.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Code, e.Message)
}

type Client struct {
	base string
	http *http.Client
}

func New(base string) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// payload is the create/update body: deadline as epoch ms, no id.
type payload struct {
	Text     string `json:"text"`
	Deadline int64  `json:"deadline"`
	Done     bool   `json:"done"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if env.Code != http.StatusOK {
		return &APIError{Code: env.Code, Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// List fetches all tasks.
func (c *Client) List(ctx context.Context) ([]task.ToDo, error) {
	var ts []task.ToDo
	if err := c.do(ctx, http.MethodGet, "/api/todos", nil, &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

// Create submits a new task; the service assigns its id.
func (c *Client) Create(ctx context.Context, t task.ToDo) (task.ToDo, error) {
	body := payload{Text: t.Text, Deadline: t.Deadline.UnixMilli(), Done: t.Done}
	var out task.ToDo
	if err := c.do(ctx, http.MethodPost, "/api/todos", body, &out); err != nil {
		return task.ToDo{}, err
	}
	return out, nil
}

// Update replaces the task with the given id in full.
func (c *Client) Update(ctx context.Context, t task.ToDo) (task.ToDo, error) {
	body := payload{Text: t.Text, Deadline: t.Deadline.UnixMilli(), Done: t.Done}
	var out task.ToDo
	path := fmt.Sprintf("/api/todos/%d", t.ID)
	if err := c.do(ctx, http.MethodPut, path, body, &out); err != nil {
		return task.ToDo{}, err
	}
	return out, nil
}

// Delete removes the task with the given id.
func (c *Client) Delete(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/todos/%d", id), nil, nil)
}
