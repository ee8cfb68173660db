package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"epichub/internal/models"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	httpTimeoutEnvKey  = "EPICHUB_HTTP_TIMEOUT"
)

// Client is a simple HTTP client for the epichub API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: httpTimeoutFromEnv()},
	}
}

// Ping checks whether the API server is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

func (c *Client) CreateProject(ctx context.Context, req ProjectCreateRequest) (models.Project, error) {
	var resp models.Project
	err := c.do(ctx, http.MethodPost, "/api/projects", req, &resp)
	return resp, err
}

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var resp []models.Project
	err := c.do(ctx, http.MethodGet, "/api/projects", nil, &resp)
	return resp, err
}

func (c *Client) CreateTask(ctx context.Context, projectID int, req TaskCreateRequest) (models.Task, error) {
	var resp models.Task
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/projects/%d/tasks", projectID), req, &resp)
	return resp, err
}

func (c *Client) ListTasks(ctx context.Context, projectID int) ([]models.Task, error) {
	var resp []models.Task
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/projects/%d/tasks", projectID), nil, &resp)
	return resp, err
}

func (c *Client) UpdateTask(ctx context.Context, id int, req TaskUpdateRequest) (models.Task, error) {
	var resp models.Task
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/tasks/%d", id), req, &resp)
	return resp, err
}

func (c *Client) DeleteTask(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil, nil)
}

func (c *Client) UploadFile(ctx context.Context, projectID int, req FileUploadRequest) (models.File, error) {
	var resp models.File
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/projects/%d/files", projectID), req, &resp)
	return resp, err
}

func (c *Client) ListFiles(ctx context.Context, projectID int) ([]models.File, error) {
	var resp []models.File
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/projects/%d/files", projectID), nil, &resp)
	return resp, err
}

// DownloadFile streams a file's bytes into w and returns the response
// content type.
func (c *Client) DownloadFile(ctx context.Context, id int, w io.Writer) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+fmt.Sprintf("/api/files/%d", id), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", decodeError(resp)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", err
	}
	return resp.Header.Get("Content-Type"), nil
}

func (c *Client) DeleteFile(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/files/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	var errResp ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("%s (status %d)", errResp.Error, resp.StatusCode)
	}
	return fmt.Errorf("request failed with status %d", resp.StatusCode)
}

func httpTimeoutFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv(httpTimeoutEnvKey))
	if raw == "" {
		return defaultHTTPTimeout
	}
	if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	return defaultHTTPTimeout
}
