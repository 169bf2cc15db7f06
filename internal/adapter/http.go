// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/paginate"
	"github.com/MKhiriev/go-task-tracker/models"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// Config configures [NewHTTPServerAdapter].
type Config struct {
	// BaseURL is the server address. A missing scheme defaults to http.
	BaseURL string

	// Timeout bounds every request. Non-positive values use 15s.
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu       sync.RWMutex
	username string
	password string

	logger *logger.Logger
}

type versionBody struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates cfg.BaseURL and configures the underlying resty
// client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("func", "httpServerAdapter.OnAfterResponse").
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("elapsed", resp.Time()).
			Msg("request completed")
		return nil
	})

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetCredentials(username, password string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.username, h.password = username, password
}

// request returns a request bound to ctx, carrying Basic credentials when
// they are set.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	username, password := h.username, h.password
	h.mu.RUnlock()

	if username != "" {
		req.SetBasicAuth(username, password)
	}
	return req
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var body versionBody

	resp, err := h.request(ctx).SetResult(&body).Get("/api/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return models.NewAppBuildInfo(body.Version, body.BuildDate, body.BuildCommit), nil
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, user models.UserCreate) (models.User, error) {
	var created models.User

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&created).
		Post("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context, opts ListOptions) (paginate.Page[models.User], error) {
	var page paginate.Page[models.User]

	resp, err := h.request(ctx).
		SetQueryParamsFromValues(opts.values()).
		SetResult(&page).
		Get("/api/users")
	if err != nil {
		return page, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return paginate.Page[models.User]{}, err
	}

	return page, nil
}

func (h *httpServerAdapter) GetUser(ctx context.Context, ref models.UserRef) (models.User, error) {
	var user models.User

	resp, err := h.request(ctx).
		SetPathParam("user", ref.String()).
		SetResult(&user).
		Get("/api/users/{user}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, ref models.UserRef, update models.UserUpdate) (models.User, error) {
	var user models.User

	resp, err := h.request(ctx).
		SetPathParam("user", ref.String()).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&user).
		Post("/api/users/{user}")
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, ref models.UserRef) error {
	resp, err := h.request(ctx).
		SetPathParam("user", ref.String()).
		Delete("/api/users/{user}")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateTask(ctx context.Context, ref models.UserRef, task models.TaskCreate) (models.Task, error) {
	var created models.Task

	resp, err := h.request(ctx).
		SetPathParam("user", ref.String()).
		SetHeader("Content-Type", "application/json").
		SetBody(task).
		SetResult(&created).
		Post("/api/users/{user}/tasks")
	if err != nil {
		return models.Task{}, fmt.Errorf("create task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) ListTasks(ctx context.Context, ref models.UserRef, opts ListOptions) (paginate.Page[models.Task], error) {
	var page paginate.Page[models.Task]

	resp, err := h.request(ctx).
		SetPathParam("user", ref.String()).
		SetQueryParamsFromValues(opts.values()).
		SetResult(&page).
		Get("/api/users/{user}/tasks")
	if err != nil {
		return page, fmt.Errorf("list tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return paginate.Page[models.Task]{}, err
	}

	return page, nil
}

func (h *httpServerAdapter) GetTask(ctx context.Context, ref models.UserRef, taskID int64) (models.Task, error) {
	var task models.Task

	resp, err := h.request(ctx).
		SetPathParams(taskPath(ref, taskID)).
		SetResult(&task).
		Get("/api/users/{user}/tasks/{task_id}")
	if err != nil {
		return models.Task{}, fmt.Errorf("get task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (h *httpServerAdapter) UpdateTask(ctx context.Context, ref models.UserRef, taskID int64, update models.TaskUpdate) (models.Task, error) {
	var task models.Task

	resp, err := h.request(ctx).
		SetPathParams(taskPath(ref, taskID)).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&task).
		Post("/api/users/{user}/tasks/{task_id}")
	if err != nil {
		return models.Task{}, fmt.Errorf("update task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (h *httpServerAdapter) DeleteTask(ctx context.Context, ref models.UserRef, taskID int64) error {
	resp, err := h.request(ctx).
		SetPathParams(taskPath(ref, taskID)).
		Delete("/api/users/{user}/tasks/{task_id}")
	if err != nil {
		return fmt.Errorf("delete task request: %w", err)
	}

	return mapHTTPError(resp)
}

func taskPath(ref models.UserRef, taskID int64) map[string]string {
	return map[string]string{
		"user":    ref.String(),
		"task_id": strconv.FormatInt(taskID, 10),
	}
}

func (o ListOptions) values() url.Values {
	v := url.Values{}
	if o.Page > 0 {
		v.Set(paginate.PageParam, strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		v.Set(paginate.PerPageParam, strconv.Itoa(o.PerPage))
	}
	if o.Complete != nil {
		v.Set("complete", strconv.FormatBool(*o.Complete))
	}
	return v
}
