// Package client is the Go SDK for the HomeHub API. It pairs with
// pkg/listsync for optimistic list views.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// apiError is the envelope error payload. Non-JSON bodies are handled too,
// some proxies answer with plain text.
type apiError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type Client struct {
	http *resty.Client

	// stream has no client timeout, an SSE subscription stays open until
	// its context is cancelled.
	stream *resty.Client
}

func requestID(_ *resty.Client, req *resty.Request) error {
	req.SetHeader("X-Request-Id", uuid.NewString())
	return nil
}

func New(baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15*time.Second).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(requestID)

	streamClient := resty.New().
		SetBaseURL(baseURL).
		OnBeforeRequest(requestID)

	return &Client{http: httpClient, stream: streamClient}
}

// SetToken installs the bearer token used for authenticated calls.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
	c.stream.SetAuthToken(token)
}

// SetLocale sets the Accept-Language header sent with every request.
func (c *Client) SetLocale(locale string) {
	c.http.SetHeader("Accept-Language", locale)
	c.stream.SetHeader("Accept-Language", locale)
}

func decodeError(resp *resty.Response) error {
	var payload apiError
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Error != "" {
		return errors.Errorf("api: %s (status %d)", payload.Error, resp.StatusCode())
	}
	body := string(resp.Body())
	if body == "" {
		body = resp.Status()
	}
	return errors.Errorf("api: %s (status %d)", body, resp.StatusCode())
}

// envelope matches the server's success wrapper.
type envelope[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

func get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out envelope[T]
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get(path)
	if err != nil {
		return out.Data, errors.Wrap(err, "request failed")
	}
	if resp.IsError() {
		return out.Data, decodeError(resp)
	}
	return out.Data, nil
}

func post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var out envelope[T]
	resp, err := c.http.R().SetContext(ctx).SetBody(body).SetResult(&out).Post(path)
	if err != nil {
		return out.Data, errors.Wrap(err, "request failed")
	}
	if resp.IsError() {
		return out.Data, decodeError(resp)
	}
	return out.Data, nil
}

func put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var out envelope[T]
	resp, err := c.http.R().SetContext(ctx).SetBody(body).SetResult(&out).Put(path)
	if err != nil {
		return out.Data, errors.Wrap(err, "request failed")
	}
	if resp.IsError() {
		return out.Data, decodeError(resp)
	}
	return out.Data, nil
}

func (c *Client) delete(ctx context.Context, path string) error {
	resp, err := c.http.R().SetContext(ctx).Delete(path)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	if resp.IsError() {
		return decodeError(resp)
	}
	return nil
}

// Login authenticates and installs the returned session token.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	session, err := post[*Session](ctx, c, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	c.SetToken(session.Token)
	return session, nil
}

// Shopping list operations. The returned ShoppingOps satisfies the remote
// side of a listsync session.

func (c *Client) ListShopping(ctx context.Context) ([]ShoppingItem, error) {
	return get[[]ShoppingItem](ctx, c, "/api/v1/shopping/")
}

func (c *Client) AddShoppingItem(ctx context.Context, item ShoppingItem) error {
	body := map[string]any{
		"name":     item.Name,
		"category": item.Category,
		"quantity": item.Quantity,
	}
	if item.Unit != "" {
		body["unit"] = item.Unit
	}
	if item.AssigneeID != "" {
		body["assigneeId"] = item.AssigneeID
	}
	_, err := post[ShoppingItem](ctx, c, "/api/v1/shopping/", body)
	return err
}

func (c *Client) SetShoppingCompleted(ctx context.Context, itemID string, completed bool) error {
	_, err := put[ShoppingItem](ctx, c, fmt.Sprintf("/api/v1/shopping/%s", itemID), map[string]any{
		"completed": completed,
	})
	return err
}

func (c *Client) DeleteShoppingItem(ctx context.Context, itemID string) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/shopping/%s", itemID))
}

// Task operations.

func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	return get[[]Task](ctx, c, "/api/v1/tasks/")
}

func (c *Client) Agenda(ctx context.Context, date string) ([]Task, error) {
	return get[[]Task](ctx, c, fmt.Sprintf("/api/v1/tasks/agenda?date=%s", date))
}

func (c *Client) CreateTask(ctx context.Context, req map[string]any) (*Task, error) {
	return post[*Task](ctx, c, "/api/v1/tasks/", req)
}

func (c *Client) SetTaskCompleted(ctx context.Context, taskID string, completed bool) error {
	_, err := put[Task](ctx, c, fmt.Sprintf("/api/v1/tasks/%s", taskID), map[string]any{
		"completed": completed,
	})
	return err
}

func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/tasks/%s", taskID))
}

// Invite and billing endpoints live on the unversioned /api prefix.

func (c *Client) Invite(ctx context.Context, name, email, role string) (*InviteResult, error) {
	return post[*InviteResult](ctx, c, "/api/invite", map[string]string{
		"name": name, "email": email, "role": role,
	})
}

func (c *Client) InviteInfo(ctx context.Context, householdID, userID string) (*InviteInfo, error) {
	return get[*InviteInfo](ctx, c, fmt.Sprintf("/api/get-invite-info?hid=%s&uid=%s", householdID, userID))
}

// CheckoutURL starts a subscription checkout and returns the redirect URL.
func (c *Client) CheckoutURL(ctx context.Context) (string, error) {
	return c.sessionURL(ctx, "/api/create-checkout-session")
}

// PortalURL opens the subscription management portal.
func (c *Client) PortalURL(ctx context.Context) (string, error) {
	return c.sessionURL(ctx, "/api/create-portal-session")
}

func (c *Client) sessionURL(ctx context.Context, path string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Post(path)
	if err != nil {
		return "", errors.Wrap(err, "request failed")
	}
	if resp.IsError() {
		return "", decodeError(resp)
	}
	return out.URL, nil
}
