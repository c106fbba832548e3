package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/bloglist/bloglist/models"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the blog catalog REST API. It is safe for concurrent use;
// the bearer token captured by Login is shared across requests.
type Client struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{client: cli}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register creates a new user account. It does not log the user in.
func (c *Client) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode register response: %w", err)
	}

	return user, nil
}

// Login authenticates with the given credentials and remembers the returned
// bearer token for subsequent CreateBlog and DeleteBlog calls.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var login models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &login); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	c.SetToken(login.Token)
	return login, nil
}

func (c *Client) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/blogs")
	if err != nil {
		return nil, fmt.Errorf("list blogs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var blogs []models.Blog
	if err = json.Unmarshal(resp.Body(), &blogs); err != nil {
		return nil, fmt.Errorf("decode list blogs response: %w", err)
	}

	return blogs, nil
}

func (c *Client) CreateBlog(ctx context.Context, req models.NewBlogRequest) (models.Blog, error) {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/blogs")
	if err != nil {
		return models.Blog{}, fmt.Errorf("create blog request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Blog{}, err
	}

	var created models.Blog
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Blog{}, fmt.Errorf("decode create blog response: %w", err)
	}

	return created, nil
}

func (c *Client) UpdateBlog(ctx context.Context, blogID int64, patch models.BlogPatch) (models.Blog, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Put(fmt.Sprintf("/api/blogs/%d", blogID))
	if err != nil {
		return models.Blog{}, fmt.Errorf("update blog request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Blog{}, err
	}

	var updated models.Blog
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Blog{}, fmt.Errorf("decode update blog response: %w", err)
	}

	return updated, nil
}

func (c *Client) DeleteBlog(ctx context.Context, blogID int64) error {
	resp, err := c.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/blogs/%d", blogID))
	if err != nil {
		return fmt.Errorf("delete blog request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode list users response: %w", err)
	}

	return users, nil
}

func (c *Client) GetUser(ctx context.Context, userID int64) (models.User, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/users/%d", userID))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode get user response: %w", err)
	}

	return user, nil
}

func (c *Client) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
