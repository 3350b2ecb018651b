package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ucasl/reservas-web/internal/core/domain"
	"github.com/ucasl/reservas-web/internal/core/ports"
)

// Observer is told about every backend call once it completes. status is 0
// when no response was received.
type Observer func(op string, status int, elapsed time.Duration)

type Config struct {
	BaseURL  string
	Timeout  time.Duration
	Observer Observer
}

// Client talks to the reservation REST API.
type Client struct {
	resty    *resty.Client
	observer Observer
}

var _ ports.Backend = (*Client)(nil)

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	r := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(attachToken)

	return &Client{resty: r, observer: cfg.Observer}
}

// attachToken sends the session's backend token as a bearer credential.
func attachToken(_ *resty.Client, req *resty.Request) error {
	if tok := ports.AccessToken(req.Context()); tok != "" {
		req.SetAuthToken(tok)
	}
	return nil
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*ports.LoginResult, error) {
	var out ports.LoginResult
	err := c.do(ctx, "POST /auth/login", http.MethodPost, "/auth/login",
		loginRequest{Email: creds.Identifier, Senha: creds.Secret}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListSpaces(ctx context.Context) ([]domain.AcademicSpace, error) {
	var out []domain.AcademicSpace
	if err := c.do(ctx, "GET /espacos", http.MethodGet, "/espacos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListInstructors(ctx context.Context) ([]domain.Instructor, error) {
	var out []domain.Instructor
	if err := c.do(ctx, "GET /professores", http.MethodGet, "/professores", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	var out domain.Reservation
	path := reservationPath(id)
	if err := c.do(ctx, "GET "+path, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateReservation(ctx context.Context, r domain.Reservation) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := c.do(ctx, "POST /reservas", http.MethodPost, "/reservas", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateReservation(ctx context.Context, id int64, r domain.Reservation) (*domain.Reservation, error) {
	var out domain.Reservation
	path := reservationPath(id)
	if err := c.do(ctx, "PUT "+path, http.MethodPut, path, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func reservationPath(id int64) string {
	return "/reservas/" + strconv.FormatInt(id, 10)
}

// do performs one request. Any transport error, non-2xx status or
// undecodable body comes back as *domain.BackendError.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	req := c.resty.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	status := 0
	if resp != nil && resp.RawResponse != nil {
		status = resp.StatusCode()
	}
	if c.observer != nil {
		c.observer(op, status, time.Since(start))
	}

	if err != nil {
		return &domain.BackendError{Op: op, Status: status, Err: err}
	}
	if resp.IsError() || status < 200 || status >= 300 {
		var eb errorBody
		_ = json.Unmarshal(resp.Body(), &eb)
		return &domain.BackendError{Op: op, Status: status, Message: eb.Message, Body: resp.Body()}
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &domain.BackendError{Op: op, Status: status, Body: resp.Body(), Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
