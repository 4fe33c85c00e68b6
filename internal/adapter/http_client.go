package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/avolkov/inkwell/internal/config"
	"github.com/avolkov/inkwell/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds a ServerAdapter talking to the server named in
// cfg. The returned adapter is safe for concurrent use.
func NewHTTPServerAdapter(cfg config.ClientConfig) ServerAdapter {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.ServerURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) SignUp(ctx context.Context, creds models.CredentialsRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/auth/signup")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return h.captureSessionToken(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.CredentialsRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return h.captureSessionToken(resp)
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) Publish(ctx context.Context, req models.ArticleRequest) (models.Article, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/admin/articles")
	if err != nil {
		return models.Article{}, fmt.Errorf("publish request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Article{}, err
	}

	var article models.Article
	if err = json.Unmarshal(resp.Body(), &article); err != nil {
		return models.Article{}, fmt.Errorf("decode publish response: %w", err)
	}
	return article, nil
}

func (h *httpServerAdapter) Edit(ctx context.Context, articleID int64, req models.ArticleRequest) (models.Article, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(fmt.Sprintf("/api/admin/articles/%d", articleID))
	if err != nil {
		return models.Article{}, fmt.Errorf("edit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Article{}, err
	}

	var article models.Article
	if err = json.Unmarshal(resp.Body(), &article); err != nil {
		return models.Article{}, fmt.Errorf("decode edit response: %w", err)
	}
	return article, nil
}

func (h *httpServerAdapter) Remove(ctx context.Context, articleID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/admin/articles/%d", articleID))
	if err != nil {
		return fmt.Errorf("remove request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListOwn(ctx context.Context) ([]models.ArticleSummary, error) {
	resp, err := h.authedRequest(ctx).Get("/api/admin/articles")
	if err != nil {
		return nil, fmt.Errorf("list own request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var summaries []models.ArticleSummary
	if err = json.Unmarshal(resp.Body(), &summaries); err != nil {
		return nil, fmt.Errorf("decode list own response: %w", err)
	}
	return summaries, nil
}

func (h *httpServerAdapter) ViewPublic(ctx context.Context, articleID int64) (models.Article, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/articles/%d", articleID))
	if err != nil {
		return models.Article{}, fmt.Errorf("view article request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Article{}, err
	}

	var article models.Article
	if err = json.Unmarshal(resp.Body(), &article); err != nil {
		return models.Article{}, fmt.Errorf("decode view article response: %w", err)
	}
	return article, nil
}

func (h *httpServerAdapter) ListByAuthor(ctx context.Context, handle string) ([]models.Article, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/authors/%s/articles", handle))
	if err != nil {
		return nil, fmt.Errorf("list by author request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var articles []models.Article
	if err = json.Unmarshal(resp.Body(), &articles); err != nil {
		return nil, fmt.Errorf("decode list by author response: %w", err)
	}
	return articles, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) captureSessionToken(resp *resty.Response) error {
	var session models.SessionResponse
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return fmt.Errorf("decode session response: %w", err)
	}
	if session.Token == "" {
		return fmt.Errorf("session response carries no token")
	}

	h.SetToken(session.Token)
	return nil
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, serverMessage(resp))
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}

	msg := serverMessage(resp)
	if msg == "" {
		msg = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, msg)
}

// serverMessage extracts the "error" field the server renders on failures.
func serverMessage(resp *resty.Response) string {
	var payload models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(resp.Body()))
}
