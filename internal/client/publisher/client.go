// Package publisher commits page content into the site repository through the
// GitHub Contents API with an optimistic-concurrency version check.
package publisher

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/pkg/api"
)

const (
	// DefaultAPIURL адрес GitHub REST API
	DefaultAPIURL = "https://api.github.com"
	// DefaultCommitterName имя коммиттера автоматических коммитов
	DefaultCommitterName = "CMS Auto-Commit"

	apiVersion = "2022-11-28"
	mediaType  = "application/vnd.github+json"
)

// Config describes the target repository.
type Config struct {
	APIURL         string
	Owner          string
	Repo           string
	Branch         string
	CommitterName  string
	CommitterEmail string
	// Dir каталог сайта внутри репозитория, пустой - корень
	Dir string
}

// Client представляет HTTP клиент GitHub Contents API
type Client struct {
	httpClient *http.Client
	cfg        Config
}

// NewClient создает новый клиент
func NewClient(cfg Config) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.CommitterName == "" {
		cfg.CommitterName = DefaultCommitterName
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FilePath путь файла страницы в репозитории
func (c *Client) FilePath(page string) string {
	file := models.PageFile(page)
	if c.cfg.Dir == "" {
		return file
	}
	return strings.Trim(c.cfg.Dir, "/") + "/" + file
}

// FetchFile получает содержимое файла и его version token
func (c *Client) FetchFile(ctx context.Context, token, path string) (*models.RemoteFileState, error) {
	endpoint, err := c.contentsURL(path)
	if err != nil {
		return nil, err
	}
	if c.cfg.Branch != "" {
		endpoint += "?ref=" + url.QueryEscape(c.cfg.Branch)
	}

	var resp api.ContentsResponse
	if err := c.doRequest(ctx, http.MethodGet, endpoint, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}

	if resp.Type != "" && resp.Type != "file" {
		return nil, fmt.Errorf("fetch %s: not a file (%s)", path, resp.Type)
	}
	if resp.Encoding != "" && resp.Encoding != "base64" {
		return nil, fmt.Errorf("fetch %s: unsupported encoding %q", path, resp.Encoding)
	}

	content, err := decodeContent(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}

	return &models.RemoteFileState{
		Path:    path,
		Content: content,
		SHA:     resp.SHA,
	}, nil
}

// CommitRequest параметры коммита одного файла
type CommitRequest struct {
	Token       string
	Path        string
	Content     string
	SHA         string
	Message     string
	AuthorEmail string
}

// Commit записывает новое содержимое файла.
// Если SHA не совпадает с текущей версией файла, возвращает *ConflictError.
func (c *Client) Commit(ctx context.Context, req CommitRequest) (*api.UpdateFileResponse, error) {
	endpoint, err := c.contentsURL(req.Path)
	if err != nil {
		return nil, err
	}

	body := api.UpdateFileRequest{
		Message: req.Message,
		Content: base64.StdEncoding.EncodeToString([]byte(req.Content)),
		SHA:     req.SHA,
		Branch:  c.cfg.Branch,
		Committer: &api.CommitIdentity{
			Name:  c.cfg.CommitterName,
			Email: c.cfg.CommitterEmail,
		},
	}
	if c.cfg.CommitterEmail == "" {
		body.Committer = nil
	}
	if req.AuthorEmail != "" {
		body.Author = &api.CommitIdentity{
			Name:  authorName(req.AuthorEmail),
			Email: req.AuthorEmail,
		}
	}

	var resp api.UpdateFileResponse
	err = c.doRequest(ctx, http.MethodPut, endpoint, req.Token, body, &resp)
	if err != nil {
		if conflict := asConflict(err, req); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("commit %s: %w", req.Path, err)
	}

	return &resp, nil
}

func (c *Client) contentsURL(path string) (string, error) {
	if c.cfg.Owner == "" || c.cfg.Repo == "" {
		return "", fmt.Errorf("repository owner and name are required")
	}
	endpoint, err := url.JoinPath(c.cfg.APIURL, "repos", c.cfg.Owner, c.cfg.Repo, "contents", path)
	if err != nil {
		return "", fmt.Errorf("invalid api url: %w", err)
	}
	return endpoint, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, endpoint, token string, body, result interface{}) error {
	if token == "" {
		return ErrNoToken
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", mediaType)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp, respBody)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// newAPIError сопоставляет код ответа с типизированной ошибкой
func newAPIError(resp *http.Response, body []byte) *APIError {
	message := strings.TrimSpace(string(body))
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		message = errResp.Message
	}

	apiErr := &APIError{Status: resp.StatusCode, Message: message}
	switch resp.StatusCode {
	case http.StatusNotFound:
		apiErr.kind = ErrNotFound
	case http.StatusUnauthorized:
		apiErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		// GitHub отвечает 403 и при исчерпании лимита
		if resp.Header.Get("X-RateLimit-Remaining") == "0" {
			apiErr.kind = ErrRateLimited
		} else {
			apiErr.kind = ErrUnauthorized
		}
	case http.StatusTooManyRequests:
		apiErr.kind = ErrRateLimited
	}
	return apiErr
}

// asConflict распознает отказ из-за устаревшего version token:
// 409, либо 422 с упоминанием sha
func asConflict(err error, req CommitRequest) *ConflictError {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return nil
	}

	switch {
	case apiErr.Status == http.StatusConflict:
	case apiErr.Status == http.StatusUnprocessableEntity && strings.Contains(strings.ToLower(apiErr.Message), "sha"):
	default:
		return nil
	}

	return &ConflictError{
		Path:    req.Path,
		SHA:     req.SHA,
		Message: apiErr.Message,
		Status:  apiErr.Status,
	}
}

// decodeContent декодирует base64, разбитый на строки
func decodeContent(encoded string) (string, error) {
	cleaned := strings.NewReplacer("\n", "", "\r", "").Replace(encoded)
	data, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", fmt.Errorf("failed to decode content: %w", err)
	}
	return string(data), nil
}

// authorName имя автора - локальная часть email
func authorName(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
