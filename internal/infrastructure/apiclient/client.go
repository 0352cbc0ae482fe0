// Package apiclient is a client for the FirstSource REST API.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
)

// DefaultTimeout bounds a single request when the caller supplies no client.
const DefaultTimeout = 10 * time.Second

// Error is a non-2xx response from the API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Is maps 404 responses onto entities.ErrNotFound.
func (e *Error) Is(target error) bool {
	return target == entities.ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Client talks to a running API server.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New creates a Client for the server at baseURL. A nil httpClient gets a
// client with DefaultTimeout.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url must be http or https: %q", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:    u,
		httpClient: httpClient,
	}, nil
}

// ListArticles fetches a listing. Empty category or sort are omitted.
func (c *Client) ListArticles(ctx context.Context, category, sort string) ([]entities.Article, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if sort != "" {
		q.Set("sort", sort)
	}

	var articles []entities.Article
	if err := c.do(ctx, http.MethodGet, "/api/articles", q, nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// RegisterView records one view and returns the updated article.
func (c *Client) RegisterView(ctx context.Context, id string) (*entities.Article, error) {
	var article entities.Article
	path := "/api/articles/" + url.PathEscape(id) + "/view"
	if err := c.do(ctx, http.MethodPut, path, nil, nil, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// ListMyths fetches all myths.
func (c *Client) ListMyths(ctx context.Context) ([]entities.Myth, error) {
	var myths []entities.Myth
	if err := c.do(ctx, http.MethodGet, "/api/myths", nil, nil, &myths); err != nil {
		return nil, err
	}
	return myths, nil
}

// ChatReply is the server's answer to a chat message.
type ChatReply struct {
	Topic string            `json:"topic"`
	Reply entities.ChatTurn `json:"reply"`
}

// Chat sends one message to the assistant.
func (c *Client) Chat(ctx context.Context, message string) (*ChatReply, error) {
	var reply ChatReply
	body := map[string]string{"message": message}
	if err := c.do(ctx, http.MethodPost, "/api/chat", nil, body, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL.JoinPath(path)
	u.RawQuery = query.Encode()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = strings.NewReader(string(data))
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var body struct {
		Error string `json:"error"`
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && json.Unmarshal(data, &body) == nil && body.Error != "" {
		apiErr.Message = body.Error
	}
	return apiErr
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	return errors.Is(err, entities.ErrNotFound)
}
