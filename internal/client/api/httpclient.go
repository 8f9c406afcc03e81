package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/models"
)

// TokenSource reports the live bearer credential, or "" when the session is
// anonymous. The session manager provides it; this client never stores the
// token itself.
type TokenSource func() string

// HTTPClient is the concrete Client talking JSON over HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewHTTPClient constructs a client for the API at baseURL. tokens may be nil
// for a client that only ever issues anonymous requests.
func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration) *HTTPClient {
	if tokens == nil {
		tokens = func() string { return "" }
	}
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// do issues one request. The Authorization header is attached only when a
// credential exists; an anonymous session sends no header at all rather than
// an empty bearer value. 401/403 are not interpreted here: callers decide
// what a rejected credential means for their view.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.tokens(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

// serverMessage extracts an optional {"message": "..."} from an error body.
func serverMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	return payload.Message
}

func decodeInto(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// checkStatus drains and closes the body on non-2xx and maps the outcome to a
// package error. On success the body is left open for the caller.
func (c *HTTPClient) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return &StatusError{StatusCode: resp.StatusCode, Message: serverMessage(resp.Body)}
}

func (c *HTTPClient) Login(ctx context.Context, in LoginInput) (*LoginEnvelope, error) {
	resp, err := c.do(ctx, http.MethodPost, "/login", nil, in)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, &AuthError{StatusCode: resp.StatusCode, Message: serverMessage(resp.Body)}
	}

	var env LoginEnvelope
	if err := decodeInto(resp, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *HTTPClient) Register(ctx context.Context, in RegisterInput) error {
	resp, err := c.do(ctx, http.MethodPost, "/register", nil, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &AuthError{StatusCode: resp.StatusCode, Message: serverMessage(resp.Body)}
	}
	return nil
}

func (c *HTTPClient) ListPosts(ctx context.Context, q PostQuery) (*models.PostPage, error) {
	query := url.Values{}
	query.Set("PageNumber", strconv.Itoa(q.Page))
	if q.PageSize > 0 {
		query.Set("PageSize", strconv.Itoa(q.PageSize))
	}
	if q.SearchWord != "" {
		query.Set("SearchWord", q.SearchWord)
	}
	if q.Tag != "" {
		query.Set("Tag", q.Tag)
	}

	resp, err := c.do(ctx, http.MethodGet, "/api/BlogPosts", query, nil)
	if err != nil {
		return nil, err
	}
	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var page wirePostPage
	if err := decodeInto(resp, &page); err != nil {
		return nil, err
	}
	return page.normalize(), nil
}

func (c *HTTPClient) GetPost(ctx context.Context, id string) (*models.Post, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/BlogPosts/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var w wirePost
	if err := decodeInto(resp, &w); err != nil {
		return nil, err
	}
	post := w.normalize()
	return &post, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, in PostInput) (*models.Post, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/BlogPosts", nil, in)
	if err != nil {
		return nil, err
	}
	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var w wirePost
	if err := decodeInto(resp, &w); err != nil {
		return nil, err
	}
	post := w.normalize()
	return &post, nil
}

func (c *HTTPClient) UpdatePost(ctx context.Context, id string, in PostInput) error {
	resp, err := c.do(ctx, http.MethodPut, "/api/BlogPosts/"+url.PathEscape(id), nil, in)
	if err != nil {
		return err
	}
	if err := c.checkStatus(resp); err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/api/BlogPosts/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}
	if err := c.checkStatus(resp); err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *HTTPClient) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	// Comment listing is the one resource the server exposes outside /api.
	resp, err := c.do(ctx, http.MethodGet, "/blogPosts/"+url.PathEscape(postID)+"/comments", nil, nil)
	if err != nil {
		return nil, err
	}
	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var wire []wireComment
	if err := decodeInto(resp, &wire); err != nil {
		return nil, err
	}
	comments := make([]models.Comment, 0, len(wire))
	for _, w := range wire {
		comments = append(comments, w.normalize())
	}
	return comments, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, in CommentInput) (*models.Comment, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/Comments", nil, in)
	if err != nil {
		return nil, err
	}
	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var w wireComment
	if err := decodeInto(resp, &w); err != nil {
		return nil, err
	}
	comment := w.normalize()
	return &comment, nil
}

var _ Client = (*HTTPClient)(nil)
