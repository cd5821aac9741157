package guestbook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/model"
)

// Source is the backend the cycle reads comments from.
type Source interface {
	Comments(ctx context.Context, sel Selector) ([]model.Comment, error)
	DeleteAll(ctx context.Context) error
}

// HTTPSource talks to the guestbook endpoints of the portfolio server.
type HTTPSource struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPSource creates a source for the server at baseURL.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPSource{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Comments issues GET /data?max-comments=<sel>.
func (s *HTTPSource) Comments(ctx context.Context, sel Selector) ([]model.Comment, error) {
	u := s.BaseURL + "/data?" + url.Values{"max-comments": {sel.String()}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	body, err := s.do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch comments: %w", err)
	}
	comments, err := DecodeComments(body)
	if err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	return comments, nil
}

// DeleteAll issues POST /delete-data. The response body is not used.
func (s *HTTPSource) DeleteAll(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/delete-data", nil)
	if err != nil {
		return err
	}
	if _, err := s.do(req); err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}
	return nil
}

func (s *HTTPSource) do(req *http.Request) ([]byte, error) {
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: status %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	return body, nil
}

// DecodeComments accepts either a bare JSON array of comments or an object
// wrapping one under "comments". A null or missing list decodes as empty.
func DecodeComments(body []byte) ([]model.Comment, error) {
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '[' {
		var list []model.Comment
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var wrapped struct {
		Comments []model.Comment `json:"comments"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Comments, nil
}
