// Package quoteapi calls a running shipquote service over HTTP.
package quoteapi

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"shipquote/pkg/httpx"
	"shipquote/pkg/logx"
	"shipquote/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx answer of the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("shipquote: %d %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client whose requests and responses are logged with
// e-mail addresses and phone numbers masked.
func NewClient(baseURL string, logFieldMaxLen int) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			Transport: httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
				httpx.WithLogFieldMaxLen(logFieldMaxLen),
			),
		},
	}
}

func (c *Client) Quote(ctx context.Context, text string) (rest.QuoteResponse, error) {
	body, err := json.Marshal(rest.QuoteRequest{Text: text})
	if err != nil {
		return rest.QuoteResponse{}, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/get-quotes", bytes.NewReader(body))
	if err != nil {
		return rest.QuoteResponse{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return rest.QuoteResponse{}, fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr rest.Error
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}

		return rest.QuoteResponse{}, &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	var quote rest.QuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return rest.QuoteResponse{}, fmt.Errorf("json.Decode: %w", err)
	}

	return quote, nil
}
