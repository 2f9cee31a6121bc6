package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	dErrors "medstore/pkg/domain-errors"
)

type askRequest struct {
	Message string `json:"message"`
}

type askResponse struct {
	Reply string `json:"reply"`
	Error string `json:"error"`
}

// Client proxies chat messages to an external inference endpoint speaking the
// `{"message"} -> {"reply"}` contract.
type Client struct {
	http *http.Client
	url  string
}

func NewClient(httpClient *http.Client, url string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{http: httpClient, url: url}
}

func (c *Client) Ask(ctx context.Context, message string) (string, error) {
	payload, err := json.Marshal(askRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("marshal ask request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build ask request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", dErrors.New(dErrors.CodeNetworkUnavailable, "assistant endpoint unreachable")
	}
	defer resp.Body.Close()

	var body askResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", dErrors.New(dErrors.CodeNetworkUnavailable, "assistant returned a malformed reply")
	}
	if body.Reply == "" {
		if body.Error != "" {
			return "", dErrors.New(dErrors.CodeBadRequest, body.Error)
		}
		return "", dErrors.New(dErrors.CodeNetworkUnavailable, "no reply from assistant")
	}
	return body.Reply, nil
}
