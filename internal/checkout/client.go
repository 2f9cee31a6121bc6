package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"medstore/pkg/platform/sentinel"
)

// RejectionError carries the purchase endpoint's status and body when it
// answers with a non-2xx. It wraps sentinel.ErrRejected.
type RejectionError struct {
	Status int
	Body   string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("purchase endpoint returned %d: %s", e.Status, e.Body)
}

func (e *RejectionError) Unwrap() error { return sentinel.ErrRejected }

// Client writes purchase records to the sheet API. One shot: no retry and no
// idempotency key, so a resubmission after a transient failure is a new
// purchase server-side.
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

// Submit posts the record. Any 2xx is success; non-2xx returns a
// *RejectionError; transport failures wrap sentinel.ErrUnavailable.
func (c *Client) Submit(ctx context.Context, record PurchaseRecord) error {
	payload, err := json.Marshal(purchaseEnvelope{Purchase: record})
	if err != nil {
		return fmt.Errorf("marshal purchase: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build purchase request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post purchase: %w: %w", sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &RejectionError{Status: resp.StatusCode, Body: string(body)}
}
