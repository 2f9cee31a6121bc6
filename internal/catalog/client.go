package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"medstore/internal/platform/config"
	"medstore/pkg/platform/sentinel"
)

// PlaceholderName stands in for records whose name column is empty or absent.
const PlaceholderName = "Unknown"

// Client reads the product catalog from the sheet API. Every call re-fetches;
// there is no retry and no cache.
type Client struct {
	http    *http.Client
	url     string
	mapping config.Sheet
}

func NewClient(httpClient *http.Client, url string, mapping config.Sheet) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{http: httpClient, url: url, mapping: mapping}
}

// Load fetches and normalizes the catalog. Source order is preserved and
// duplicate names stay separate entries; the cart deduplicates at add time.
// Transport failures, non-2xx statuses and bodies missing the configured
// array all wrap sentinel.ErrUnavailable so callers can tell a failed load
// from an empty catalog.
func (c *Client) Load(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w: %w", sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog endpoint returned %d: %w", resp.StatusCode, sentinel.ErrUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog body: %w: %w", sentinel.ErrUnavailable, err)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode catalog body: %w: %w", sentinel.ErrUnavailable, err)
	}

	raw, ok := payload[c.mapping.Array]
	if !ok {
		return nil, fmt.Errorf("catalog body missing %q array: %w", c.mapping.Array, sentinel.ErrUnavailable)
	}

	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode %q array: %w: %w", c.mapping.Array, sentinel.ErrUnavailable, err)
	}

	products := make([]Product, 0, len(records))
	for _, record := range records {
		products = append(products, c.normalize(record))
	}
	return products, nil
}

// normalize maps one raw record to a Product: name defaults to a placeholder,
// price coerces from number or numeric string and defaults to 0, stock
// likewise.
func (c *Client) normalize(record map[string]any) Product {
	name, _ := record[c.mapping.NameField].(string)
	if strings.TrimSpace(name) == "" {
		name = PlaceholderName
	}
	return Product{
		Name:  name,
		Price: toFloat(record[c.mapping.PriceField]),
		Stock: int(toFloat(record[c.mapping.StockField])),
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return 0
		}
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || f < 0 {
			return 0
		}
		return f
	default:
		return 0
	}
}
