package catalog

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/urfit-tech/lodestar-contract-api/internal/client/httpx"
	"github.com/urfit-tech/lodestar-contract-api/internal/types/business"
)

// Client fetches catalog snapshots from the catalog collaborator. Reads are
// idempotent so transient failures are retried with backoff.
type Client struct {
	http *httpx.Client
}

// NewClient creates a catalog client against the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		http: httpx.NewClient(
			httpx.WithBaseURL(baseURL),
			httpx.WithTimeout(10*time.Second),
			httpx.WithRetryConfig(httpx.DefaultRetryConfig()),
		),
	}
}

// GetSnapshot fetches the member profile plus the offerable plans, products,
// discounts and executor candidates in one call.
func (c *Client) GetSnapshot(ctx context.Context, memberID string) (*business.CatalogSnapshot, error) {
	resp, err := c.http.Get(ctx, "/members/"+memberID+"/catalog")
	if err != nil {
		return nil, errors.Wrap(err, "fetch catalog snapshot")
	}

	var snapshot business.CatalogSnapshot
	if err := c.http.ProcessJSONResponse(resp, &snapshot); err != nil {
		return nil, errors.Wrap(err, "decode catalog snapshot")
	}
	return &snapshot, nil
}
