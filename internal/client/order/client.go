package order

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/urfit-tech/lodestar-contract-api/internal/client/httpx"
	"github.com/urfit-tech/lodestar-contract-api/internal/types/business"
)

// Client submits assembled contract payloads to the persistence
// collaborator. The submit call is fire-once: no client-side retries, because
// the grant ids make a deliberate operator retry safe but an automatic one
// could race a slow success.
type Client struct {
	http *httpx.Client
}

// NewClient creates a submission client against the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		http: httpx.NewClient(
			httpx.WithBaseURL(baseURL),
			httpx.WithTimeout(30*time.Second),
		),
	}
}

type submitResponse struct {
	ContractID string `json:"contract_id"`
}

// SubmitContract persists the payload in one atomic call and returns the
// stored contract identifier.
func (c *Client) SubmitContract(ctx context.Context, payload *business.ContractPayload) (string, error) {
	resp, err := c.http.Post(ctx, "/contracts", payload)
	if err != nil {
		return "", errors.Wrap(err, "submit contract")
	}

	var result submitResponse
	if err := c.http.ProcessJSONResponse(resp, &result); err != nil {
		return "", errors.Wrap(err, "decode submit response")
	}
	return result.ContractID, nil
}
