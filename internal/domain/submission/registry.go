package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/openhie/xds-repository/internal/platform/xds"
)

// ErrRegistryUnreachable is returned when the registry endpoint cannot be
// reached or answers outside the expected protocol.
var ErrRegistryUnreachable = errors.New("xds registry unreachable")

// RegistryClient forwards a submission's metadata set to the XDS Registry
// actor and relays its verdict. Called exactly once per submission, after
// every document has been stored.
type RegistryClient interface {
	Submit(ctx context.Context, req *xds.SubmitObjectsRequest) (*xds.RegistryResponse, error)
}

// HTTPRegistryClient submits metadata to a registry endpoint over HTTP.
type HTTPRegistryClient struct {
	client *resty.Client
	url    string
}

// NewRegistryClient builds a registry client for the configured endpoint.
// Credentials are the repository's web service account; empty credentials
// disable basic auth.
func NewRegistryClient(url, username, password string, timeout time.Duration) *HTTPRegistryClient {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	if username != "" {
		client.SetBasicAuth(username, password)
	}
	return &HTTPRegistryClient{client: client, url: url}
}

func (c *HTTPRegistryClient) Submit(ctx context.Context, req *xds.SubmitObjectsRequest) (*xds.RegistryResponse, error) {
	var verdict xds.RegistryResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&verdict).
		Post(c.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegistryUnreachable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: registry answered %s", ErrRegistryUnreachable, resp.Status())
	}
	if verdict.Status == "" {
		return nil, fmt.Errorf("%w: registry answered without a status", ErrRegistryUnreachable)
	}

	return &verdict, nil
}
