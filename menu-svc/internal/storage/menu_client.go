package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"restcafe/menu-svc/internal/domain"
)

const DefaultMenuURL = "https://apis2.ccbp.in/restaurant-app/restaurant-menu-list-details"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type MenuClient struct {
	URL    string
	client HTTPClient
}

func NewMenuClient(url string, client HTTPClient) *MenuClient {
	if url == "" {
		url = DefaultMenuURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &MenuClient{URL: url, client: client}
}

// FetchMenu issues a single GET and returns the first restaurant record.
// Every failure wraps domain.ErrLoadFailed.
func (c *MenuClient) FetchMenu(ctx context.Context) (*domain.Restaurant, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrLoadFailed, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrLoadFailed, resp.StatusCode)
	}

	var payload []domain.MenuPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", domain.ErrLoadFailed, err)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty restaurant list", domain.ErrLoadFailed)
	}
	if len(payload[0].TableMenuList) == 0 {
		return nil, fmt.Errorf("%w: restaurant %q has no categories", domain.ErrLoadFailed, payload[0].RestaurantName)
	}

	return payload[0].Restaurant(), nil
}
