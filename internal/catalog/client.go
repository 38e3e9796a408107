// Package catalog is a client for the storefront's product search REST API.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3/client"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const searchPath = "/v1/products/search-product-view/"

var (
	// ErrCatalogUnavailable is returned when the catalog cannot be reached.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrCatalogStatus is returned when the catalog answers with a non-2xx status.
	ErrCatalogStatus = errors.New("unexpected catalog status")
)

// Config describes how to reach the catalog.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// Optional OAuth2 client credentials for service-to-service calls.
	ClientID     string
	ClientSecret string
	TokenURL     string
}

// Client performs product searches against the catalog backend.
type Client struct {
	http   *client.Client
	tokens oauth2.TokenSource
}

// New creates a catalog client. When client credentials are configured every
// request carries a bearer token obtained from TokenURL.
func New(ctx context.Context, cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	cc := client.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetUserAgent("storesearch/1.0")

	c := &Client{http: cc}
	if cfg.ClientID != "" && cfg.TokenURL != "" {
		creds := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}
		c.tokens = creds.TokenSource(ctx)
	}
	return c
}

// Search runs one catalog query.
func (c *Client) Search(ctx context.Context, q Query) (*Page, error) {
	params := map[string]string{}
	if q.ProductName != "" {
		params["product_name"] = q.ProductName
	}
	if q.Category != "" {
		params["category"] = q.Category
	}
	if q.Page > 0 {
		params["page"] = strconv.Itoa(q.Page)
	}
	if q.PageSize > 0 {
		params["page_size"] = strconv.Itoa(q.PageSize)
	}

	headers, err := c.authHeaders()
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Get(searchPath, client.Config{
		Ctx:    ctx,
		Param:  params,
		Header: headers,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("catalog request: %w", ctxErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	defer resp.Close()

	if code := resp.StatusCode(); code < 200 || code >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrCatalogStatus, code)
	}

	var page Page
	if err := resp.JSON(&page); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}
	if page.Results == nil {
		page.Results = []Product{}
	}
	return &page, nil
}

// Ping checks that the catalog answers a minimal query.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Search(ctx, Query{Page: 1, PageSize: 1})
	return err
}

func (c *Client) authHeaders() (map[string]string, error) {
	if c.tokens == nil {
		return nil, nil
	}
	tok, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: token: %v", ErrCatalogUnavailable, err)
	}
	return map[string]string{"Authorization": tok.Type() + " " + tok.AccessToken}, nil
}
