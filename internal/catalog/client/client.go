// Package client provides the HTTP client for the upstream catalog backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"emsinet_landing_backend/internal/catalog/service"
	"emsinet_landing_backend/platform/config"
	"emsinet_landing_backend/platform/logger"
)

const (
	servicesPath       = "/api/landing/servicios"
	paymentMethodsPath = "/api/landing/metodos-pago"
)

// TokenReader supplies an optional bearer token for authenticated calls.
// The landing endpoints are public, so an empty token is valid.
type TokenReader interface {
	Token(ctx context.Context) (string, error)
}

// Client is the HTTP client for the catalog backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenReader
	log        *logger.Logger
}

// New creates a catalog backend client. tokens may be nil.
func New(cfg config.CatalogConfig, tokens TokenReader, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: config.APITimeout},
		baseURL:    cfg.GetCatalogBaseURL(),
		tokens:     tokens,
		log:        log,
	}
}

// ServicePlans fetches the raw service-plan collection.
func (c *Client) ServicePlans(ctx context.Context) ([]service.Record, error) {
	return c.fetch(ctx, servicesPath)
}

// PaymentAccounts fetches the raw payment-account collection.
func (c *Client) PaymentAccounts(ctx context.Context) ([]service.Record, error) {
	return c.fetch(ctx, paymentMethodsPath)
}

func (c *Client) fetch(ctx context.Context, path string) ([]service.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			c.log.Warn("session token unavailable, calling unauthenticated", "error", err)
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog backend request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog backend error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}

	return decodeCollection(body)
}

// decodeCollection accepts both response shapes the backend has shipped: a
// bare JSON array, and a {success, data: [...]} envelope.
func decodeCollection(body []byte) ([]service.Record, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []service.Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("decode catalog array: %w", err)
		}
		return records, nil
	}

	var envelope struct {
		Data []service.Record `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode catalog envelope: %w", err)
	}
	return envelope.Data, nil
}
