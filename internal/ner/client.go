package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/sirupsen/logrus"
)

const (
	requestTimeout = 20 * time.Second
	warmUpText     = "Starbucks Coffee Company"
)

// ErrNoEndpoint is returned by Load when no inference endpoint is configured.
var ErrNoEndpoint = errors.New("ner: no inference endpoint configured")

// Entity is one aggregated span returned by a token classification model.
type Entity struct {
	Group string  `json:"entity_group"`
	Score float64 `json:"score"`
	Word  string  `json:"word"`
	Start int     `json:"start"`
	End   int     `json:"end"`
}

// IsOrganization reports whether the entity was tagged as an organization.
func (e Entity) IsOrganization() bool {
	return e.Group == "ORG" || e.Group == "ORGANIZATION"
}

type Config struct {
	Endpoint string
	Model    string
	Token    string

	// Attempts and Delay control the warm-up request made by Load.
	Attempts uint
	Delay    time.Duration
}

// Client calls a hosted token classification model over HTTP.
type Client struct {
	url        string
	token      string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	url := strings.TrimRight(cfg.Endpoint, "/")
	if cfg.Model != "" {
		url += "/" + strings.TrimLeft(cfg.Model, "/")
	}

	return &Client{
		url:        url,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Load builds a Client and makes sure the model answers before handing it out.
// Hosted models often reply 503 while loading, so the warm-up is retried.
func Load(ctx context.Context, cfg Config, log *logrus.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, ErrNoEndpoint
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = 3
	}
	if cfg.Delay == 0 {
		cfg.Delay = 2 * time.Second
	}

	client := NewClient(cfg)
	err := retry.Do(
		func() error {
			_, err := client.Recognize(ctx, warmUpText)
			return err
		},
		retry.Attempts(cfg.Attempts),
		retry.Delay(cfg.Delay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.WithError(err).WithField("attempt", n+1).Warn("ner.Load.warm up failed")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("ner: warm up %s: %w", client.url, err)
	}

	return client, nil
}

// Recognize runs the model over text and returns its aggregated entities.
func (c *Client) Recognize(ctx context.Context, text string) ([]Entity, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"inputs":     text,
		"parameters": map[string]string{"aggregation_strategy": "simple"},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ner: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("ner: status %d - %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var entities []Entity
	if err := json.NewDecoder(resp.Body).Decode(&entities); err != nil {
		return nil, fmt.Errorf("ner: decode response: %w", err)
	}

	return entities, nil
}
