package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const (
	BybitAPIBaseURL = "https://api.bybit.com"

	probeRetryInterval = 500 * time.Millisecond
)

// BybitClient handles communication with the Bybit market API
type BybitClient struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
	logger     *zap.Logger
}

// NewBybitClient creates a new Bybit API client. The timeout bounds every
// probe attempt so a single request cannot hang its caller.
func NewBybitClient(baseURL string, timeout time.Duration, maxRetries int, logger *zap.Logger) *BybitClient {
	if baseURL == "" {
		baseURL = BybitAPIBaseURL
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &BybitClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxRetries: uint64(maxRetries),
		logger:     logger,
	}
}

// instrumentsInfoResponse mirrors the subset of the Bybit instruments-info
// payload the probe needs.
type instrumentsInfoResponse struct {
	RetCode int    `json:"retCode"`
	RetMsg  string `json:"retMsg"`
	Result  struct {
		List []struct {
			Symbol string `json:"symbol"`
		} `json:"list"`
	} `json:"result"`
}

// HasOptions reports whether the exchange lists at least one option
// instrument for the given base coin. Transient HTTP failures are retried
// with backoff; any final failure is treated as "no instruments" rather
// than surfaced, per the registry's admission contract.
func (c *BybitClient) HasOptions(ctx context.Context, symbol string) bool {
	var hasInstruments bool

	operation := func() error {
		found, err := c.fetchHasInstruments(ctx, symbol)
		if err != nil {
			return err
		}
		hasInstruments = found
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(probeRetryInterval), c.maxRetries),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		c.logger.Warn("Instrument probe failed, treating as no instruments",
			zap.Error(err),
			zap.String("symbol", symbol))
		return false
	}

	return hasInstruments
}

// fetchHasInstruments performs a single instruments-info request.
func (c *BybitClient) fetchHasInstruments(ctx context.Context, symbol string) (bool, error) {
	params := url.Values{}
	params.Add("category", "option")
	params.Add("baseCoin", strings.ToUpper(symbol))
	params.Add("limit", "1")

	reqURL := fmt.Sprintf("%s/v5/market/instruments-info?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to fetch instruments info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("bybit API returned status code %d", resp.StatusCode)
	}

	var body instrumentsInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("failed to decode instruments info: %w", err)
	}

	// A non-success return code is an answer, not a transient failure.
	if body.RetCode != 0 {
		c.logger.Debug("Bybit rejected instruments query",
			zap.Int("retCode", body.RetCode),
			zap.String("retMsg", body.RetMsg),
			zap.String("symbol", symbol))
		return false, nil
	}

	return len(body.Result.List) > 0, nil
}
