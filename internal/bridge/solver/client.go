package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/bridgelab/bridgemaster/internal/bridge"
)

const (
	rateLimitDelay = 500 * time.Millisecond // 2 req/sec; solvers are slow and shared
	requestTimeout = 30 * time.Second
	maxRetries     = 3
	initialBackoff = 1 * time.Second
	maxBackoff     = 8 * time.Second
)

// Client is a rate-limited HTTP client for a double-dummy solver service.
//
// The service contract is a POST of {"pbn": "N:..."} answered with
// {"tricks": {"N": {"C": 7, ..., "NT": 9}, "E": {...}, ...}}.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	userAgent   string
}

// NewClient creates a solver client for the given service URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(rateLimitDelay), 1),
		userAgent:   "bridgemaster/1.0",
	}
}

// solveRequest is the wire form of a solve call.
type solveRequest struct {
	PBN string `json:"pbn"`
}

// solveResponse is the wire form of a solver answer, keyed by seat code and
// strain code.
type solveResponse struct {
	Tricks map[string]map[string]int `json:"tricks"`
}

// Solve sends the deal to the solver and decodes the makeable-tricks table.
func (c *Client) Solve(ctx context.Context, deal bridge.Deal) (*Table, error) {
	if err := deal.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to solve: %w", err)
	}

	body, err := json.Marshal(solveRequest{PBN: deal.PBN()})
	if err != nil {
		return nil, fmt.Errorf("marshal solve request: %w", err)
	}

	var resp solveResponse
	if err := c.doRequest(ctx, body, &resp); err != nil {
		return nil, fmt.Errorf("solve deal: %w", err)
	}

	return tableFromWire(resp)
}

// doRequest performs the POST with rate limiting and retry with exponential
// backoff on server errors.
func (c *Client) doRequest(ctx context.Context, body []byte, out interface{}) error {
	backoff := initialBackoff

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if attempt == maxRetries {
				return fmt.Errorf("request failed after %d attempts: %w", attempt+1, err)
			}
		} else {
			retry, err := c.handleResponse(resp, out)
			if !retry {
				return err
			}
			if attempt == maxRetries {
				return fmt.Errorf("solver unavailable after %d attempts: %w", attempt+1, err)
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}

	return fmt.Errorf("retry loop exhausted")
}

// handleResponse decodes a solver response. The first return value reports
// whether the request should be retried.
func (c *Client) handleResponse(resp *http.Response, out interface{}) (bool, error) {
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, fmt.Errorf("decode response: %w", err)
		}
		return false, nil
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for connection reuse
		return true, fmt.Errorf("solver returned status %d", resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("solver returned status %d: %s", resp.StatusCode, body)
	}
}

// seatCodes and strainCodes map the wire keys to domain values.
var seatCodes = map[string]bridge.Seat{
	"N": bridge.North, "E": bridge.East, "S": bridge.South, "W": bridge.West,
}

var strainCodes = map[string]bridge.Strain{
	"C": bridge.StrainClubs, "D": bridge.StrainDiamonds, "H": bridge.StrainHearts,
	"S": bridge.StrainSpades, "N": bridge.StrainNoTrump, "NT": bridge.StrainNoTrump,
}

// tableFromWire converts a wire response into a Table, rejecting unknown
// seat or strain keys and out-of-range trick counts.
func tableFromWire(resp solveResponse) (*Table, error) {
	table := &Table{Tricks: make(map[bridge.Seat]map[bridge.Strain]int, 4)}
	for seatCode, byStrain := range resp.Tricks {
		seat, ok := seatCodes[seatCode]
		if !ok {
			return nil, fmt.Errorf("solver response: unknown seat %q", seatCode)
		}
		row := make(map[bridge.Strain]int, 5)
		for strainCode, tricks := range byStrain {
			strain, ok := strainCodes[strainCode]
			if !ok {
				return nil, fmt.Errorf("solver response: unknown strain %q", strainCode)
			}
			if tricks < 0 || tricks > 13 {
				return nil, fmt.Errorf("solver response: %d tricks for %s in %s out of range",
					tricks, seat, strain)
			}
			row[strain] = tricks
		}
		table.Tricks[seat] = row
	}
	return table, nil
}
