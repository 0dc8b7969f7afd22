// Package uefa implements the match feed source backed by the UEFA
// competition API.
package uefa

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/scorebets/scorebets/internal/domain/feed"
	"github.com/scorebets/scorebets/internal/platform/logging"
	"github.com/scorebets/scorebets/internal/platform/resilience"
	"github.com/scorebets/scorebets/internal/usecase"
)

const (
	defaultBaseURL = "https://match.uefa.com"
	matchesPath    = "/v2/matches"
)

var errUEFATransient = crerr.New("uefa feed transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

var _ feed.Source = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type matchesEnvelope []matchItem

type matchItem struct {
	ID       string   `json:"id"`
	HomeTeam teamItem `json:"homeTeam"`
	AwayTeam teamItem `json:"awayTeam"`
}

type teamItem struct {
	TypeTeam string `json:"typeTeam"`
	ID       string `json:"id"`
}

// FetchMatches returns one report per requested match id, in feed
// order. Matches the feed does not know are simply absent from the
// result.
func (c *Client) FetchMatches(ctx context.Context, matchIDs []int64) ([]feed.MatchReport, error) {
	if len(matchIDs) == 0 {
		return nil, nil
	}

	fullURL := c.baseURL + matchesPath + "?offset=0&matchId=" + joinIDs(matchIDs)

	var envelope matchesEnvelope
	if err := c.doJSON(ctx, fullURL, &envelope); err != nil {
		return nil, fmt.Errorf("fetch matches: %w", err)
	}

	out := make([]feed.MatchReport, 0, len(envelope))
	for _, item := range envelope {
		matchID, err := strconv.ParseInt(strings.TrimSpace(item.ID), 10, 64)
		if err != nil || matchID <= 0 {
			c.logger.WarnContext(ctx, "uefa feed item has unusable match id", "raw_id", item.ID)
			continue
		}
		out = append(out, feed.MatchReport{
			MatchID: matchID,
			Home:    mapTeamRef(item.HomeTeam),
			Away:    mapTeamRef(item.AwayTeam),
		})
	}
	return out, nil
}

func mapTeamRef(item teamItem) feed.TeamRef {
	ref := feed.TeamRef{Kind: feed.TeamRefKind(strings.TrimSpace(item.TypeTeam))}
	if id, err := strconv.ParseInt(strings.TrimSpace(item.ID), 10, 64); err == nil {
		ref.ID = id
	}
	return ref
}

func (c *Client) doJSON(ctx context.Context, fullURL string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "uefa circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: match feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errUEFATransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode feed payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errUEFATransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errUEFATransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else {
				if isRetryableStatus(resp.StatusCode) {
					lastErr = fmt.Errorf("%w: feed status=%d body=%s", errUEFATransient, resp.StatusCode, abbreviateBody(raw))
				} else {
					return nil, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
				}
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "uefa request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func joinIDs(ids []int64) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i, id := range ids {
		if i > 0 {
			_ = buf.WriteByte(',')
		}
		_, _ = buf.WriteString(strconv.FormatInt(id, 10))
	}
	return buf.String()
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func abbreviateBody(raw []byte) string {
	value := strings.TrimSpace(string(raw))
	if len(value) <= 240 {
		return value
	}
	return value[:240] + "..."
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
