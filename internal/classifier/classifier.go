// Package classifier talks to the external mood classification service.
// Callers must pass text that already went through the anonymiser.
package classifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/pkg/entity"
	"github.com/sony/gobreaker"
)

const (
	apiKeyHeader   = "X-API-Key"
	maxResponseLen = 64 << 10
	maxThemes      = 3
)

var (
	ErrEmptyText       = errors.New("nothing to classify")
	ErrInvalidResponse = errors.New("invalid classifier response")
)

type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

type classifyRequest struct {
	Text string `json:"text"`
}

type HTTPClassifier struct {
	url     string
	apiKey  string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewHTTPClassifier(cfg Config) *HTTPClassifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &HTTPClassifier{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		client: &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "mood-classifier",
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				slog.Warn("circuit breaker state changed",
					slog.String("name", name), slog.String("from", from.String()), slog.String("to", to.String()))
			},
		}),
	}
}

// Classify returns the mood classification of text. An open breaker fails fast
// with gobreaker.ErrOpenState.
func (c *HTTPClassifier) Classify(ctx context.Context, text string) (*entity.MoodClassification, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	res, err := c.breaker.Execute(func() (any, error) {
		return c.call(ctx, text)
	})
	if err != nil {
		return nil, err
	}
	return Parse(res.([]byte))
}

func (c *HTTPClassifier) call(ctx context.Context, text string) ([]byte, error) {
	body, err := sonic.ConfigDefault.Marshal(classifyRequest{Text: text})
	if err != nil {
		return nil, errors.New("marshalling classifier request error: " + err.Error())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.New("creating classifier request error: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.New("classifier request error: " + err.Error())
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseLen))
	if err != nil {
		return nil, errors.New("reading classifier response error: " + err.Error())
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier responded with status %d", resp.StatusCode)
	}
	return raw, nil
}

// Parse extracts a classification from a model response. Markdown fences and
// prose around the JSON object are tolerated; out-of-range values are not.
func Parse(raw []byte) (*entity.MoodClassification, error) {
	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, "```") {
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text = text[i+1:]
		} else {
			text = strings.TrimPrefix(text, "```")
		}
	}
	text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "```"))
	if !strings.HasPrefix(text, "{") {
		start, end := strings.IndexByte(text, '{'), strings.LastIndexByte(text, '}')
		if start < 0 || end <= start {
			return nil, fmt.Errorf("%w: no json object", ErrInvalidResponse)
		}
		text = text[start : end+1]
	}
	var cls entity.MoodClassification
	if err := sonic.ConfigDefault.UnmarshalFromString(text, &cls); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidResponse, err.Error())
	}
	cls.Label = strings.ToLower(strings.TrimSpace(cls.Label))
	switch {
	case cls.Label == "":
		return nil, fmt.Errorf("%w: empty mood label", ErrInvalidResponse)
	case cls.Intensity < 1 || cls.Intensity > 10:
		return nil, fmt.Errorf("%w: intensity %d out of range", ErrInvalidResponse, cls.Intensity)
	case cls.Confidence < 0 || cls.Confidence > 1:
		return nil, fmt.Errorf("%w: confidence %.2f out of range", ErrInvalidResponse, cls.Confidence)
	}
	if cls.Themes == nil {
		cls.Themes = []string{}
	}
	if len(cls.Themes) > maxThemes {
		cls.Themes = cls.Themes[:maxThemes]
	}
	return &cls, nil
}

// NoopClassifier is used when classification is switched off.
type NoopClassifier struct{}

func (NoopClassifier) Classify(ctx context.Context, text string) (*entity.MoodClassification, error) {
	return nil, errorvalues.ErrClassificationDisabled
}
