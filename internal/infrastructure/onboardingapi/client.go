package onboardingapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/personalization"
	"github.com/riskibarqy/skillpath-onboarding/internal/platform/logging"
	"github.com/riskibarqy/skillpath-onboarding/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	defaultTimeout  = 15 * time.Second
	maxResponseBody = 1 << 20
)

type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client talks to the onboarding HTTP API on behalf of one signed-in user.
// The user is identified by the bearer token; userID arguments are only used
// for logging.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *logging.Logger
}

func NewClient(httpClient *http.Client, cfg Config, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/"),
		token:      strings.TrimSpace(cfg.Token),
		logger:     logger,
	}
}

func (c *Client) GetStatus(ctx context.Context, userID string) (usecase.Status, error) {
	out, err := call[statusWire](ctx, c, http.MethodGet, "/v1/onboarding/status", nil)
	if err != nil {
		return usecase.Status{}, err
	}
	return usecase.Status{
		IsCompleted:          out.IsCompleted,
		CurrentStep:          out.CurrentStep,
		CompletionPercentage: out.CompletionPercentage,
		Record:               out.Data.toRecord(),
	}, nil
}

func (c *Client) SaveProgress(ctx context.Context, userID string, patch onboarding.Patch) (usecase.Progress, error) {
	out, err := call[progressWire](ctx, c, http.MethodPost, "/v1/onboarding/progress", encodePatch(patch))
	if err != nil {
		c.logger.DebugContext(ctx, "save progress request failed", "user_id", userID, "error", err)
		return usecase.Progress{}, err
	}
	return usecase.Progress{
		CurrentStep:          out.CurrentStep,
		CompletionPercentage: out.CompletionPercentage,
		Record:               out.Data.toRecord(),
	}, nil
}

func (c *Client) Complete(ctx context.Context, userID string, patch onboarding.Patch) (usecase.Completion, error) {
	out, err := call[completionWire](ctx, c, http.MethodPost, "/v1/onboarding/complete", encodePatch(patch))
	if err != nil {
		return usecase.Completion{}, err
	}
	return usecase.Completion{
		Recommendations: out.Recommendations.toRecommendations(),
		LearningPath:    out.LearningPath.toLearningPath(),
		Record:          out.Data.toRecord(),
	}, nil
}

// Skip marks onboarding as skipped and re-reads the stored record, since the
// skip endpoint answers with an empty object.
func (c *Client) Skip(ctx context.Context, userID string) (onboarding.Record, error) {
	if _, err := c.send(ctx, http.MethodPost, "/v1/onboarding/skip", nil); err != nil {
		return onboarding.Record{}, err
	}
	status, err := c.GetStatus(ctx, userID)
	if err != nil {
		return onboarding.Record{}, err
	}
	return status.Record, nil
}

func (c *Client) GetLearningPath(ctx context.Context, userID string) (personalization.LearningPath, error) {
	out, err := call[learningPathWire](ctx, c, http.MethodGet, "/v1/onboarding/learning-path", nil)
	if err != nil {
		return personalization.LearningPath{}, err
	}
	return out.toLearningPath(), nil
}

func call[T any](ctx context.Context, c *Client, method, path string, payload any) (T, error) {
	var decoded envelope[T]
	raw, err := c.send(ctx, method, path, payload)
	if err != nil {
		return decoded.Data, err
	}
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return decoded.Data, fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return decoded.Data, nil
}

// send performs the request and returns the raw body of a 2xx response.
func (c *Client) send(ctx context.Context, method, path string, payload any) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	var body io.Reader
	if payload != nil {
		if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
			return nil, fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(buf.B)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", usecase.ErrDependencyUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s %s response: %v", usecase.ErrDependencyUnavailable, method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp.StatusCode, raw)
	}
	return raw, nil
}

// decodeError turns an error envelope back into the sentinel errors the
// service would have returned in-process.
func decodeError(status int, raw []byte) error {
	var decoded envelope[struct{}]
	_ = sonic.Unmarshal(raw, &decoded)

	message := http.StatusText(status)
	var items []errorItem
	if decoded.Error != nil {
		message = decoded.Error.Message
		items = decoded.Error.Errors
	}

	switch {
	case status == http.StatusBadRequest && hasReason(items, "invalidField"):
		verr := &onboarding.ValidationError{}
		for _, item := range items {
			reason := strings.TrimPrefix(item.Message, item.Location+": ")
			verr.Fields = append(verr.Fields, onboarding.FieldError{Field: item.Location, Reason: reason})
		}
		return verr
	case status == http.StatusBadRequest && hasReason(items, "onboardingNotCompleted"):
		return fmt.Errorf("%w: %s", usecase.ErrNotReady, message)
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, message)
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", usecase.ErrUnauthorized, message)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", usecase.ErrNotFound, message)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d: %s", usecase.ErrDependencyUnavailable, status, message)
	default:
		return fmt.Errorf("onboarding api returned status %d: %s", status, message)
	}
}

func hasReason(items []errorItem, reason string) bool {
	for _, item := range items {
		if item.Reason == reason {
			return true
		}
	}
	return false
}
