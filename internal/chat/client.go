package chat

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

	"github.com/2beens/liftstats/internal/telemetry/tracing"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
)

// example completions call
// POST https://api.openai.com/v1/chat/completions

const (
	completionsPath    = "/v1/chat/completions"
	defaultTemperature = 0.2
)

var (
	// ErrRateLimited is returned when the completions endpoint keeps
	// answering 429 until the retry budget runs out.
	ErrRateLimited = errors.New("chat completions rate limited")
	// ErrNoCompletion is returned on a 200 response with no choices in it.
	ErrNoCompletion = errors.New("chat completions response has no choices")
)

// roles used in completions messages
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionsRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type completionsResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Completer talks to an OpenAI compatible chat completions endpoint.
type Completer struct {
	baseURL    string // e.g. https://api.openai.com
	apiKey     string
	model      string
	timeout    time.Duration
	maxRetries int
	httpClient *http.Client
}

func NewCompleter(baseURL, apiKey, model string, timeout time.Duration, maxRetries int, httpClient *http.Client) *Completer {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Completer{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		timeout:    timeout,
		maxRetries: maxRetries,
		httpClient: httpClient,
	}
}

// Complete sends the conversation and returns the assistant reply.
// Rate limits (429) and server errors are retried with exponential
// backoff up to maxRetries, other client errors fail right away.
func (c *Completer) Complete(ctx context.Context, messages []Message) (reply string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "chat.completer.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(completionsRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: defaultTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completions request: %w", err)
	}

	operation := func() error {
		completion, opErr := c.doComplete(ctx, payload)
		if opErr != nil {
			return opErr
		}
		reply = completion
		return nil
	}

	backoffPolicy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.maxRetries)),
		ctx,
	)
	if err = backoff.Retry(operation, backoffPolicy); err != nil {
		return "", err
	}

	return reply, nil
}

func (c *Completer) doComplete(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(payload))
	if err != nil {
		return "", backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completions response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			log.Debugf("chat completions rate limited, retry after: %s", retryAfter)
		}
		return "", fmt.Errorf("%w: %s", ErrRateLimited, strings.TrimSpace(string(respBytes)))
	case resp.StatusCode >= http.StatusInternalServerError:
		return "", fmt.Errorf("chat completions status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBytes)))
	case resp.StatusCode != http.StatusOK:
		// other client errors will not get better on retry
		return "", backoff.Permanent(fmt.Errorf("chat completions status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBytes))))
	}

	var completions completionsResponse
	if err := json.Unmarshal(respBytes, &completions); err != nil {
		return "", backoff.Permanent(fmt.Errorf("unmarshal completions response: %w", err))
	}
	if len(completions.Choices) == 0 {
		return "", backoff.Permanent(ErrNoCompletion)
	}

	return completions.Choices[0].Message.Content, nil
}
