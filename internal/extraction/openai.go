package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sourcelane/rfq-backend/internal/platform/envutil"
	"github.com/sourcelane/rfq-backend/internal/platform/logger"
)

// OpenAIExtractor is the primary tier: a chat-completions call with a JSON
// response format. Constructed explicitly and injected into the cascade; no
// package-level client state.
type OpenAIExtractor struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	maxRetries int
}

func NewOpenAIExtractor(log *logger.Logger) (*OpenAIExtractor, error) {
	apiKey := envutil.Str("OPENAI_API_KEY", "")
	if apiKey == "" {
		return nil, fmt.Errorf("missing OPENAI_API_KEY")
	}

	timeoutSec := envutil.Int("OPENAI_TIMEOUT_SECONDS", 60)

	return &OpenAIExtractor{
		log:        log.With("strategy", "OpenAIExtractor"),
		baseURL:    envutil.Str("OPENAI_BASE_URL", "https://api.openai.com"),
		apiKey:     apiKey,
		model:      envutil.Str("OPENAI_MODEL", "gpt-4o-mini"),
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		maxRetries: envutil.Int("OPENAI_MAX_RETRIES", 2),
	}, nil
}

func (e *OpenAIExtractor) Name() string { return MethodPrimary }

type openAIHTTPError struct {
	StatusCode int
	Body       string
}

func (e *openAIHTTPError) Error() string {
	return fmt.Sprintf("openai http %d: %s", e.StatusCode, e.Body)
}

func isRetryableHTTP(code int) bool {
	if code == 408 || code == 429 {
		return true
	}
	return code >= 500 && code <= 599
}

func isRetryableErr(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var httpErr *openAIHTTPError
	if errors.As(err, &httpErr) {
		return isRetryableHTTP(httpErr.StatusCode)
	}
	return false
}

func jitterSleep(base time.Duration) time.Duration {
	// +/- 20%
	if base <= 0 {
		return 0
	}
	delta := base.Seconds() * 0.2
	low := base.Seconds() - delta
	v := low + rand.Float64()*(2*delta)
	return time.Duration(v * float64(time.Second))
}

type chatCompletionRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (e *OpenAIExtractor) Attempt(ctx context.Context, text string) (Candidate, error) {
	req := chatCompletionRequest{
		Model: e.model,
		Messages: []chatMessage{
			{Role: "system", Content: extractionSystemPrompt},
			{Role: "user", Content: extractionPrompt(text)},
		},
		Temperature: 0.1,
	}
	req.ResponseFormat.Type = "json_object"

	var resp chatCompletionResponse
	if err := e.do(ctx, "/v1/chat/completions", req, &resp); err != nil {
		return nil, &Failure{Strategy: e.Name(), Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &Failure{Strategy: e.Name(), Err: fmt.Errorf("no choices in response")}
	}

	candidate, err := decodeCandidateJSON(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, &Failure{Strategy: e.Name(), Err: err}
	}
	return candidate, nil
}

func (e *OpenAIExtractor) do(ctx context.Context, path string, body any, out any) error {
	backoff := 1 * time.Second

	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		resp, raw, err := e.doOnce(ctx, path, body)
		if err == nil {
			return json.Unmarshal(raw, out)
		}
		if !isRetryableErr(err) || attempt == e.maxRetries {
			return err
		}

		sleepFor := backoff
		if resp != nil {
			ra := strings.TrimSpace(resp.Header.Get("Retry-After"))
			if secs, parseErr := strconv.Atoi(ra); parseErr == nil && secs > 0 {
				sleepFor = time.Duration(secs) * time.Second
			}
		}
		if sleepFor > 10*time.Second {
			sleepFor = 10 * time.Second
		}
		sleepFor = jitterSleep(sleepFor)

		e.log.Warn("OpenAI request retrying",
			"attempt", attempt+1,
			"max_retries", e.maxRetries,
			"sleep", sleepFor.String(),
			"error", err.Error(),
		)

		time.Sleep(sleepFor)
		backoff *= 2
	}

	return fmt.Errorf("unreachable retry loop")
}

func (e *OpenAIExtractor) doOnce(ctx context.Context, path string, body any) (*http.Response, []byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+path, &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}

	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return resp, nil, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, raw, &openAIHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return resp, raw, nil
}
