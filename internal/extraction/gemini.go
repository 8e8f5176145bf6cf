package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sourcelane/rfq-backend/internal/platform/envutil"
	"github.com/sourcelane/rfq-backend/internal/platform/logger"
)

// GeminiExtractor is the secondary tier, same contract as the primary against
// the generative-language REST API. Only consulted when the primary fails.
type GeminiExtractor struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGeminiExtractor(log *logger.Logger) (*GeminiExtractor, error) {
	apiKey := envutil.Str("GEMINI_API_KEY", "")
	if apiKey == "" {
		return nil, fmt.Errorf("missing GEMINI_API_KEY")
	}

	timeoutSec := envutil.Int("GEMINI_TIMEOUT_SECONDS", 60)

	return &GeminiExtractor{
		log:        log.With("strategy", "GeminiExtractor"),
		baseURL:    envutil.Str("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		apiKey:     apiKey,
		model:      envutil.Str("GEMINI_MODEL", "gemini-1.5-flash"),
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}, nil
}

func (e *GeminiExtractor) Name() string { return MethodSecondary }

type geminiGenerateRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (e *GeminiExtractor) Attempt(ctx context.Context, text string) (Candidate, error) {
	reqBody := geminiGenerateRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: extractionPrompt(text)}}},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
		return nil, &Failure{Strategy: e.Name(), Err: err}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", e.baseURL, e.model, e.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, &Failure{Strategy: e.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, &Failure{Strategy: e.Name(), Err: err}
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, &Failure{Strategy: e.Name(), Err: readErr}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Failure{Strategy: e.Name(), Err: fmt.Errorf("gemini http %d: %s", resp.StatusCode, string(raw))}
	}

	var decoded geminiGenerateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &Failure{Strategy: e.Name(), Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(decoded.Candidates) == 0 {
		return nil, &Failure{Strategy: e.Name(), Err: fmt.Errorf("no candidates in response")}
	}

	var sb strings.Builder
	for _, part := range decoded.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	candidate, err := decodeCandidateJSON(sb.String())
	if err != nil {
		return nil, &Failure{Strategy: e.Name(), Err: err}
	}
	return candidate, nil
}
