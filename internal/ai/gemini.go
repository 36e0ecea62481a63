// Package ai wraps the Gemini generateContent API behind the IAssistant
// interface. Every capability is advisory: a transport failure, a missing
// API key or an unparseable reply degrades to a capability-specific
// fallback, never to an error the caller has to handle.
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Vivek9939947227/Asprints-Aada/internal/config"
)

// geminiPart is one element of a generateContent request. Either Text or
// InlineData is set, not both.
type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type geminiGenerationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`

	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// geminiClient is the raw transport. It knows nothing about capabilities.
type geminiClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func newGeminiClient(cfg *config.Config) *geminiClient {
	return &geminiClient{
		apiKey:  cfg.GeminiAPIKey,
		baseURL: strings.TrimRight(cfg.GeminiBaseURL, "/"),
		model:   cfg.GeminiModel,
		client:  &http.Client{Timeout: cfg.GeminiTimeout},
	}
}

func (g *geminiClient) enabled() bool {
	return g.apiKey != ""
}

// imagePart builds an inline JPEG part from raw bytes.
func imagePart(jpegData []byte) geminiPart {
	return geminiPart{InlineData: &geminiInlineData{
		MimeType: "image/jpeg",
		Data:     base64.StdEncoding.EncodeToString(jpegData),
	}}
}

func textPart(text string) geminiPart {
	return geminiPart{Text: text}
}

// generate performs one generateContent round trip and returns the first
// candidate's concatenated text.
func (g *geminiClient) generate(ctx context.Context, parts []geminiPart, wantJSON bool) (string, error) {
	if !g.enabled() {
		return "", fmt.Errorf("gemini API key not configured")
	}

	request := geminiRequest{Contents: []geminiContent{{Parts: parts}}}
	if wantJSON {
		request.GenerationConfig = &geminiGenerationConfig{ResponseMimeType: "application/json"}
	}

	body, err := json.Marshal(request)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %d - %s", resp.StatusCode, string(respBody))
	}

	var response geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", err
	}

	if len(response.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in gemini response")
	}

	var sb strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}

// cleanJSON strips the markdown code fences models sometimes wrap JSON
// replies in, despite the JSON response mime type.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
