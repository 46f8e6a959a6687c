package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

const systemPrompt = "You are CropWise, an agronomist helping smallholder cabbage and kale growers in Kenya. Answer in two to four plain sentences."

// llmResponder asks an OpenAI-compatible chat completions endpoint and
// answers with fallback whenever the call fails.
type llmResponder struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
	fallback Responder
}

func NewLLMResponder(endpoint, key, model string, fallback Responder) Responder {
	if fallback == nil {
		fallback = NewKeywordResponder()
	}
	return &llmResponder{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 25 * time.Second},
		fallback: fallback,
	}
}

func (c *llmResponder) Reply(message string) string {
	ctx, cancel := context.WithTimeout(context.Background(), c.httpc.Timeout)
	defer cancel()
	out, err := c.complete(ctx, message)
	if err != nil {
		log.Printf("[chat] llm fallback: %v", err)
		return c.fallback.Reply(message)
	}
	return out
}

func (c *llmResponder) complete(ctx context.Context, message string) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": message},
		},
		"temperature": 0.2,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completions returned %d", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty reply")
	}
	return content, nil
}
