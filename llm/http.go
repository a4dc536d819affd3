package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dhamidi/ashe/errs"
	"github.com/dhamidi/ashe/logging"
)

// completionRequest is the wire shape of an HTTP completion request body;
// field names are snake_case on the wire per the configured JSON tags.
type completionRequest struct {
	Model            string    `json:"model"`
	Temperature      float64   `json:"temperature"`
	MaxTokens        int       `json:"max_tokens"`
	TopP             float64   `json:"top_p"`
	FrequencyPenalty float64   `json:"frequency_penalty"`
	PresencePenalty  float64   `json:"presence_penalty"`
	Messages         []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Choices []choice `json:"choices"`
}

type choice struct {
	Index        int     `json:"index"`
	Message      message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// fetchHTTP sends prompt as the user message of a chat completion request
// and returns the content of the last choice. It owns a total deadline
// (c.timeoutTotal, default 60s) and emits a periodic "still waiting" log
// line every c.timeoutLog (default 10s) while the request is in flight;
// the send itself runs on a background goroutine so the ticker and the
// deadline are both independent of the underlying HTTP call.
func (c *Client) fetchHTTP(prompt string) (string, error) {
	total := c.timeoutTotal
	if total <= 0 {
		total = 60 * time.Second
	}
	logEvery := c.timeoutLog
	if logEvery <= 0 {
		logEvery = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), total)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		text, err := c.doCompletion(ctx, prompt)
		done <- result{text: text, err: err}
	}()

	ticker := time.NewTicker(logEvery)
	defer ticker.Stop()

	for {
		select {
		case r := <-done:
			return r.text, r.err
		case <-ticker.C:
			logging.Printf("llm: still waiting for a completion (%s elapsed)", logEvery)
		case <-ctx.Done():
			return "", errs.New(errs.LlmTimeoutError, fmt.Sprintf("no completion within %s", total))
		}
	}
}

func (c *Client) doCompletion(ctx context.Context, prompt string) (string, error) {
	reqBody := completionRequest{
		Model:            c.model,
		Temperature:      0.2,
		MaxTokens:        2048,
		TopP:             1,
		FrequencyPenalty: 0,
		PresencePenalty:  0,
		Messages: []message{
			{Role: c.roleSystem, Content: c.systemMessage},
			{Role: c.roleUser, Content: prompt},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", errs.Wrap(errs.LlmExecutionError, err, "marshaling completion request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(errs.LlmExecutionError, err, "building completion request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", errs.Wrap(errs.LlmTimeoutError, err, "completion request canceled")
		}
		return "", errs.Wrap(errs.LlmIoError, err, "sending completion request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.Wrap(errs.LlmIoError, err, "reading completion response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errs.Newf(errs.LlmHttpError, "llm endpoint returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed completionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", errs.Wrap(errs.LlmExecutionError, err, "decoding completion response")
	}
	if len(parsed.Choices) == 0 {
		return "", errs.New(errs.LlmExecutionError, "completion response had no choices")
	}

	return parsed.Choices[len(parsed.Choices)-1].Message.Content, nil
}
