package assistants

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/aide/logs"
	"github.com/reusee/aide/nets"
	"github.com/reusee/aide/vars"
	"github.com/reusee/dscope"
)

type OpenAIAssistant struct {
	spec   Spec
	apiKey string
	client nets.HTTPClient

	Logger dscope.Inject[logs.Logger]
}

var _ Assistant = new(OpenAIAssistant)

func (o *OpenAIAssistant) Name() string {
	return o.spec.Name
}

func (o *OpenAIAssistant) Complete(ctx context.Context, prompt string) (string, error) {
	req := ChatCompletionRequest{
		Model: o.spec.Model,
		Messages: []ChatCompletionMessage{
			{
				Role:    "user",
				Content: prompt,
			},
		},
		Temperature: vars.DerefOrZero(o.spec.Temperature),
	}
	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST",
		strings.TrimSuffix(o.spec.BaseURL, "/")+"/chat/completions",
		bytes.NewReader(bodyBytes),
	)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	o.Logger().InfoContext(ctx, "calling assistant",
		"name", o.spec.Name,
		"model", o.spec.Model,
	)

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == nil {
			return "", fmt.Errorf("bad status: %d, body: %s", resp.StatusCode, string(body))
		}
		errResp.Error.HTTPStatusCode = resp.StatusCode
		return "", errResp.Error
	}

	var completion ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("error decoding response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return completion.Choices[0].Message.Content, nil
}

type NewOpenAIAssistant func(spec Spec) *OpenAIAssistant

func (Module) NewOpenAIAssistant(
	inject dscope.InjectStruct,
	client nets.HTTPClient,
) NewOpenAIAssistant {
	return func(spec Spec) *OpenAIAssistant {
		ret := &OpenAIAssistant{
			spec:   spec,
			client: client,
			apiKey: vars.FirstNonZero(
				spec.APIKey,
				os.Getenv(spec.APIKeyEnv),
			),
		}
		inject(&ret)
		return ret
	}
}

type ChatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []ChatCompletionMessage `json:"messages"`
	Temperature float32                 `json:"temperature,omitempty"`
}

type ChatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionResponse struct {
	Choices []ChatCompletionChoice `json:"choices"`
}

type ChatCompletionChoice struct {
	Message      ChatCompletionMessage `json:"message"`
	FinishReason string                `json:"finish_reason"`
}

type ErrorResponse struct {
	Error *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code           any     `json:"code,omitempty"`
	Message        string  `json:"message,omitempty"`
	Param          *string `json:"param,omitempty"`
	Type           string  `json:"type,omitempty"`
	HTTPStatusCode int     `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}
